package strenum

import (
	"slices"
	"strings"
)

// InvalidVariantError is returned when a string does not match any variant of
// an enum. It optionally carries the expected names for diagnostics. It is a
// plain value: two errors with the same expected names are interchangeable.
type InvalidVariantError struct {
	expected []string
}

// InvalidVariant creates a new [InvalidVariantError] expecting the given
// names. Generated parse functions call it with the deserialize-direction
// name of every variant in declaration order.
func InvalidVariant(expected ...string) *InvalidVariantError {
	return &InvalidVariantError{expected: expected}
}

// Expected returns the expected names in the order they were given.
func (e *InvalidVariantError) Expected() []string {
	return slices.Clone(e.expected)
}

// Error implements the error interface.
//
//	invalid variant
//	invalid variant: expected "a"
//	invalid variant: expected one of "a" or "b"
//	invalid variant: expected one of "a", "b", or "c"
func (e *InvalidVariantError) Error() string {
	switch len(e.expected) {
	case 0:
		return "invalid variant"

	case 1:
		return `invalid variant: expected "` + e.expected[0] + `"`

	case 2:
		return `invalid variant: expected one of "` + e.expected[0] + `" or "` + e.expected[1] + `"`

	default:
		var b strings.Builder
		b.WriteString("invalid variant: expected one of ")
		for _, name := range e.expected[:len(e.expected)-1] {
			b.WriteString(`"`)
			b.WriteString(name)
			b.WriteString(`", `)
		}
		b.WriteString(`or "`)
		b.WriteString(e.expected[len(e.expected)-1])
		b.WriteString(`"`)
		return b.String()
	}
}

// Equal reports whether both errors expect the same names in the same order.
func (e *InvalidVariantError) Equal(other *InvalidVariantError) bool {
	if e == nil || other == nil {
		return e == other
	}
	return slices.Equal(e.expected, other.expected)
}

// Compare orders errors lexicographically by their expected names, so that
// collections of errors can be sorted deterministically.
func (e *InvalidVariantError) Compare(other *InvalidVariantError) int {
	return slices.Compare(e.expected, other.expected)
}

// Is reports whether target is also an [InvalidVariantError], regardless of
// its expected names. It makes errors.Is(err, strenum.InvalidVariant()) match
// any parse failure.
func (e *InvalidVariantError) Is(target error) bool {
	_, ok := target.(*InvalidVariantError)
	return ok
}
