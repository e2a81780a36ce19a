// Package rename implements the naming-convention rules applied to enum
// variants. The rules and their boundary behavior follow the serde
// conventions: boundaries are detected on uppercase letters only, never on
// digits, so "Z42" becomes "z42" rather than "z_42". Generated names depend
// on this, so it must not be "fixed".
package rename

import (
	"fmt"
	"strings"
)

// Rule is a naming convention applied uniformly to the variants of an enum
// that lack a per-variant override. Variant identifiers are assumed to be
// PascalCase ASCII, as Go exported constants conventionally are.
type Rule int

const (
	// None applies no rule. The identifier is used as is.
	None Rule = iota
	// Lower renames variants to "lowercase" style.
	Lower
	// Upper renames variants to "UPPERCASE" style.
	Upper
	// Pascal renames variants to "PascalCase" style. Identity for Go
	// constants.
	Pascal
	// Camel renames variants to "camelCase" style.
	Camel
	// Snake renames variants to "snake_case" style.
	Snake
	// ScreamingSnake renames variants to "SCREAMING_SNAKE_CASE" style.
	ScreamingSnake
	// Kebab renames variants to "kebab-case" style.
	Kebab
	// ScreamingKebab renames variants to "SCREAMING-KEBAB-CASE" style.
	ScreamingKebab
)

// rules maps rule names to rules. The order is fixed; error messages list the
// names in this order.
var rules = [...]struct {
	name string
	rule Rule
}{
	{"lowercase", Lower},
	{"UPPERCASE", Upper},
	{"PascalCase", Pascal},
	{"camelCase", Camel},
	{"snake_case", Snake},
	{"SCREAMING_SNAKE_CASE", ScreamingSnake},
	{"kebab-case", Kebab},
	{"SCREAMING-KEBAB-CASE", ScreamingKebab},
}

// Resolve looks up a rule by its exact name. Unknown names return an error
// listing every valid name.
func Resolve(name string) (Rule, error) {
	for _, r := range rules {
		if name == r.name {
			return r.rule, nil
		}
	}

	var b strings.Builder
	for i, r := range rules {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", r.name)
	}
	return None, fmt.Errorf("unknown rename rule %q, expected one of %s", name, b.String())
}

// Apply renames a variant identifier according to the rule. The input must be
// non-empty.
func (r Rule) Apply(variant string) string {
	switch r {
	case None, Pascal:
		return variant

	case Lower:
		return lowerASCII(variant)

	case Upper:
		return upperASCII(variant)

	case Camel:
		return lowerASCII(variant[:1]) + variant[1:]

	case Snake:
		var b strings.Builder
		for i := 0; i < len(variant); i++ {
			ch := variant[i]
			if i > 0 && 'A' <= ch && ch <= 'Z' {
				b.WriteByte('_')
			}
			b.WriteByte(lowerByte(ch))
		}
		return b.String()

	case ScreamingSnake:
		return upperASCII(Snake.Apply(variant))

	case Kebab:
		return strings.ReplaceAll(Snake.Apply(variant), "_", "-")

	case ScreamingKebab:
		return strings.ReplaceAll(ScreamingSnake.Apply(variant), "_", "-")
	}

	panic(fmt.Sprintf("unknown rename rule %d", r))
}

func lowerByte(ch byte) byte {
	if 'A' <= ch && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}

func lowerASCII(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		b.WriteByte(lowerByte(s[i]))
	}
	return b.String()
}

func upperASCII(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if 'a' <= ch && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		b.WriteByte(ch)
	}
	return b.String()
}
