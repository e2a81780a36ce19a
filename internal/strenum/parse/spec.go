package parse

import (
	"go/token"
	"strconv"
	"strings"

	"github.com/sublee/strenum/internal/codefmt"
)

// Spec is a rename specification with independent values for the serialize
// and deserialize directions. At least one direction is always present; the
// empty shape is unrepresentable outside this package. The four reachable
// shapes correspond to the directive payload forms:
//
//	= "value"                                 // both directions
//	(serialize = "value")                     // serialize only
//	(deserialize = "value")                   // deserialize only
//	(serialize = "a", deserialize = "b")      // both, explicitly
type Spec[T any] struct {
	ser, de *T
}

// Both creates a Spec using the same value for both directions.
func Both[T any](v T) *Spec[T] {
	ser, de := v, v
	return &Spec[T]{ser: &ser, de: &de}
}

// SerializeOnly creates a Spec with only the serialize direction.
func SerializeOnly[T any](v T) *Spec[T] {
	return &Spec[T]{ser: &v}
}

// DeserializeOnly creates a Spec with only the deserialize direction.
func DeserializeOnly[T any](v T) *Spec[T] {
	return &Spec[T]{de: &v}
}

// ExplicitBoth creates a Spec with independent values per direction.
func ExplicitBoth[T any](ser, de T) *Spec[T] {
	return &Spec[T]{ser: &ser, de: &de}
}

// Serialize returns the serialize-direction value. Safe on a nil Spec.
func (s *Spec[T]) Serialize() (T, bool) {
	if s == nil || s.ser == nil {
		var zero T
		return zero, false
	}
	return *s.ser, true
}

// Deserialize returns the deserialize-direction value. Safe on a nil Spec.
func (s *Spec[T]) Deserialize() (T, bool) {
	if s == nil || s.de == nil {
		var zero T
		return zero, false
	}
	return *s.de, true
}

// convSpec converts the payload type of a Spec, failing on the first value
// conv rejects.
func convSpec[T any](s *Spec[lit], conv func(lit) (T, error)) (*Spec[T], error) {
	out := &Spec[T]{}
	if s.ser != nil {
		v, err := conv(*s.ser)
		if err != nil {
			return nil, err
		}
		out.ser = &v
	}
	if s.de != nil {
		v, err := conv(*s.de)
		if err != nil {
			return nil, err
		}
		out.de = &v
	}
	return out, nil
}

// lit is a string literal parsed from a directive payload, with its position
// in the source file.
type lit struct {
	val string
	pos token.Pos
}

// parseSpec parses a directive payload into a [Spec]. The payload is the text
// after the directive key, in one of the forms documented on [Spec]. base is
// the position of the first byte of s in the source file, so that errors
// point inside the comment.
func (p *Parser) parseSpec(base token.Pos, s string) (*Spec[lit], error) {
	sp := &specParser{p: p, s: s, base: base}

	sp.skipSpace()
	switch {
	case sp.eof():
		return nil, sp.errf(sp.i, `expected = "..." or (serialize = ..., deserialize = ...)`)

	case sp.s[sp.i] == '=':
		sp.i++
		v, err := sp.parseString()
		if err != nil {
			return nil, err
		}
		if err := sp.expectEnd(); err != nil {
			return nil, err
		}
		// Both shares the value but keeps each literal's own position.
		spec := Both(v)
		return spec, nil

	case sp.s[sp.i] == '(':
		sp.i++
		return sp.parseParen()

	default:
		return nil, sp.errf(sp.i, `expected = "..." or (serialize = ..., deserialize = ...)`)
	}
}

// specParser is a recursive-descent parser over a directive payload.
type specParser struct {
	p    *Parser
	s    string
	i    int
	base token.Pos
}

func (sp *specParser) eof() bool { return sp.i >= len(sp.s) }

func (sp *specParser) skipSpace() {
	for !sp.eof() && (sp.s[sp.i] == ' ' || sp.s[sp.i] == '\t') {
		sp.i++
	}
}

// errf creates a positioned error pointing at offset off within the payload.
func (sp *specParser) errf(off int, format string, args ...any) error {
	return codefmt.Errorf(sp.p, codefmt.Pos(sp.base+token.Pos(off)), format, args...)
}

// parseParen parses the parenthesized form. The grammar requires at least one
// serialize or deserialize key, so the empty form is a parse error.
func (sp *specParser) parseParen() (*Spec[lit], error) {
	var ser, de *lit

	parsePair := func() error {
		keyOff := sp.i
		key, err := sp.parseIdent()
		if err != nil {
			return err
		}

		sp.skipSpace()
		if sp.eof() || sp.s[sp.i] != '=' {
			return sp.errf(sp.i, "expected = after %s", key)
		}
		sp.i++

		v, err := sp.parseString()
		if err != nil {
			return err
		}

		switch key {
		case "serialize":
			if ser != nil {
				return sp.errf(keyOff, "duplicate serialize")
			}
			ser = &v
		case "deserialize":
			if de != nil {
				return sp.errf(keyOff, "duplicate deserialize")
			}
			de = &v
		default:
			return sp.errf(keyOff, "expected serialize or deserialize; got %s", key)
		}
		return nil
	}

	sp.skipSpace()
	if err := parsePair(); err != nil {
		return nil, err
	}

	sp.skipSpace()
	if !sp.eof() && sp.s[sp.i] == ',' {
		sp.i++
		sp.skipSpace()
		if err := parsePair(); err != nil {
			return nil, err
		}
		sp.skipSpace()
	}

	if sp.eof() || sp.s[sp.i] != ')' {
		return nil, sp.errf(sp.i, "expected )")
	}
	sp.i++

	if err := sp.expectEnd(); err != nil {
		return nil, err
	}

	return &Spec[lit]{ser: ser, de: de}, nil
}

func (sp *specParser) parseIdent() (string, error) {
	sp.skipSpace()
	start := sp.i
	for !sp.eof() && isIdentByte(sp.s[sp.i]) {
		sp.i++
	}
	if sp.i == start {
		return "", sp.errf(start, "expected serialize or deserialize")
	}
	return sp.s[start:sp.i], nil
}

// parseString parses a double-quoted Go string literal.
func (sp *specParser) parseString() (lit, error) {
	sp.skipSpace()
	start := sp.i
	if sp.eof() || sp.s[sp.i] != '"' {
		return lit{}, sp.errf(start, "expected string literal")
	}

	sp.i++
	for !sp.eof() {
		switch sp.s[sp.i] {
		case '\\':
			sp.i += 2
			continue
		case '"':
			sp.i++
			val, err := strconv.Unquote(sp.s[start:sp.i])
			if err != nil {
				return lit{}, sp.errf(start, "malformed string literal %s", sp.s[start:sp.i])
			}
			return lit{val: val, pos: sp.base + token.Pos(start)}, nil
		}
		sp.i++
	}
	return lit{}, sp.errf(start, "unterminated string literal")
}

// expectEnd asserts that only trailing space remains.
func (sp *specParser) expectEnd() error {
	sp.skipSpace()
	if !sp.eof() {
		return sp.errf(sp.i, "unexpected %q after rename specification", strings.TrimRight(sp.s[sp.i:], " \t"))
	}
	return nil
}

func isIdentByte(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9' || ch == '_'
}
