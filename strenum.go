// Package strenum provides string conversion code generation for enum types.
//
// A Go enum is a named type with a basic underlying type whose values are
// package-level constants. Writing the string conversions for such a type is
// pure boilerplate: a variants table, a String method, and a parse function
// that must all agree with each other. Strenum generates them from the
// declaration itself, so the names can never drift from the code.
//
// To derive the conversions for a type, mark its declaration with a strenum
// directive comment:
//
//	// source:
//	//strenum:derive
//	type Fruit int
//
//	const (
//		Apple Fruit = iota
//		VeryTastyBanana
//	)
//
//	// generated: (simplified)
//	var FruitVariants = []Fruit{Apple, VeryTastyBanana}
//
//	func (v Fruit) String() string { ... }
//
//	func ParseFruit(s string) (Fruit, error) { ... }
//
// After marking the types, run the strenum command. It will generate
// strenum_gen.go for your package:
//
//	go run github.com/sublee/strenum/cmd/strenum
//
// # Renaming
//
// By default a variant is named after its constant identifier. A rename rule
// on the type renames every variant at once. The rule names are the familiar
// ones: "lowercase", "UPPERCASE", "PascalCase", "camelCase", "snake_case",
// "SCREAMING_SNAKE_CASE", "kebab-case", and "SCREAMING-KEBAB-CASE":
//
//	//strenum:derive
//	//strenum:str = "snake_case"
//	type Fruit int
//
//	// generated: (simplified)
//	func (v Fruit) String() string {
//		switch v {
//		case Apple:
//			return "apple"
//		case VeryTastyBanana:
//			return "very_tasty_banana"
//		}
//		...
//	}
//
// A directive on a constant overrides the type-level rule for that variant
// with a fixed literal:
//
//	const (
//		//strenum:str = "OVERRIDE"
//		Override Fruit = iota
//	)
//
// Both forms accept independent values per direction. The serialize direction
// feeds String; the deserialize direction feeds the parse function:
//
//	//strenum:str(serialize = "camelCase", deserialize = "snake_case")
//
// # Serde compatibility
//
// Types that are already annotated for a serde-style framework need not
// repeat themselves. Strenum reads the rename keys of //serde: directives —
// rename_all on the type and rename on a constant — with the same grammar.
// All other serde keys are ignored. A native //strenum:str directive always
// wins over a serde directive for the same declaration, silently:
//
//	//strenum:derive
//	//serde:rename_all = "camelCase"
//	type Fruit int
//
// # Parsing
//
// The generated parse function returns an [InvalidVariantError] when no
// variant matches. The error lists the expected names for diagnostics. The
// generic [Parse] and [ParseFold] functions parse against the canonical
// String names of any generated variants table instead; ParseFold ignores
// ASCII case.
//
// # Non-exhaustive enums
//
// The //strenum:non_exhaustive marker declares that values outside the known
// variants are expected to appear. It never changes any resolved name; it
// only changes the panic message of the String default branch from "invalid"
// to "non-exhaustive" so that the two situations are distinguishable.
package strenum

// Variant is the constraint satisfied by generated enum types: a comparable
// value with a canonical string form.
type Variant interface {
	comparable
	String() string
}

// Parse finds the variant whose String equals s. The variants slice is
// usually a generated variants table. If no variant matches, it returns the
// zero value and an [InvalidVariantError] listing the canonical names.
func Parse[E Variant](variants []E, s string) (E, error) {
	for _, v := range variants {
		if v.String() == s {
			return v, nil
		}
	}
	var zero E
	return zero, invalidVariantOf(variants)
}

// ParseFold is like [Parse] but ignores ASCII case, in the manner of
// [strings.EqualFold] restricted to ASCII.
func ParseFold[E Variant](variants []E, s string) (E, error) {
	for _, v := range variants {
		if equalFoldASCII(v.String(), s) {
			return v, nil
		}
	}
	var zero E
	return zero, invalidVariantOf(variants)
}

func invalidVariantOf[E Variant](variants []E) *InvalidVariantError {
	expected := make([]string, len(variants))
	for i, v := range variants {
		expected[i] = v.String()
	}
	return InvalidVariant(expected...)
}

// equalFoldASCII reports whether a and b are equal ignoring the case of ASCII
// letters. Non-ASCII bytes must match exactly.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
