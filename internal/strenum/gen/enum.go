// Package gen writes the string conversion declarations of derived enums.
package gen

import (
	"go/types"
	"strings"

	"github.com/sublee/strenum/internal/codefmt"
	"github.com/sublee/strenum/internal/strenum/parse"
)

// runtimePath is the import path of the runtime package generated code links
// against.
const runtimePath = "github.com/sublee/strenum"

// Enum writes the generated declarations of one derived enum: the variant
// table, the String method, and the parse function.
type Enum struct {
	e *parse.Enum

	varsName  string // e.g., FruitVariants
	parseName string // e.g., ParseFruit
}

// New creates a code writer for the given enum.
func New(e *parse.Enum) *Enum {
	return &Enum{
		e:         e,
		varsName:  e.Name() + "Variants",
		parseName: "Parse" + e.Name(),
	}
}

// Names returns the package-level names the generated code will declare.
func (g *Enum) Names() []string {
	return []string{g.varsName, g.parseName}
}

// WriteDefineCode writes every declaration for the enum. The writer's
// namespace must be local to this enum so that receiver and local variable
// names cannot shadow anything the generated code refers to.
func (g *Enum) WriteDefineCode(w *codefmt.Writer) {
	g.writeVariants(w)
	w.Printf("\n")
	g.writeString(w)
	w.Printf("\n")
	g.writeParse(w)
}

func (g *Enum) typ() types.Type { return g.e.TypeName.Type() }

// writeVariants writes the variant table in declaration order.
func (g *Enum) writeVariants(w *codefmt.Writer) {
	w.Printf("// %s lists every variant of %t in declaration order.\n", g.varsName, g.typ())
	w.Printf("var %s = []%t{", g.varsName, g.typ())
	for i, v := range g.e.Variants {
		if i != 0 {
			w.Printf(", ")
		}
		w.Printf("%o", v.Con)
	}
	w.Printf("}\n")
}

// writeString writes the String method returning the serialize-direction
// name of each variant.
func (g *Enum) writeString(w *codefmt.Writer) {
	recv := w.Name(strings.ToLower(g.e.Name()[:1]))

	w.Printf("// String returns the name of the variant.\n")
	w.Printf("func (%s %t) String() string {\n", recv, g.typ())
	w.Printf("switch %s {\n", recv)
	for i, v := range g.e.Variants {
		w.Printf("case %o:\n", v.Con)
		w.Printf("return %q\n", g.e.SerializeName(i))
	}
	w.Printf("default:\n")
	if g.e.NonExhaustive {
		w.Printf("panic(\"non-exhaustive %t\")\n", g.typ())
	} else {
		w.Printf("panic(\"invalid %t\")\n", g.typ())
	}
	w.Printf("}\n")
	w.Printf("}\n")
}

// writeParse writes the parse function matching the deserialize-direction
// name of each variant.
func (g *Enum) writeParse(w *codefmt.Writer) {
	varS := w.Name("s")
	varZero := w.Name("zero")
	pkgName := w.Import(runtimePath, "strenum")

	w.Printf("// %s parses %s into a %t value.\n", g.parseName, varS, g.typ())
	w.Printf("func %s(%s string) (%t, error) {\n", g.parseName, varS, g.typ())
	w.Printf("switch %s {\n", varS)
	for i, v := range g.e.Variants {
		w.Printf("case %q:\n", g.e.DeserializeName(i))
		w.Printf("return %o, nil\n", v.Con)
	}
	w.Printf("default:\n")
	w.Printf("var %s %t\n", varZero, g.typ())
	w.Printf("return %s, %s.InvalidVariant(", varZero, pkgName)
	for i := range g.e.Variants {
		if i != 0 {
			w.Printf(", ")
		}
		w.Printf("%q", g.e.DeserializeName(i))
	}
	w.Printf(")\n")
	w.Printf("}\n")
	w.Printf("}\n")
}
