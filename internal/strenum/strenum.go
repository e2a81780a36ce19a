package strenuminternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"maps"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/strenum/internal/codefmt"
	"github.com/sublee/strenum/internal/strenum/gen"
	"github.com/sublee/strenum/internal/strenum/parse"
)

// Strenum generates string conversion code for the target package. Call
// [Strenum.Build] and then [Strenum.Generate] to get the generated code. All
// potential errors are returned by [Strenum.Build]. Once [Strenum.Build]
// succeeds, [Strenum.Generate] never fails.
type Strenum struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	enums []*gen.Enum
}

// New creates a new [Strenum] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Strenum, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Strenum{
		p:   parser,
		ns:  codefmt.NewNS(pkg.Types.Scope()),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build prepares code generation by parsing directives and resolving variant
// names. All potential errors are returned by this method. It must be called
// before [Strenum.Generate].
func (sg *Strenum) Build() error {
	enums, errs := sg.p.ParseEnums()
	if errs != nil {
		return errs
	}
	if len(enums) == 0 {
		// No derived enums found
		return nil
	}

	// Reserve the names the generated code will declare. A name already taken
	// by the package means the declaration would not compile.
	for _, e := range enums {
		g := gen.New(e)
		for _, name := range g.Names() {
			if !sg.ns.Reserve(name) {
				err := codefmt.Errorf(sg.p, e, "cannot declare %s for %o; the name is already taken", name, e.TypeName)
				errs = errors.Join(errs, err)
			}
		}
		sg.enums = append(sg.enums, g)
	}

	return errs
}

// Generate generates string conversion code for the package. It must be
// called after [Strenum.Build] succeeds. The result is empty when the package
// has no derived enums.
func (sg *Strenum) Generate() []byte {
	if len(sg.enums) == 0 {
		return nil
	}

	sg.writeEnumCode()
	return sg.frameCode()
}

// writeEnumCode writes the declarations of every derived enum in declaration
// order.
func (sg *Strenum) writeEnumCode() {
	for _, g := range sg.enums {
		local := maps.Clone(sg.ns)
		w := sg.w.WithNS(local)
		g.WriteDefineCode(w)
		sg.w.Printf("\n")
	}
}

func (sg *Strenum) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !strenum\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/strenum%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", sg.p.Pkg().Name)

	if len(sg.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range sg.w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, sg.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
