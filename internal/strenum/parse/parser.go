// Package parse resolves strenum and serde directives on enum declarations
// into a per-variant name table.
package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/sublee/strenum/internal/codefmt"
	"github.com/sublee/strenum/internal/strenum/rename"
)

// Parser parses an AST of the underlying package to collect derived enums.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// Enum is a derived enum type with its resolved annotations and variants in
// declaration order.
type Enum struct {
	TypeName      *types.TypeName
	NonExhaustive bool
	RenameAll     *Spec[rename.Rule]
	Variants      []Variant
}

// Name returns the name of the enum type.
func (e *Enum) Name() string { return e.TypeName.Name() }

// Pos implements [codefmt.Poser].
func (e *Enum) Pos() token.Pos { return e.TypeName.Pos() }

// Variant is one constant of a derived enum.
type Variant struct {
	Con    *types.Const
	Rename *Spec[string]
}

// Pos implements [codefmt.Poser].
func (v Variant) Pos() token.Pos { return v.Con.Pos() }

// SerializeName returns the final serialize-direction name of variant i: the
// variant override if present, otherwise the type-level rule applied to the
// identifier, otherwise the identifier itself.
func (e *Enum) SerializeName(i int) string {
	v := e.Variants[i]
	if s, ok := v.Rename.Serialize(); ok {
		return s
	}
	if r, ok := e.RenameAll.Serialize(); ok {
		return r.Apply(v.Con.Name())
	}
	return v.Con.Name()
}

// DeserializeName returns the final deserialize-direction name of variant i,
// composed like [Enum.SerializeName] but from the deserialize values.
func (e *Enum) DeserializeName(i int) string {
	v := e.Variants[i]
	if s, ok := v.Rename.Deserialize(); ok {
		return s
	}
	if r, ok := e.RenameAll.Deserialize(); ok {
		return r.Apply(v.Con.Name())
	}
	return v.Con.Name()
}

// ParseEnums collects every type marked with //strenum:derive together with
// its variants. All diagnostics are joined into the returned error; a non-nil
// error means generation must not proceed.
func (p *Parser) ParseEnums() ([]*Enum, error) {
	var errs error

	enums, byType, err := p.parseDerivedTypes()
	errs = errors.Join(errs, err)

	errs = errors.Join(errs, p.parseVariants(byType))

	for _, e := range enums {
		errs = errors.Join(errs, p.validateNames(e))
	}

	return enums, errs
}

// parseDerivedTypes finds the type declarations marked for derivation.
func (p *Parser) parseDerivedTypes() ([]*Enum, *typeutil.Map, error) {
	var errs error
	var enums []*Enum
	byType := new(typeutil.Map) // types.Type -> *Enum

	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				groups := []*ast.CommentGroup{ts.Doc, ts.Comment}
				if len(gen.Specs) == 1 {
					groups = append([]*ast.CommentGroup{gen.Doc}, groups...)
				}
				dirs := scanDirectives(groups...)

				ta, err := p.resolveTypeAttrs(dirs)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}

				if !ta.derive {
					if hasNative(dirs) {
						err := codefmt.Errorf(p, ts.Name, "%s has strenum directives but no //strenum:derive", ts.Name.Name)
						errs = errors.Join(errs, err)
					}
					continue
				}

				if ts.Assign.IsValid() {
					errs = errors.Join(errs, codefmt.Errorf(p, ts.Name, "expected enum; %s is a type alias for %c", ts.Name.Name, ts.Type))
					continue
				}

				obj, ok := p.pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					errs = errors.Join(errs, codefmt.Errorf(p, ts.Name, "expected enum; cannot resolve %s", ts.Name.Name))
					continue
				}

				if _, ok := obj.Type().Underlying().(*types.Basic); !ok {
					err := codefmt.Errorf(p, ts.Name, "expected enum with basic underlying type; got %t", obj.Type().Underlying())
					errs = errors.Join(errs, err)
					continue
				}

				e := &Enum{
					TypeName:      obj,
					NonExhaustive: ta.nonExhaustive,
					RenameAll:     ta.renameAll,
				}
				enums = append(enums, e)
				byType.Set(obj.Type(), e)
			}
		}
	}

	return enums, byType, errs
}

// parseVariants collects the package-level constants of every derived enum in
// declaration order and resolves their directives.
func (p *Parser) parseVariants(byType *typeutil.Map) error {
	var errs error

	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}

			for _, spec := range gen.Specs {
				vs := spec.(*ast.ValueSpec)

				groups := []*ast.CommentGroup{vs.Doc, vs.Comment}
				if len(gen.Specs) == 1 {
					groups = append([]*ast.CommentGroup{gen.Doc}, groups...)
				}
				dirs := scanDirectives(groups...)

				rn, err := p.resolveVariantAttrs(dirs)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}

				if rn != nil && len(vs.Names) > 1 {
					err := codefmt.Errorf(p, vs.Names[0], "rename directive on a declaration of %d constants is ambiguous", len(vs.Names))
					errs = errors.Join(errs, err)
					continue
				}

				for _, name := range vs.Names {
					con, ok := p.pkg.TypesInfo.Defs[name].(*types.Const)
					if !ok {
						continue
					}

					e, _ := byType.At(con.Type()).(*Enum)
					if e == nil {
						if hasNative(dirs) {
							err := codefmt.Errorf(p, name, "%o is not a variant of any derived enum", con)
							errs = errors.Join(errs, err)
						}
						continue
					}

					if prev := e.variantByValue(con.Val()); prev != nil {
						if rn != nil {
							err := codefmt.Errorf(p, name, "cannot rename %o; it duplicates the value of %o", con, prev.Con)
							errs = errors.Join(errs, err)
						}
						// Alias constants like FruitDefault = Apple are not
						// separate variants.
						continue
					}

					e.Variants = append(e.Variants, Variant{Con: con, Rename: rn})
				}
			}
		}
	}

	return errs
}

// variantByValue finds an already collected variant with the given constant
// value.
func (e *Enum) variantByValue(val constant.Value) *Variant {
	for i := range e.Variants {
		if constant.Compare(e.Variants[i].Con.Val(), token.EQL, val) {
			return &e.Variants[i]
		}
	}
	return nil
}

// validateNames rejects name tables the generated code could not compile:
// two variants sharing a deserialize-direction name would be duplicate switch
// cases.
func (p *Parser) validateNames(e *Enum) error {
	var errs error

	seen := linkedhashmap.New() // deserialize name -> variant index
	for i := range e.Variants {
		name := e.DeserializeName(i)
		if prev, ok := seen.Get(name); ok {
			prevCon := e.Variants[prev.(int)].Con
			err := codefmt.Errorf(p, e.Variants[i], "duplicate name %q for %o (%b) and %o",
				name, prevCon, prevCon.Pos(), e.Variants[i].Con)
			errs = errors.Join(errs, err)
			continue
		}
		seen.Put(name, i)
	}

	return errs
}
