package strenuminternal_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	strenuminternal "github.com/sublee/strenum/internal/strenum"
)

// checkPackage type-checks a single-file package and wraps it the way
// packages.Load would deliver it.
func checkPackage(t *testing.T, src string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "enum.go", src, parser.ParseComments)
	require.NoError(t, err)

	info := &types.Info{
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
		Types: make(map[ast.Expr]types.TypeAndValue),
	}
	var conf types.Config
	tpkg, err := conf.Check("example.com/fruits", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	var pkg packages.Package
	pkg.Name = tpkg.Name()
	pkg.PkgPath = tpkg.Path()
	pkg.Fset = fset
	pkg.Syntax = []*ast.File{file}
	pkg.Types = tpkg
	pkg.TypesInfo = info
	return &pkg
}

func generate(t *testing.T, src string) string {
	t.Helper()

	sg, err := strenuminternal.New(checkPackage(t, src))
	require.NoError(t, err)
	require.NoError(t, sg.Build())
	return string(sg.Generate())
}

func TestGenerate(t *testing.T) {
	code := generate(t, `package fruits

//strenum:derive
//strenum:str = "lowercase"
type Fruit int

const (
	Apple Fruit = iota
	Banana
	//strenum:str = "golden-kiwi"
	Kiwi
)
`)

	assert.Contains(t, code, "//go:build !strenum")
	assert.Contains(t, code, "// Code generated by github.com/sublee/strenum. DO NOT EDIT.")
	assert.Contains(t, code, "package fruits")

	assert.Contains(t, code, "var FruitVariants = []Fruit{Apple, Banana, Kiwi}")

	assert.Contains(t, code, "func (f Fruit) String() string {")
	assert.Contains(t, code, `return "apple"`)
	assert.Contains(t, code, `return "golden-kiwi"`)
	assert.Contains(t, code, `panic("invalid Fruit")`)

	assert.Contains(t, code, "func ParseFruit(s string) (Fruit, error) {")
	assert.Contains(t, code, `case "banana":`)
	assert.Contains(t, code, "return Banana, nil")
	assert.Contains(t, code, `"github.com/sublee/strenum"`)
	assert.NotContains(t, code, `strenum "github.com/sublee/strenum"`)
	assert.Contains(t, code, `strenum.InvalidVariant("apple", "banana", "golden-kiwi")`)
}

func TestGenerateNonExhaustive(t *testing.T) {
	code := generate(t, `package fruits

//strenum:derive
//strenum:non_exhaustive
type Fruit int

const Apple Fruit = 0
`)

	assert.Contains(t, code, `panic("non-exhaustive Fruit")`)
}

func TestGenerateSplitDirections(t *testing.T) {
	code := generate(t, `package fruits

//strenum:derive
type Fruit int

const (
	//strenum:str(serialize = "apple", deserialize = "APPLE")
	Apple Fruit = iota
)
`)

	assert.Contains(t, code, `return "apple"`)
	assert.Contains(t, code, `case "APPLE":`)
	assert.Contains(t, code, `strenum.InvalidVariant("APPLE")`)
}

func TestGenerateMultipleEnums(t *testing.T) {
	code := generate(t, `package fruits

//strenum:derive
//strenum:str = "lowercase"
type Fruit int

//strenum:derive
//strenum:str = "UPPERCASE"
type Berry int

const Apple Fruit = 0

const Cranberry Berry = 0
`)

	assert.Contains(t, code, "var FruitVariants = []Fruit{Apple}")
	assert.Contains(t, code, "var BerryVariants = []Berry{Cranberry}")
	assert.Contains(t, code, "func ParseFruit(s string) (Fruit, error) {")
	assert.Contains(t, code, "func ParseBerry(s string) (Berry, error) {")
	assert.Contains(t, code, `return "CRANBERRY"`)
}

func TestGenerateEmptyEnum(t *testing.T) {
	code := generate(t, `package fruits

//strenum:derive
type Fruit int
`)

	assert.Contains(t, code, "var FruitVariants = []Fruit{}")
	assert.Contains(t, code, "return zero, strenum.InvalidVariant()")
}

func TestGenerateNothing(t *testing.T) {
	sg, err := strenuminternal.New(checkPackage(t, `package fruits

type Fruit int
`))
	require.NoError(t, err)
	require.NoError(t, sg.Build())
	assert.Empty(t, sg.Generate())
}

func TestBuildNameConflict(t *testing.T) {
	sg, err := strenuminternal.New(checkPackage(t, `package fruits

//strenum:derive
type Fruit int

func ParseFruit(s string) (Fruit, error) { var zero Fruit; return zero, nil }
`))
	require.NoError(t, err)

	err = sg.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot declare ParseFruit")
	assert.Contains(t, err.Error(), "the name is already taken")
}

func TestBuildReportsParseErrors(t *testing.T) {
	sg, err := strenuminternal.New(checkPackage(t, `package fruits

//strenum:derive
type Fruit = int
`))
	require.NoError(t, err)

	err = sg.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a type alias")
}
