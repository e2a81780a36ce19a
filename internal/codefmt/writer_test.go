package codefmt_test

import (
	"bytes"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/strenum/internal/codefmt"
)

func testWriter(scopeNames ...string) (*codefmt.Writer, *bytes.Buffer) {
	tpkg := types.NewPackage("example.com/fruits", "fruits")
	for _, name := range scopeNames {
		tpkg.Scope().Insert(types.NewVar(token.NoPos, tpkg, name, types.Typ[types.Int]))
	}

	var pkg packages.Package
	pkg.Name = "fruits"
	pkg.PkgPath = "example.com/fruits"
	pkg.Types = tpkg
	pkg.Fset = token.NewFileSet()

	var buf bytes.Buffer
	return codefmt.NewWriter(&buf, &pkg), &buf
}

func TestImport(t *testing.T) {
	w, _ := testWriter()

	name := w.Import("github.com/sublee/strenum", "strenum")
	assert.Equal(t, "strenum", name)

	imp, ok := w.Imports()["strenum"]
	assert.True(t, ok)
	assert.Equal(t, "github.com/sublee/strenum", imp.Path())

	// The requested name is the package's own name, so no alias.
	assert.False(t, imp.HasAlias)
}

func TestImportConflict(t *testing.T) {
	w, _ := testWriter("strenum")

	name := w.Import("github.com/sublee/strenum", "strenum")
	assert.Equal(t, "strenum2", name)

	imp := w.Imports()["strenum2"]
	assert.True(t, imp.HasAlias)
}

func TestImportDedupe(t *testing.T) {
	w, _ := testWriter()

	assert.Equal(t, "strenum", w.Import("github.com/sublee/strenum", "strenum"))
	assert.Equal(t, "strenum", w.Import("github.com/sublee/strenum", "strenum"))
	assert.Len(t, w.Imports(), 1)
}

func TestPrintfImportsObject(t *testing.T) {
	w, buf := testWriter()

	other := types.NewPackage("example.com/other", "other")
	obj := types.NewVar(token.NoPos, other, "Thing", types.Typ[types.Int])

	_, err := w.Printf("%o", obj)
	assert.NoError(t, err)
	assert.Equal(t, "other.Thing", buf.String())

	imp, ok := w.Imports()["other"]
	assert.True(t, ok)
	assert.Equal(t, "example.com/other", imp.Path())
	assert.False(t, imp.HasAlias)
}

func TestWriterName(t *testing.T) {
	w, _ := testWriter()

	local := make(codefmt.NS)
	w = w.WithNS(local)

	assert.Equal(t, "f", w.Name("f"))
	assert.Equal(t, "f2", w.Name("f"))
}
