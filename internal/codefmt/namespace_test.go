package codefmt

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisambiguate(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("example"))
	defer stop()

	var name string

	name, _ = pull()
	assert.Equal(t, "example", name)

	name, _ = pull()
	assert.Equal(t, "example2", name)

	name, _ = pull()
	assert.Equal(t, "example3", name)
}

func TestDisambiguateNumSuffix(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("answer42"))
	defer stop()

	var name string

	name, _ = pull()
	assert.Equal(t, "answer42", name)

	name, _ = pull()
	assert.Equal(t, "answer42_2", name)

	name, _ = pull()
	assert.Equal(t, "answer42_3", name)
}

func TestNSName(t *testing.T) {
	ns := make(NS)
	assert.Equal(t, "ParseFruit", ns.Name("ParseFruit"))
	assert.Equal(t, "ParseFruit2", ns.Name("ParseFruit"))
	assert.Equal(t, "ParseFruit3", ns.Name("ParseFruit"))
}

func TestNSReserve(t *testing.T) {
	ns := make(NS)
	assert.True(t, ns.Reserve("FruitVariants"))
	assert.False(t, ns.Reserve("FruitVariants"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "fooBar", NormalizeName("foo bar"))
	assert.Equal(t, "foo_bar", NormalizeName("foo_bar"))
}
