package strenum_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/strenum"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		expected []string
		message  string
	}{
		{nil, `invalid variant`},
		{[]string{"a"}, `invalid variant: expected "a"`},
		{[]string{"a", "b"}, `invalid variant: expected one of "a" or "b"`},
		{[]string{"a", "b", "c"}, `invalid variant: expected one of "a", "b", or "c"`},
		{[]string{"a", "b", "c", "d"}, `invalid variant: expected one of "a", "b", "c", or "d"`},
	}

	for _, tt := range tests {
		err := strenum.InvalidVariant(tt.expected...)
		assert.Equal(t, tt.message, err.Error())
	}
}

func TestErrorExpected(t *testing.T) {
	err := strenum.InvalidVariant("a", "b")
	assert.Equal(t, []string{"a", "b"}, err.Expected())

	// The returned slice is a copy.
	err.Expected()[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, err.Expected())
}

func TestErrorEqual(t *testing.T) {
	assert.True(t, strenum.InvalidVariant("a").Equal(strenum.InvalidVariant("a")))
	assert.False(t, strenum.InvalidVariant("a").Equal(strenum.InvalidVariant("b")))
	assert.False(t, strenum.InvalidVariant("a").Equal(strenum.InvalidVariant("a", "b")))
	assert.True(t, strenum.InvalidVariant().Equal(strenum.InvalidVariant()))
}

func TestErrorCompare(t *testing.T) {
	assert.Equal(t, 0, strenum.InvalidVariant("a").Compare(strenum.InvalidVariant("a")))
	assert.Equal(t, -1, strenum.InvalidVariant("a").Compare(strenum.InvalidVariant("b")))
	assert.Equal(t, 1, strenum.InvalidVariant("b").Compare(strenum.InvalidVariant("a")))
	assert.Equal(t, -1, strenum.InvalidVariant().Compare(strenum.InvalidVariant("a")))
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("parsing fruit: %w", strenum.InvalidVariant("apple"))
	assert.ErrorIs(t, err, strenum.InvalidVariant())

	var invalid *strenum.InvalidVariantError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"apple"}, invalid.Expected())

	assert.False(t, errors.Is(errors.New("other"), strenum.InvalidVariant()))
}
