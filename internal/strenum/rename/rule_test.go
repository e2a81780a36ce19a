package rename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/strenum/internal/strenum/rename"
)

func TestApply(t *testing.T) {
	tests := []struct {
		original                                                 string
		lower, upper, camel, snake, screaming, kebab, screamingK string
	}{
		{"Outcome", "outcome", "OUTCOME", "outcome", "outcome", "OUTCOME", "outcome", "OUTCOME"},
		{"VeryTasty", "verytasty", "VERYTASTY", "veryTasty", "very_tasty", "VERY_TASTY", "very-tasty", "VERY-TASTY"},
		{"A", "a", "A", "a", "a", "A", "a", "A"},
		// Digits never produce a boundary.
		{"Z42", "z42", "Z42", "z42", "z42", "Z42", "z42", "Z42"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.original, rename.None.Apply(tt.original))
		assert.Equal(t, tt.original, rename.Pascal.Apply(tt.original))
		assert.Equal(t, tt.lower, rename.Lower.Apply(tt.original))
		assert.Equal(t, tt.upper, rename.Upper.Apply(tt.original))
		assert.Equal(t, tt.camel, rename.Camel.Apply(tt.original))
		assert.Equal(t, tt.snake, rename.Snake.Apply(tt.original))
		assert.Equal(t, tt.screaming, rename.ScreamingSnake.Apply(tt.original))
		assert.Equal(t, tt.kebab, rename.Kebab.Apply(tt.original))
		assert.Equal(t, tt.screamingK, rename.ScreamingKebab.Apply(tt.original))
	}
}

func TestApplyIdempotentOnNormalized(t *testing.T) {
	assert.Equal(t, "very_tasty", rename.Snake.Apply(rename.Snake.Apply("VeryTasty")))
	assert.Equal(t, "very-tasty", rename.Kebab.Apply(rename.Kebab.Apply("VeryTasty")))
}

func TestResolve(t *testing.T) {
	names := map[string]rename.Rule{
		"lowercase":            rename.Lower,
		"UPPERCASE":            rename.Upper,
		"PascalCase":           rename.Pascal,
		"camelCase":            rename.Camel,
		"snake_case":           rename.Snake,
		"SCREAMING_SNAKE_CASE": rename.ScreamingSnake,
		"kebab-case":           rename.Kebab,
		"SCREAMING-KEBAB-CASE": rename.ScreamingKebab,
	}

	for name, rule := range names {
		resolved, err := rename.Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, rule, resolved)
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := rename.Resolve("SHOUTING_CASE")
	require.Error(t, err)
	assert.Equal(t, `unknown rename rule "SHOUTING_CASE", expected one of `+
		`"lowercase", "UPPERCASE", "PascalCase", "camelCase", "snake_case", `+
		`"SCREAMING_SNAKE_CASE", "kebab-case", "SCREAMING-KEBAB-CASE"`, err.Error())
}

func TestResolveIsExact(t *testing.T) {
	_, err := rename.Resolve("SNAKE_CASE")
	assert.Error(t, err)
	_, err = rename.Resolve("")
	assert.Error(t, err)
}
