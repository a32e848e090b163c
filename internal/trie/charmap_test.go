package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexSymbolRoundTrip(t *testing.T) {
	for i := 0; i < CharCount; i++ {
		c, err := Symbol(i)
		require.NoError(t, err, "Symbol(%d)", i)

		back, err := Index(c)
		require.NoError(t, err, "Index(%q)", c)
		assert.Equal(t, i, back, "round trip for index %d", i)
	}
}

func TestIndexMapping(t *testing.T) {
	tests := []struct {
		c    byte
		want int
	}{
		{'a', 0},
		{'z', 25},
		{'A', 0},
		{'Z', 25},
		{'\'', 26},
		{'-', 27},
		{' ', 28},
	}
	for _, tt := range tests {
		got, err := Index(tt.c)
		require.NoError(t, err, "Index(%q)", tt.c)
		assert.Equal(t, tt.want, got, "Index(%q)", tt.c)
	}
}

func TestIndexInvalidSymbols(t *testing.T) {
	for _, c := range []byte{'0', '9', '.', '_', '\n', '\r', '\t', 0, 0xFF} {
		_, err := Index(c)
		assert.ErrorIs(t, err, ErrInvalidSymbol, "Index(%q)", c)
	}
}

func TestSymbolInvalidIndex(t *testing.T) {
	for _, i := range []int{-1, CharCount, CharCount + 1, 1000} {
		_, err := Symbol(i)
		assert.ErrorIs(t, err, ErrInvalidIndex, "Symbol(%d)", i)
	}
}

func TestValidityPredicates(t *testing.T) {
	assert.True(t, IsValid('a'))
	assert.True(t, IsValid('z'))
	assert.True(t, IsValid('\''))
	assert.True(t, IsValid('-'))
	assert.True(t, IsValid(' '))

	// Uppercase letters must be folded before storage.
	assert.False(t, IsValid('A'))
	assert.False(t, IsValid('1'))

	// Delimiters are recognized only as word boundaries, never stored.
	for _, c := range []byte{'\n', '\r'} {
		assert.True(t, IsDelimiter(c), "IsDelimiter(%q)", c)
		assert.False(t, IsValid(c), "IsValid(%q)", c)
	}
	assert.False(t, IsDelimiter(' '))
	assert.False(t, IsDelimiter('\t'))
}
