package trie

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPrefix(t *testing.T) {
	tr := New()
	for _, w := range []string{"cat", "cathode", "cats", "dog", "catalog"} {
		require.True(t, tr.Add(w))
	}

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{
			name:   "prefix is itself a word",
			prefix: "cat",
			want:   []string{"cat", "catalog", "cathode", "cats"},
		},
		{
			name:   "prefix is not a word",
			prefix: "cath",
			want:   []string{"cathode"},
		},
		{
			name:   "case-folded prefix",
			prefix: "CAT",
			want:   []string{"cat", "catalog", "cathode", "cats"},
		},
		{
			name:   "absent prefix",
			prefix: "xyz",
			want:   nil,
		},
		{
			name:   "prefix longer than any word",
			prefix: "catalogue",
			want:   nil,
		},
		{
			name:   "invalid symbol in prefix",
			prefix: "c4t",
			want:   nil,
		},
		{
			name:   "empty prefix lists everything",
			prefix: "",
			want:   []string{"cat", "catalog", "cathode", "cats", "dog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.SearchPrefix(tt.prefix))
		})
	}
}

func TestSearchPrefixEmptyTrie(t *testing.T) {
	tr := New()
	assert.Empty(t, tr.SearchPrefix(""))
	assert.Empty(t, tr.SearchPrefix("cat"))
}

func TestEnumerationOrdersSpecialSymbolsAfterLetters(t *testing.T) {
	tr := New()
	// Apostrophe, hyphen, and space collate after 'z', in that order.
	for _, w := range []string{"cat s", "cat's", "cat-x", "cato", "catz"} {
		require.True(t, tr.Add(w))
	}

	want := []string{"cato", "catz", "cat's", "cat-x", "cat s"}
	assert.Equal(t, want, tr.SearchPrefix("cat"))
}

func TestWalkStopsEarly(t *testing.T) {
	tr := New()
	for _, w := range []string{"a", "b", "c", "d"} {
		require.True(t, tr.Add(w))
	}

	var visited []string
	tr.Walk(func(w string) bool {
		visited = append(visited, w)
		return len(visited) < 2
	})

	assert.Equal(t, []string{"a", "b"}, visited)
}

func TestWriteWords(t *testing.T) {
	tr := New()
	for _, w := range []string{"bat", "ant", "cat"} {
		require.True(t, tr.Add(w))
	}

	var buf bytes.Buffer
	require.NoError(t, tr.WriteWords(&buf))
	assert.Equal(t, "ant\nbat\ncat\n", buf.String())

	// Enumeration is a pure read.
	assert.Equal(t, 3, tr.WordCount())
	assert.True(t, tr.Search("ant"))
}

func TestWriteWordsEmptyTrie(t *testing.T) {
	tr := New()

	var buf bytes.Buffer
	require.NoError(t, tr.WriteWords(&buf))
	assert.Zero(t, buf.Len())
}

// failingWriter errors after accepting n bytes.
type failingWriter struct {
	n   int
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		w.n = 0
		return 0, w.err
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriteWordsSurfacesSinkFailure(t *testing.T) {
	tr := New()
	for _, w := range []string{"ant", "bat", "cat"} {
		require.True(t, tr.Add(w))
	}

	sinkErr := errors.New("sink closed")
	err := tr.WriteWords(&failingWriter{n: 4, err: sinkErr})
	require.Error(t, err)
	assert.ErrorIs(t, err, sinkErr)

	// A sink failure must not corrupt the trie.
	assert.Equal(t, 3, tr.WordCount())
	assert.Equal(t, []string{"ant", "bat", "cat"}, tr.SearchPrefix(""))
}
