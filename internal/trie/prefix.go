package trie

import (
	"bufio"
	"fmt"
	"io"
)

// WalkFunc is called for each stored word during a traversal. Returning
// false stops the walk.
type WalkFunc func(word string) bool

// Walk visits every stored word in lexicographic order (letters first,
// then apostrophe, hyphen, space) and calls fn for each one.
func (t *Trie) Walk(fn WalkFunc) {
	t.WalkPrefix("", fn)
}

// WalkPrefix visits, in lexicographic order, every stored word that
// begins with prefix, including the prefix itself when it is a stored
// word. An empty prefix visits the whole trie. If the prefix contains an
// invalid symbol or is not present, nothing is visited.
func (t *Trie) WalkPrefix(prefix string, fn WalkFunc) {
	if t.root == nil {
		return
	}

	buf := make([]byte, 0, MaxWordLength)
	c := t.root

	// Locate the prefix path, rebuilding it case-folded as we go.
	for i := 0; i < len(prefix); i++ {
		ci, err := Index(prefix[i])
		if err != nil {
			return
		}
		n := c[ci]
		if n == nil {
			return
		}

		sym, _ := Symbol(ci)
		buf = append(buf, sym)

		if i == len(prefix)-1 {
			if n.isWord && !fn(string(buf)) {
				return
			}
			if n.next != nil {
				collect(n.next, buf, fn)
			}
			return
		}

		if n.next == nil {
			return
		}
		c = n.next
	}

	collect(c, buf, fn)
}

// collect recursively visits every word below c. Slots are scanned in
// increasing index order, which is the alphabet's collation order, so
// words come out sorted. buf holds the symbols on the path down to c and
// is shared across the whole descent.
func collect(c *cluster, buf []byte, fn WalkFunc) bool {
	for ci := 0; ci < CharCount; ci++ {
		n := c[ci]
		if n == nil {
			continue
		}

		sym, _ := Symbol(ci)
		buf = append(buf, sym)

		if n.isWord && !fn(string(buf)) {
			return false
		}
		if n.next != nil && !collect(n.next, buf, fn) {
			return false
		}

		buf = buf[:len(buf)-1]
	}
	return true
}

// SearchPrefix returns every stored word beginning with prefix, in
// sorted order, including the prefix itself when stored. An invalid or
// absent prefix yields no results; an empty prefix lists every word.
func (t *Trie) SearchPrefix(prefix string) []string {
	var words []string
	t.WalkPrefix(prefix, func(w string) bool {
		words = append(words, w)
		return true
	})
	return words
}

// WriteWords writes every stored word to w, one per line, in sorted
// order. The trie is not mutated; a sink failure surfaces as a wrapped
// error.
func (t *Trie) WriteWords(w io.Writer) error {
	bw := bufio.NewWriter(w)

	var werr error
	t.Walk(func(word string) bool {
		if _, err := bw.WriteString(word); err != nil {
			werr = err
			return false
		}
		if err := bw.WriteByte('\n'); err != nil {
			werr = err
			return false
		}
		return true
	})
	if werr != nil {
		return fmt.Errorf("failed to write word list: %w", werr)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	return nil
}
