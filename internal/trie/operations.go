package trie

// indices validates word and maps every symbol to its cluster slot.
// Returns false if the word is empty, over-long, or contains a symbol
// outside the alphabet. Validation happens before any mutation so a
// rejected word never allocates trie nodes.
func indices(word string) ([]int, bool) {
	if len(word) == 0 || len(word) > MaxWordLength {
		return nil, false
	}
	path := make([]int, len(word))
	for i := 0; i < len(word); i++ {
		ci, err := Index(word[i])
		if err != nil {
			return nil, false
		}
		path[i] = ci
	}
	return path, true
}

// Add stores a word in the trie, folding letters to lowercase. It
// returns true if the word is stored after the call, including the case
// where it was already present. It returns false, without mutating the
// trie, for empty words, words over MaxWordLength symbols, or words
// containing symbols outside the alphabet.
func (t *Trie) Add(word string) bool {
	path, ok := indices(word)
	if !ok {
		return false
	}

	if t.root == nil {
		t.root = new(cluster)
	}

	c := t.root
	last := len(path) - 1
	for _, ci := range path[:last] {
		if c[ci] == nil {
			c[ci] = &node{}
		}
		c = c.child(ci)
	}

	ci := path[last]
	if c[ci] == nil {
		c[ci] = &node{}
	}
	if !c[ci].isWord {
		c[ci].isWord = true
		t.wordCount++
	}
	return true
}

// Remove deletes a word from the trie. Removing a word that is not
// stored, or passing an invalid string, is a no-op. The terminal node's
// slot is released when nothing extends past it; interior nodes shared
// with other words are left intact.
func (t *Trie) Remove(word string) {
	if t.root == nil {
		return
	}

	c := t.root
	for i := 0; i < len(word); i++ {
		ci, err := Index(word[i])
		if err != nil {
			return
		}
		n := c[ci]
		if n == nil {
			return
		}

		if i == len(word)-1 {
			if !n.isWord {
				return
			}
			if t.wordCount > 0 {
				t.wordCount--
			}
			if n.next == nil {
				c[ci] = nil
			} else {
				n.isWord = false
			}
			return
		}

		if n.next == nil {
			return
		}
		c = n.next
	}
}

// Search reports whether a word is stored in the trie. The comparison is
// case-insensitive. Invalid input returns false rather than an error.
func (t *Trie) Search(word string) bool {
	if t.root == nil {
		return false
	}

	c := t.root
	for i := 0; i < len(word); i++ {
		ci, err := Index(word[i])
		if err != nil {
			return false
		}
		n := c[ci]
		if n == nil {
			return false
		}

		if i == len(word)-1 {
			return n.isWord
		}

		if n.next == nil {
			return false
		}
		c = n.next
	}
	return false
}
