package trie

// node occupies one slot in a cluster and represents one symbol on the
// path from the root.
type node struct {
	// next is the continuation cluster for words sharing this prefix,
	// nil if no stored word extends past this point.
	next *cluster

	// isWord marks the path ending at this node as a stored word.
	isWord bool
}

// cluster is a fixed array of optional nodes, one slot per alphabet
// symbol, indexed by Index. A cluster holds the set of symbols that can
// follow the path taken to reach it.
type cluster [CharCount]*node

// child returns the continuation cluster for the node in slot ci,
// allocating it on first use.
func (c *cluster) child(ci int) *cluster {
	if c[ci].next == nil {
		c[ci].next = new(cluster)
	}
	return c[ci].next
}

// Trie is a case-insensitive string dictionary over a fixed 29-symbol
// alphabet. Words share nodes for their common prefixes, so insertion,
// lookup, and removal cost is proportional to word length, independent
// of how many words are stored.
//
// A Trie is not safe for concurrent use; callers that share one across
// goroutines must serialize access externally.
type Trie struct {
	root      *cluster // nil until the first insertion
	wordCount int
}

// New creates an empty trie. The root cluster is allocated lazily on
// first insertion.
func New() *Trie {
	return &Trie{}
}

// WordCount returns the number of words currently stored.
func (t *Trie) WordCount() int {
	return t.wordCount
}

// Unload discards all stored words and releases the node structure.
func (t *Trie) Unload() {
	t.root = nil
	t.wordCount = 0
}

// NodeCount returns the number of allocated nodes in the trie. It walks
// the whole structure and exists for diagnostics and consistency checks,
// not for regular operation.
func (t *Trie) NodeCount() int {
	return countNodes(t.root)
}

func countNodes(c *cluster) int {
	if c == nil {
		return 0
	}
	n := 0
	for ci := 0; ci < CharCount; ci++ {
		if c[ci] == nil {
			continue
		}
		n += 1 + countNodes(c[ci].next)
	}
	return n
}
