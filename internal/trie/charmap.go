package trie

import "errors"

// The trie supports a fixed 29-symbol alphabet: the lowercase letters,
// apostrophe, hyphen, and space. Every symbol maps to a slot index in
// [0, CharCount) and back.
const (
	// CharCount is the number of valid symbols, and the size of a node cluster.
	CharCount = 29

	// AlphaCount is the number of alphabetic symbols ('a'..'z').
	AlphaCount = 26

	// MaxWordLength is the maximum number of symbols in a stored word.
	MaxWordLength = 128
)

// Slot offsets for the non-alphabetic symbols, relative to AlphaCount.
const (
	apostropheOffset = iota
	hyphenOffset
	spaceOffset
)

var (
	// ErrInvalidSymbol is returned when a character is outside the trie alphabet.
	ErrInvalidSymbol = errors.New("symbol outside the trie alphabet")
	// ErrInvalidIndex is returned when a cluster index is out of range.
	ErrInvalidIndex = errors.New("cluster index out of range")
)

// fold converts an uppercase ASCII letter to lowercase and leaves every
// other byte unchanged.
func fold(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// IsValid reports whether c may be stored in the trie. Uppercase letters
// are not themselves valid; callers fold case before storing.
func IsValid(c byte) bool {
	return (c >= 'a' && c <= 'z') || c == '\'' || c == '-' || c == ' '
}

// IsDelimiter reports whether c ends a word in a character stream.
// Delimiters are never stored; the set is disjoint from the alphabet.
func IsDelimiter(c byte) bool {
	return c == '\n' || c == '\r'
}

// Index maps a symbol to its cluster slot. Uppercase letters are folded
// to lowercase first. Returns ErrInvalidSymbol for anything outside the
// alphabet.
func Index(c byte) (int, error) {
	c = fold(c)
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), nil
	case c == '\'':
		return AlphaCount + apostropheOffset, nil
	case c == '-':
		return AlphaCount + hyphenOffset, nil
	case c == ' ':
		return AlphaCount + spaceOffset, nil
	default:
		return 0, ErrInvalidSymbol
	}
}

// Symbol maps a cluster slot back to its symbol. It is the exact inverse
// of Index over the valid domain. Returns ErrInvalidIndex for slots
// outside [0, CharCount).
func Symbol(i int) (byte, error) {
	switch {
	case i >= 0 && i < AlphaCount:
		return byte('a' + i), nil
	case i == AlphaCount+apostropheOffset:
		return '\'', nil
	case i == AlphaCount+hyphenOffset:
		return '-', nil
	case i == AlphaCount+spaceOffset:
		return ' ', nil
	default:
		return 0, ErrInvalidIndex
	}
}
