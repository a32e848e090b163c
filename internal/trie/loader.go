package trie

import (
	"bufio"
	"fmt"
	"io"
)

// Load inserts words from a newline-delimited character stream, one
// symbol at a time, without buffering whole words. Letters are folded to
// lowercase. Lines containing symbols outside the alphabet and words
// longer than MaxWordLength are discarded whole. A trailing word with no
// terminating delimiter is dropped. Carriage return and line feed are
// both accepted as delimiters, interchangeably.
//
// Load returns the number of words read from this stream, counting a
// word that was already stored as loaded. A read failure returns the
// count so far along with the error; words loaded before the failure
// stay in the trie.
func (t *Trie) Load(r io.Reader) (int, error) {
	br := bufio.NewReader(r)

	var (
		cur    *cluster // cluster holding the slot of the last accepted symbol
		ci     int      // slot index of the last accepted symbol
		cn     int      // valid symbols accepted for the current word
		loaded int
	)

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return loaded, fmt.Errorf("failed to read word stream: %w", err)
		}

		if IsDelimiter(b) {
			if cn > 0 {
				if !cur[ci].isWord {
					cur[ci].isWord = true
					t.wordCount++
				}
				loaded++
			}
			cn = 0
			continue
		}

		idx, ierr := Index(b)
		if ierr != nil || cn+1 > MaxWordLength {
			// Malformed or over-long line: discard the remainder without
			// creating nodes for it.
			if err := skipLine(br); err == io.EOF {
				break
			} else if err != nil {
				return loaded, fmt.Errorf("failed to read word stream: %w", err)
			}
			cn = 0
			continue
		}

		if cn == 0 {
			if t.root == nil {
				t.root = new(cluster)
			}
			cur = t.root
		} else {
			cur = cur.child(ci)
		}

		ci = idx
		if cur[ci] == nil {
			cur[ci] = &node{}
		}
		cn++
	}

	return loaded, nil
}

// skipLine consumes the stream up to and including the next delimiter.
func skipLine(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if IsDelimiter(b) {
			return nil
		}
	}
}
