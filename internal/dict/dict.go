// Package dict exposes the trie engine as a serialized dictionary
// service. The engine itself assumes a single caller, so this layer owns
// the mutex that front ends (CLI, HTTP API, tests) share, along with
// file handling and logging. It never interprets trie internals.
package dict

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/stringtrie/internal/trie"
)

var (
	// ErrStreamUnavailable is returned when a word source cannot be opened or read.
	ErrStreamUnavailable = errors.New("word stream unavailable")
	// ErrSinkUnavailable is returned when a word sink cannot be created or written.
	ErrSinkUnavailable = errors.New("word sink unavailable")
	// ErrFileExists is returned when saving would clobber an existing file.
	ErrFileExists = errors.New("file already exists")
)

// Dictionary is a case-insensitive word dictionary backed by a trie.
// All methods are safe for concurrent use.
type Dictionary struct {
	mu     sync.Mutex
	trie   *trie.Trie
	logger zerolog.Logger
}

// New creates an empty dictionary.
func New(logger zerolog.Logger) *Dictionary {
	return &Dictionary{
		trie:   trie.New(),
		logger: logger,
	}
}

// LoadFile loads newline-delimited words from a file. Open failures are
// reported as ErrStreamUnavailable so callers can tell an unreadable
// source apart from a file that simply contained no loadable words.
func (d *Dictionary) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStreamUnavailable, err)
	}
	defer f.Close()

	loaded, err := d.Load(f)
	if err != nil {
		return loaded, err
	}
	d.logger.Info().Str("path", path).Int("loaded", loaded).Msg("loaded word file")
	return loaded, nil
}

// Load loads newline-delimited words from a reader.
func (d *Dictionary) Load(r io.Reader) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	loaded, err := d.trie.Load(r)
	if err != nil {
		d.logger.Error().Err(err).Int("loaded", loaded).Msg("bulk load aborted")
		return loaded, fmt.Errorf("%w: %v", ErrStreamUnavailable, err)
	}
	d.logger.Debug().Int("loaded", loaded).Int("words", d.trie.WordCount()).Msg("bulk load complete")
	return loaded, nil
}

// SaveFile writes every stored word to a file, one per line, sorted.
// An existing file is refused unless overwrite is set.
func (d *Dictionary) SaveFile(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}

	if err := d.WriteWords(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}

	d.logger.Info().Str("path", path).Msg("saved word file")
	return nil
}

// WriteWords writes every stored word to w, one per line, sorted.
func (d *Dictionary) WriteWords(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.trie.WriteWords(w); err != nil {
		return fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}
	return nil
}

// Add stores a word. It returns false for words the trie cannot store.
func (d *Dictionary) Add(word string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	ok := d.trie.Add(word)
	d.logger.Debug().Str("word", word).Bool("added", ok).Msg("add word")
	return ok
}

// Remove deletes a word; removing an absent word is a no-op.
func (d *Dictionary) Remove(word string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.trie.Remove(word)
	d.logger.Debug().Str("word", word).Msg("remove word")
}

// Search reports whether a word is stored.
func (d *Dictionary) Search(word string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.trie.Search(word)
}

// SearchPrefix returns all stored words beginning with prefix, sorted.
func (d *Dictionary) SearchPrefix(prefix string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.trie.SearchPrefix(prefix)
}

// Words returns every stored word, sorted.
func (d *Dictionary) Words() []string {
	return d.SearchPrefix("")
}

// WordCount returns the number of stored words.
func (d *Dictionary) WordCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.trie.WordCount()
}

// Unload discards all stored words.
func (d *Dictionary) Unload() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.trie.Unload()
	d.logger.Info().Msg("dictionary unloaded")
}
