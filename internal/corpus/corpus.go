// Package corpus deduplicates and orders the merged word set.
package corpus

import (
	"sort"

	"github.com/jonathan/lexicon-compactor/internal/source"
)

// Corpus accumulates words from source files into a unique set and tracks
// per-file raw counts for the merge summary.
type Corpus struct {
	words     map[string]struct{}
	fileStats map[string]int
	rawCount  int
}

// New returns an empty Corpus.
func New() *Corpus {
	return &Corpus{
		words:     make(map[string]struct{}),
		fileStats: make(map[string]int),
	}
}

// Add inserts the given words, dropping duplicates.
func (c *Corpus) Add(words []source.Word) {
	for _, w := range words {
		c.words[w.Text] = struct{}{}
		c.fileStats[w.File]++
		c.rawCount++
	}
}

// Words returns the unique words in codepoint order. The comparison is
// plain byte order on UTF-8 strings, which is locale-independent and
// reproducible across platforms. An empty corpus yields an empty slice.
func (c *Corpus) Words() []string {
	sorted := make([]string, 0, len(c.words))
	for w := range c.words {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)
	return sorted
}

// Len returns the number of unique words.
func (c *Corpus) Len() int {
	return len(c.words)
}

// RawCount returns the number of words read before deduplication.
func (c *Corpus) RawCount() int {
	return c.rawCount
}

// FileCount returns the raw word count contributed by one file.
func (c *Corpus) FileCount(file string) int {
	return c.fileStats[file]
}
