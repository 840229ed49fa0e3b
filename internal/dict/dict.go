// internal/dict/dict.go
//
// Word-list loading for the Boggle dictionary.
// Responsibilities:
//   - Read newline-delimited word lists (trimmed, blank lines skipped).
//   - Memoize trie construction by word-list identity so repeated loads
//     of the same source are free.
//   - Fall back to an embedded default list so the binary runs with no
//     configuration.

package dict

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

//go:embed default_words.txt
var embeddedWords string

var (
	mu       sync.Mutex
	bySource = map[string]*Trie{}

	defaultOnce sync.Once
	defaultTrie *Trie
)

// Load builds a Trie from the word list at path. Construction is memoized
// by the resolved absolute path: loading the same file twice returns the
// same Trie.
func Load(path string) (*Trie, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if t, ok := bySource[abs]; ok {
		return t, nil
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", abs, err)
	}

	t := NewTrie(words)
	bySource[abs] = t
	return t, nil
}

// Default returns the trie built from the embedded word list.
func Default() *Trie {
	defaultOnce.Do(func() {
		defaultTrie = NewTrie(normalizeLines(embeddedWords))
	})
	return defaultTrie
}

// normalizeLines splits an embedded multiline string into trimmed,
// non-empty words. Unlike ReadWords it cannot fail.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// ReadWords reads one word per line from r. Lines are trimmed of
// surrounding whitespace; blank lines are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	var out []string
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w != "" {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return out, nil
}
