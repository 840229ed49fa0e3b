// internal/dict/trie.go
//
// Prefix tree over the dictionary.
// Defines:
//   - Trie: immutable after construction, safe for concurrent readers.
//   - IsValidPrefix / IsWord: the two queries the path enumerator drives.
//
// Both queries are memoized in bounded LRU caches keyed by the exact
// letter sequence: the enumerator re-asks the same growing prefixes
// quadratically often as it extends a path one cell at a time.

package dict

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MinWordLen is the Boggle minimum word length.
const MinWordLen = 3

// queryCacheSize bounds each memo cache. Sized well beyond what a single
// 16-cell board search touches; long-running processes stay bounded.
const queryCacheSize = 1 << 15

type node struct {
	children map[byte]*node
	terminal bool
}

// Trie is a prefix tree over upper-cased words. Immutable once built.
type Trie struct {
	root     *node
	prefixes *lru.Cache[string, bool]
	words    *lru.Cache[string, bool]
}

// NewTrie builds a Trie from list. Words are normalized to upper case so
// that multi-letter faces ("Qu") concatenate into dictionary spelling.
// An empty list yields a root-only trie that rejects every non-empty query.
func NewTrie(list []string) *Trie {
	root := &node{}
	for _, w := range list {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		n := root
		for i := 0; i < len(w); i++ {
			c := w[i]
			if n.children == nil {
				n.children = make(map[byte]*node)
			}
			child, ok := n.children[c]
			if !ok {
				child = &node{}
				n.children[c] = child
			}
			n = child
		}
		n.terminal = true
	}

	prefixes, _ := lru.New[string, bool](queryCacheSize)
	words, _ := lru.New[string, bool](queryCacheSize)
	return &Trie{root: root, prefixes: prefixes, words: words}
}

// IsValidPrefix reports whether s is a prefix of at least one dictionary
// word. The empty string is a trivially valid prefix.
func (t *Trie) IsValidPrefix(s string) bool {
	if s == "" {
		return true
	}
	s = strings.ToUpper(s)
	if v, ok := t.prefixes.Get(s); ok {
		return v
	}
	_, found := t.walk(s)
	t.prefixes.Add(s, found)
	return found
}

// IsWord reports whether s is a dictionary word of at least MinWordLen
// letters. Shorter inputs are rejected without descending the trie.
func (t *Trie) IsWord(s string) bool {
	if len(s) < MinWordLen {
		return false
	}
	s = strings.ToUpper(s)
	if v, ok := t.words.Get(s); ok {
		return v
	}
	n, found := t.walk(s)
	ok := found && n.terminal
	t.words.Add(s, ok)
	return ok
}

// walk descends from the root one byte at a time. Iterative: depth is
// bounded by the query length, not the call stack.
func (t *Trie) walk(s string) (*node, bool) {
	n := t.root
	for i := 0; i < len(s); i++ {
		next, ok := n.children[s[i]]
		if !ok {
			return nil, false
		}
		n = next
	}
	return n, true
}
