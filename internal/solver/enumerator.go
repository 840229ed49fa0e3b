// internal/solver/enumerator.go
//
// Simple-path enumeration between two cells, pruned by live dictionary
// prefix checks. This pruning is what keeps full-board solving tractable:
// naive simple-path enumeration over a 16-node graph with branching
// factor up to 8 grows factorially, so every partial path is abandoned
// the moment its letters stop being a valid dictionary prefix.
//
// The enumerator is an explicit iterative state machine — a stack of
// frontier cursors paired with the ordered visited path — rather than a
// recursive generator, so backtracking and suspension points stay
// visible and testable.

package solver

import (
	"strings"

	"github.com/gerald-lnj/goboggle/internal/board"
	"github.com/gerald-lnj/goboggle/internal/dict"
)

// cursor walks one cell's neighbor list.
type cursor struct {
	neighbors []int
	pos       int
}

func (c *cursor) next() (int, bool) {
	if c.pos >= len(c.neighbors) {
		return 0, false
	}
	n := c.neighbors[c.pos]
	c.pos++
	return n, true
}

// pathIter lazily enumerates simple paths from source to target whose
// full word is a dictionary word and whose every prefix is a valid
// dictionary prefix. It exhausts deterministically; a fresh iterator
// over the same immutable board and trie reproduces the same sequence.
type pathIter struct {
	g      *board.Graph
	faces  [board.NumCells]string // upper-cased face per cell
	trie   *dict.Trie
	target int
	cutoff int

	visited []int // current partial path, source first
	onPath  [board.NumCells]bool
	stack   []cursor // one frontier cursor per visited cell
	words   []string // words[i] spells visited[:i+1]
}

func newPathIter(b *board.Board, t *dict.Trie, source, target int) *pathIter {
	g := b.Graph()
	it := &pathIter{
		g:      g,
		trie:   t,
		target: target,
		cutoff: g.Len() - 1,
	}
	for i := 0; i < board.NumCells; i++ {
		it.faces[i] = strings.ToUpper(b.Face(i))
	}
	it.push(source)
	return it
}

// next returns the next accepted path, or false once the search space is
// exhausted. The returned slice is a fresh copy.
func (it *pathIter) next() ([]int, bool) {
	for len(it.stack) > 0 {
		// Prune: abandon the partial path as soon as its letters are no
		// longer a valid dictionary prefix.
		if !it.trie.IsValidPrefix(it.word()) {
			it.pop()
			continue
		}

		cur := &it.stack[len(it.stack)-1]
		child, ok := cur.next()
		if !ok {
			// All continuations from this cell are exhausted.
			it.pop()
			continue
		}

		if len(it.visited) < it.cutoff {
			if it.onPath[child] {
				continue // simple-path constraint: no cell repeats
			}
			if child == it.target {
				if it.trie.IsWord(it.word() + it.faces[child]) {
					return it.claim(child), true
				}
				continue
			}
			it.push(child)
			continue
		}

		// Cutoff reached: the path may only terminate on an adjacent,
		// unvisited target; either way this frontier is done.
		found := false
		if !it.onPath[it.target] {
			if child == it.target {
				found = true
			} else {
				for _, n := range cur.neighbors[cur.pos:] {
					if n == it.target {
						found = true
						break
					}
				}
			}
		}
		if found && it.trie.IsWord(it.word()+it.faces[it.target]) {
			p := it.claim(it.target)
			it.pop()
			return p, true
		}
		it.pop()
	}
	return nil, false
}

func (it *pathIter) push(cell int) {
	prev := ""
	if n := len(it.words); n > 0 {
		prev = it.words[n-1]
	}
	it.visited = append(it.visited, cell)
	it.onPath[cell] = true
	it.stack = append(it.stack, cursor{neighbors: it.g.Neighbors(cell)})
	it.words = append(it.words, prev+it.faces[cell])
}

func (it *pathIter) pop() {
	n := len(it.visited) - 1
	it.onPath[it.visited[n]] = false
	it.visited = it.visited[:n]
	it.stack = it.stack[:n]
	it.words = it.words[:n]
}

// word spells the current partial path.
func (it *pathIter) word() string { return it.words[len(it.words)-1] }

// claim copies the current path extended by last.
func (it *pathIter) claim(last int) []int {
	p := make([]int, len(it.visited)+1)
	copy(p, it.visited)
	p[len(p)-1] = last
	return p
}
