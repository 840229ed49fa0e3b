// internal/solver/solver.go
//
// Full-board solving and single-guess validation.
// Responsibilities:
//   - Solve: drive the path enumerator over every unordered cell pair,
//     both directions, and collect the deduplicated word set.
//   - Attempt: validate one user-supplied guess independently of the
//     full-board enumeration.

package solver

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/gerald-lnj/goboggle/internal/board"
	"github.com/gerald-lnj/goboggle/internal/dict"
)

// WordSet holds the distinct words accepted for one board, keyed by
// letter content. It grows during a solve and is read-only afterwards.
type WordSet map[string]struct{}

// Contains reports whether w is in the set (case-insensitive).
func (ws WordSet) Contains(w string) bool {
	_, ok := ws[strings.ToUpper(w)]
	return ok
}

// Words returns the set's contents sorted alphabetically.
func (ws WordSet) Words() []string {
	out := make([]string, 0, len(ws))
	for w := range ws {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Solver finds every dictionary word embeddable as a simple path of
// adjacent cells on a board. The board and trie are read-only, so one
// Solver is safe for concurrent use.
type Solver struct {
	board *board.Board
	trie  *dict.Trie
}

// New constructs a Solver over an immutable board and dictionary trie.
func New(b *board.Board, t *dict.Trie) *Solver {
	return &Solver{board: b, trie: t}
}

// Solve enumerates paths between every unordered pair of distinct cells
// and collects the words they spell. Pairs are distributed across
// parallel workers; traversal state is per-worker and the trie's memo
// caches are safe for concurrent readers, so reruns on the same board
// yield the identical set. Returns ctx.Err() if canceled mid-solve.
func (s *Solver) Solve(ctx context.Context) (WordSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type pair struct{ a, b int }

	jobs := make(chan pair)
	found := make(WordSet)
	var mu sync.Mutex

	workers := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for p := range jobs {
				local := s.solvePair(p.a, p.b)
				if len(local) == 0 {
					continue
				}
				mu.Lock()
				for w := range local {
					found[w] = struct{}{}
				}
				mu.Unlock()
			}
		}()
	}

	var err error
feed:
	for a := 0; a < board.NumCells; a++ {
		for b := a + 1; b < board.NumCells; b++ {
			select {
			case jobs <- pair{a, b}:
			case <-ctx.Done():
				err = ctx.Err()
				break feed
			}
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	log.Debug().Int("words", len(found)).Msg("board solved")
	return found, nil
}

// solvePair enumerates both traversal directions for one cell pair.
// The search is not commutative: the trie can prune prefixes
// asymmetrically along one traversal order, so both directions always run.
func (s *Solver) solvePair(a, b int) WordSet {
	words := make(WordSet)
	for _, dir := range [2][2]int{{a, b}, {b, a}} {
		it := newPathIter(s.board, s.trie, dir[0], dir[1])
		for {
			path, ok := it.next()
			if !ok {
				break
			}
			words[s.pathWord(path)] = struct{}{}
		}
	}
	return words
}

// pathWord concatenates the upper-cased faces along path.
func (s *Solver) pathWord(path []int) string {
	var sb strings.Builder
	for _, c := range path {
		sb.WriteString(strings.ToUpper(s.board.Face(c)))
	}
	return sb.String()
}

// Attempt validates a single guess without running the full-board
// enumeration: the word must be a dictionary word and must be spellable
// as some simple path of matching faces. Returns the word's score and
// true, or 0 and false for an invalid guess.
func (s *Solver) Attempt(word string) (int, bool) {
	w := strings.ToUpper(strings.TrimSpace(word))
	if !s.trie.IsWord(w) {
		return 0, false
	}
	if !s.spellable(w) {
		return 0, false
	}
	pts, err := Score(w)
	if err != nil {
		return 0, false
	}
	return pts, true
}

// spellable reports whether word can be laid out as a simple path of
// adjacent cells whose faces spell it, trying every consistent cell
// assignment.
func (s *Solver) spellable(word string) bool {
	var used [board.NumCells]bool
	for i := 0; i < board.NumCells; i++ {
		if s.walk(word, i, &used) {
			return true
		}
	}
	return false
}

// walk consumes word starting at cell, extending through unvisited
// neighbors. Recursion depth is bounded by the word's length.
func (s *Solver) walk(word string, cell int, used *[board.NumCells]bool) bool {
	face := strings.ToUpper(s.board.Face(cell))
	if !strings.HasPrefix(word, face) {
		return false
	}
	rest := word[len(face):]
	if rest == "" {
		return true
	}
	used[cell] = true
	defer func() { used[cell] = false }()
	for _, n := range s.board.Graph().Neighbors(cell) {
		if !used[n] && s.walk(rest, n, used) {
			return true
		}
	}
	return false
}
