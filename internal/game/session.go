// internal/game/session.go
//
// State for a single Boggle session.
// Responsibilities:
//   - Validate guesses through the solver (dictionary + board path).
//   - Reject duplicate guesses.
//   - Track accepted words and accumulated points.
//   - Reveal the full solution when the game ends.
//
// randomID() is a compact hex identifier for correlating stored results.

package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gerald-lnj/goboggle/internal/board"
	"github.com/gerald-lnj/goboggle/internal/dict"
	"github.com/gerald-lnj/goboggle/internal/solver"
)

// Outcome classifies the result of one guess.
type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeInvalid   Outcome = "invalid"
)

// GuessResult reports how a single guess was resolved.
type GuessResult struct {
	Word    string
	Points  int
	Outcome Outcome
}

// Session holds the state of one game on one immutable board.
type Session struct {
	ID        string
	Board     *board.Board
	StartedAt time.Time

	solver  *solver.Solver
	guessed map[string]struct{}
	words   []string // accepted words in guess order
	points  int
}

// NewSession starts a game on b using the dictionary trie t.
func NewSession(b *board.Board, t *dict.Trie) *Session {
	return &Session{
		ID:        randomID(),
		Board:     b,
		StartedAt: time.Now(),
		solver:    solver.New(b, t),
		guessed:   make(map[string]struct{}),
	}
}

// Guess validates and applies one guess, mutating the session state only
// when the word is accepted.
func (s *Session) Guess(raw string) GuessResult {
	w := strings.ToUpper(strings.TrimSpace(raw))
	if _, ok := s.guessed[w]; ok {
		return GuessResult{Word: w, Outcome: OutcomeDuplicate}
	}
	pts, ok := s.solver.Attempt(w)
	if !ok {
		return GuessResult{Word: w, Outcome: OutcomeInvalid}
	}
	s.guessed[w] = struct{}{}
	s.words = append(s.words, w)
	s.points += pts
	return GuessResult{Word: w, Points: pts, Outcome: OutcomeAccepted}
}

// Words returns the accepted words in guess order.
func (s *Session) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Points returns the accumulated score.
func (s *Session) Points() int { return s.points }

// Reveal solves the whole board: every findable word plus the maximum
// attainable score.
func (s *Session) Reveal(ctx context.Context) (solver.WordSet, int, error) {
	words, err := s.solver.Solve(ctx)
	if err != nil {
		return nil, 0, err
	}
	best, err := solver.ScoreAll(words)
	if err != nil {
		return nil, 0, err
	}
	return words, best, nil
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
