package game

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gerald-lnj/goboggle/internal/board"
	"github.com/gerald-lnj/goboggle/internal/dict"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	b, err := board.New([][]string{
		{"C", "A", "T", "S"},
		{"D", "E", "F", "G"},
		{"H", "I", "J", "K"},
		{"L", "M", "N", "O"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewSession(b, dict.NewTrie([]string{"CAT", "CATS", "AT"}))
}

func TestSessionGuess(t *testing.T) {
	s := newTestSession(t)

	res := s.Guess("cat")
	if res.Outcome != OutcomeAccepted || res.Points != 1 || res.Word != "CAT" {
		t.Fatalf("first guess = %+v", res)
	}

	if res := s.Guess("CAT"); res.Outcome != OutcomeDuplicate {
		t.Fatalf("duplicate guess = %+v", res)
	}

	if res := s.Guess("DOG"); res.Outcome != OutcomeInvalid {
		t.Fatalf("unknown word = %+v", res)
	}
	if res := s.Guess("AT"); res.Outcome != OutcomeInvalid {
		t.Fatalf("short word = %+v", res)
	}

	if res := s.Guess("CATS"); res.Outcome != OutcomeAccepted {
		t.Fatalf("second word = %+v", res)
	}

	if got := s.Points(); got != 2 {
		t.Fatalf("Points = %d, want 2", got)
	}
	if words := s.Words(); len(words) != 2 || words[0] != "CAT" || words[1] != "CATS" {
		t.Fatalf("Words = %v", words)
	}
}

func TestSessionIDsDiffer(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("session IDs should be unique, got %q and %q", a.ID, b.ID)
	}
}

func TestSessionReveal(t *testing.T) {
	s := newTestSession(t)

	words, best, err := s.Reveal(context.Background())
	if err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if !words.Contains("CAT") || !words.Contains("CATS") {
		t.Fatalf("Reveal words = %v", words.Words())
	}
	if best != 2 {
		t.Fatalf("best score = %d, want 2", best)
	}
}

func TestRunLoop(t *testing.T) {
	s := newTestSession(t)

	in := strings.NewReader("cat\ncat\ndog\nquit\n")
	var out bytes.Buffer
	if err := Run(context.Background(), s, in, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"CAT was worth 1 points",
		"you already guessed CAT",
		"DOG is not a valid word",
		"Your score: 1",
		"Best possible score: 2",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}
