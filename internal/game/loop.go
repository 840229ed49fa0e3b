// internal/game/loop.go
//
// Interactive terminal loop: render the board, read guesses line by
// line, score each one, and reveal the full solution on exit.

package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vyevs/ansi"
)

// Run drives an interactive session over in/out. Each input line is
// scored as a guess; a blank line or "quit" ends the game and reveals
// the board's full word set and best possible score.
func Run(ctx context.Context, s *Session, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "%s%s%s\n\n", ansi.FGColorName("cyan"), s.Board, ansi.Clear)
	fmt.Fprintln(out, `Type a word and press enter. A blank line or "quit" finishes the game.`)

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.EqualFold(line, "quit") {
			break
		}

		res := s.Guess(line)
		switch res.Outcome {
		case OutcomeAccepted:
			fmt.Fprintf(out, "%s%s was worth %d points%s\n", ansi.FGColorName("green"), res.Word, res.Points, ansi.Clear)
		case OutcomeDuplicate:
			fmt.Fprintf(out, "%syou already guessed %s%s\n", ansi.FGColorName("yellow"), res.Word, ansi.Clear)
		default:
			fmt.Fprintf(out, "%s%s is not a valid word%s\n", ansi.FGColorName("red"), res.Word, ansi.Clear)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Fprintf(out, "\nYour words: %s\n", strings.Join(s.Words(), ", "))
	fmt.Fprintf(out, "Your score: %d\n", s.Points())

	all, best, err := s.Reveal(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "All possible words: %s\n", strings.Join(all.Words(), ", "))
	fmt.Fprintf(out, "Best possible score: %d\n", best)
	return nil
}
