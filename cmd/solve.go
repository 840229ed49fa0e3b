// cmd/solve.go
//
// Solve a board without playing: print every findable word and the
// total score. The board is rolled like in play mode unless --board
// supplies an explicit face arrangement.

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gerald-lnj/goboggle/internal/board"
	"github.com/gerald-lnj/goboggle/internal/solver"
)

func init() {
	var boardSpec string

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a board and print every word with the total score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, boardSpec)
		},
	}
	solveCmd.Flags().StringVarP(&boardSpec, "board", "b", "", `faces as four comma-separated rows, e.g. "CATS,DEFG,HIJK,LMNO" (Qu is one face)`)
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, boardSpec string) error {
	trie, err := loadTrie()
	if err != nil {
		return err
	}

	var b *board.Board
	if boardSpec != "" {
		b, err = parseBoard(boardSpec)
	} else {
		b, err = newBoard()
	}
	if err != nil {
		return err
	}

	start := time.Now()
	words, err := solver.New(b, trie).Solve(cmd.Context())
	if err != nil {
		return err
	}
	total, err := solver.ScoreAll(words)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Int("words", len(words)).Msg("solve finished")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, b)
	fmt.Fprintf(out, "\n%d words: %s\n", len(words), strings.Join(words.Words(), ", "))
	fmt.Fprintf(out, "Board score: %d\n", total)
	return nil
}

// parseBoard splits "CATS,DEFG,HIJK,LMNO" into faces. "Qu" in any case
// is consumed as a single two-letter face.
func parseBoard(spec string) (*board.Board, error) {
	rows := strings.Split(spec, ",")
	faces := make([][]string, 0, len(rows))
	for _, row := range rows {
		var cur []string
		for i := 0; i < len(row); {
			if i+1 < len(row) && (row[i] == 'Q' || row[i] == 'q') && (row[i+1] == 'U' || row[i+1] == 'u') {
				cur = append(cur, row[i:i+2])
				i += 2
				continue
			}
			cur = append(cur, row[i:i+1])
			i++
		}
		faces = append(faces, cur)
	}
	return board.New(faces)
}
