// cmd/play.go
//
// Interactive game: roll a board, read guesses from the terminal, and
// record the finished result when a results database is configured.

package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gerald-lnj/goboggle/internal/daily"
	"github.com/gerald-lnj/goboggle/internal/game"
	"github.com/gerald-lnj/goboggle/internal/store"
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game on a fresh board",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	trie, err := loadTrie()
	if err != nil {
		return err
	}
	b, err := newBoard()
	if err != nil {
		return err
	}

	sess := game.NewSession(b, trie)
	log.Debug().Str("game", sess.ID).Str("board", b.Letters()).Msg("session started")
	if err := game.Run(cmd.Context(), sess, os.Stdin, os.Stdout); err != nil {
		return err
	}

	recordResult(cmd, sess)
	return nil
}

// recordResult stores the finished game when BOGGLE_DB is set. Storage
// problems are logged, never fatal: the game already happened.
func recordResult(cmd *cobra.Command, sess *game.Session) {
	dsn := os.Getenv("BOGGLE_DB")
	if dsn == "" {
		return
	}
	st, err := store.Open(dsn)
	if err != nil {
		log.Warn().Err(err).Msg("results store unavailable")
		return
	}
	defer st.Close()

	res := store.Result{
		GameID: sess.ID,
		Date:   daily.DateKey(time.Now()),
		Board:  sess.Board.Letters(),
		Words:  len(sess.Words()),
		Points: sess.Points(),
	}
	if err := st.InsertResult(cmd.Context(), res); err != nil {
		log.Warn().Err(err).Msg("failed to record result")
		return
	}
	log.Info().Str("game", sess.ID).Int("points", res.Points).Msg("result recorded")
}
