// cmd/root.go
//
// Root command for the goboggle CLI, plus the helpers shared by the
// subcommands: dictionary resolution and board rolling.
//
// Environment variables (a .env file is loaded by main):
//   BOGGLE_WORDS_FILE  path to a word list, one word per line
//   BOGGLE_DB          path to the SQLite results database (optional)
//   BOGGLE_DAILY_SALT  salt for the daily board seed
//   LOG_LEVEL          zerolog level (default "info")

package cmd

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gerald-lnj/goboggle/internal/board"
	"github.com/gerald-lnj/goboggle/internal/daily"
	"github.com/gerald-lnj/goboggle/internal/dict"
)

var (
	wordsFile string
	tileSet   string
	seed      int64
	dailyMode bool
)

var rootCmd = &cobra.Command{
	Use:          "goboggle",
	Short:        "Boggle board solver and terminal game",
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&wordsFile, "words", "w", "", "word list path (one word per line); defaults to $BOGGLE_WORDS_FILE or the embedded list")
	pf.StringVarP(&tileSet, "tiles", "t", "classic", `tile set: "classic" or "new"`)
	pf.Int64Var(&seed, "seed", 0, "board RNG seed (0 rolls a random board)")
	pf.BoolVar(&dailyMode, "daily", false, "use today's deterministic board")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadTrie resolves the dictionary: --words flag, then BOGGLE_WORDS_FILE,
// then the embedded default list.
func loadTrie() (*dict.Trie, error) {
	path := wordsFile
	if path == "" {
		path = os.Getenv("BOGGLE_WORDS_FILE")
	}
	if path == "" {
		return dict.Default(), nil
	}
	return dict.Load(path)
}

// newBoard rolls the board for this invocation, honoring --daily and --seed.
func newBoard() (*board.Board, error) {
	s := seed
	if dailyMode {
		s = daily.BoardSeed(time.Now(), os.Getenv("BOGGLE_DAILY_SALT"))
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return board.Random(tileSet, rand.New(rand.NewSource(s)))
}
