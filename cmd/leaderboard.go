// cmd/leaderboard.go
//
// Show the best recorded games for a date from the results database.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gerald-lnj/goboggle/internal/daily"
	"github.com/gerald-lnj/goboggle/internal/store"
)

func init() {
	var (
		date  string
		limit int
	)

	lbCmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the best recorded games for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLeaderboard(cmd, date, limit)
		},
	}
	lbCmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (defaults to today)")
	lbCmd.Flags().IntVar(&limit, "limit", 20, "maximum rows to show")
	rootCmd.AddCommand(lbCmd)
}

func runLeaderboard(cmd *cobra.Command, date string, limit int) error {
	dsn := os.Getenv("BOGGLE_DB")
	if dsn == "" {
		return errors.New("no results database configured (set BOGGLE_DB)")
	}
	if date == "" {
		date = daily.DateKey(time.Now())
	}

	st, err := store.Open(dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	rows, err := st.Leaderboard(cmd.Context(), date, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintf(out, "no games recorded for %s\n", date)
		return nil
	}
	fmt.Fprintf(out, "Leaderboard for %s\n", date)
	for i, r := range rows {
		fmt.Fprintf(out, "%2d. %s  %d words  %d points\n", i+1, r.GameID, r.Words, r.Points)
	}
	return nil
}
