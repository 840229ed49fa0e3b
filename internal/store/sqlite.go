// internal/store/sqlite.go
//
// SQLite-backed store of finished game results.
// Responsibilities:
//   - Open (and create if missing) the database file with safe defaults
//     (WAL journaling, busy timeout, foreign keys).
//   - Apply the embedded schema idempotently.
//   - Insert finished results and query a per-date leaderboard.
//
// Only final outcomes are recorded; in-progress games are never persisted.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS game_results (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT NOT NULL UNIQUE,
	date       TEXT NOT NULL,
	board      TEXT NOT NULL,
	words      INTEGER NOT NULL,
	points     INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_game_results_date ON game_results(date);
`

// Result is one finished game.
type Result struct {
	GameID string
	Date   string // YYYY-MM-DD
	Board  string // the 16 faces in row-major order
	Words  int    // accepted word count
	Points int
}

// LeaderboardRow is one leaderboard entry for a date.
type LeaderboardRow struct {
	GameID string
	Words  int
	Points int
}

// Store persists finished game results in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at dsn, creating parent directories and
// the schema as needed.
func Open(dsn string) (*Store, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// InsertResult records a finished game. Re-inserting the same game ID is
// ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO game_results(game_id, date, board, words, points)
		VALUES(?,?,?,?,?)`,
		r.GameID, r.Date, r.Board, r.Words, r.Points,
	)
	return err
}

// Leaderboard returns the best results for a date, highest points first.
// Default limit is 20 if not specified.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT game_id, words, points
		FROM game_results
		WHERE date=?
		ORDER BY points DESC, words DESC, created_at ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaderboardRow, 0, limit)
	for rows.Next() {
		var r LeaderboardRow
		if err := rows.Scan(&r.GameID, &r.Words, &r.Points); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
