// Package storage keeps the run log of cleared mazes in an in-memory SQLite
// database. Nothing outlives the process.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection holding clear records.
type Store struct {
	db *sql.DB
}

// ClearRecord is one cleared maze.
type ClearRecord struct {
	ID           int64
	GameID       string
	Round        int
	Seed         int64
	Width        int
	Height       int
	FakeWalls    int
	Moves        int
	OptimalMoves int
	Duration     time.Duration
	ClearedAt    time.Time
}

// RunStats aggregates the clears of one game.
type RunStats struct {
	GameID     string
	Clears     int
	Best       time.Duration
	Average    time.Duration
	TotalMoves int
	LastClear  time.Time
}

// OpenMemory opens a private in-memory database and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every pooled connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			round INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			fake_walls INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			optimal_moves INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			cleared_at_ns INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_clears_fastest ON clears(game_id, duration_ns);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveClear records a cleared maze. Returns the ID of the inserted record.
func (s *Store) SaveClear(rec ClearRecord) (int64, error) {
	if rec.ClearedAt.IsZero() {
		rec.ClearedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO clears
		 (game_id, round, seed, width, height, fake_walls, moves, optimal_moves, duration_ns, cleared_at_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, rec.Round, rec.Seed, rec.Width, rec.Height, rec.FakeWalls,
		rec.Moves, rec.OptimalMoves, int64(rec.Duration), rec.ClearedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save clear: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectClears = `SELECT id, game_id, round, seed, width, height, fake_walls,
		        moves, optimal_moves, duration_ns, cleared_at_ns
		 FROM clears`

// TopClears retrieves the N fastest clears for the given game.
func (s *Store) TopClears(gameID string, limit int) ([]ClearRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryClears(selectClears+`
		 WHERE game_id = ?
		 ORDER BY duration_ns ASC, id ASC
		 LIMIT ?`, gameID, limit)
}

// AllClears retrieves every clear for the given game in the order played.
func (s *Store) AllClears(gameID string) ([]ClearRecord, error) {
	return s.queryClears(selectClears+`
		 WHERE game_id = ?
		 ORDER BY id ASC`, gameID)
}

// BestClear returns the fastest clear for the given game, or nil if none.
func (s *Store) BestClear(gameID string) (*ClearRecord, error) {
	top, err := s.TopClears(gameID, 1)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, nil
	}
	return &top[0], nil
}

func (s *Store) queryClears(query string, args ...any) ([]ClearRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	defer rows.Close()

	var records []ClearRecord
	for rows.Next() {
		var r ClearRecord
		var durationNs, clearedAtNs int64
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Round,
			&r.Seed,
			&r.Width,
			&r.Height,
			&r.FakeWalls,
			&r.Moves,
			&r.OptimalMoves,
			&durationNs,
			&clearedAtNs,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationNs)
		r.ClearedAt = time.Unix(0, clearedAtNs)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats retrieves aggregated statistics for the given game.
func (s *Store) Stats(gameID string) (*RunStats, error) {
	stats := &RunStats{GameID: gameID}

	var best, lastNs int64
	var avg float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(duration_ns), 0), COALESCE(AVG(duration_ns), 0),
		        COALESCE(SUM(moves), 0), COALESCE(MAX(cleared_at_ns), 0)
		 FROM clears WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Clears, &best, &avg, &stats.TotalMoves, &lastNs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.Best = time.Duration(best)
	stats.Average = time.Duration(avg)
	if stats.Clears > 0 {
		stats.LastClear = time.Unix(0, lastNs)
	}

	return stats, nil
}
