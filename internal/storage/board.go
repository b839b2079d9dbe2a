// Package storage keeps the session leaderboard in an in-memory SQLite
// database. Nothing is written to disk; the board lives as long as the process.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Board records finished runs for the lifetime of the process.
// It is safe for concurrent use by several sessions.
type Board struct {
	db *sqlx.DB
}

// Run is one finished run.
type Run struct {
	ID        uuid.UUID
	Player    string
	Score     int
	Rings     int
	Ticks     int
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the run lasted in wall time.
func (r Run) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// runRow is the database shape of a Run. Times are unix nanoseconds.
type runRow struct {
	ID        string `db:"id"`
	Player    string `db:"player"`
	Score     int    `db:"score"`
	Rings     int    `db:"rings"`
	Ticks     int    `db:"ticks"`
	StartedAt int64  `db:"started_at"`
	EndedAt   int64  `db:"ended_at"`
}

func (r runRow) run() (Run, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return Run{}, fmt.Errorf("storage: bad run id %q: %w", r.ID, err)
	}
	return Run{
		ID:        id,
		Player:    r.Player,
		Score:     r.Score,
		Rings:     r.Rings,
		Ticks:     r.Ticks,
		StartedAt: time.Unix(0, r.StartedAt),
		EndedAt:   time.Unix(0, r.EndedAt),
	}, nil
}

// Stats contains aggregated statistics over all recorded runs.
type Stats struct {
	Runs       int     `db:"runs"`
	BestScore  int     `db:"best"`
	AvgScore   float64 `db:"avg"`
	TotalRings int64   `db:"rings"`
	TotalTicks int64   `db:"ticks"`
}

// ErrInvalidRun is returned when a run cannot be recorded.
var ErrInvalidRun = errors.New("storage: invalid run")

// Open creates an empty board.
func Open() (*Board, error) {
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	b := &Board{db: db}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return b, nil
}

// migrate creates the schema.
func (b *Board) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			rings INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, ended_at);
	`
	_, err := b.db.Exec(schema)
	return err
}

// Close releases the board. Its contents are lost.
func (b *Board) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// RecordRun stores a finished run. A zero ID is replaced by a fresh one and
// an empty player name becomes "anonymous". Returns the stored run.
func (b *Board) RecordRun(r Run) (Run, error) {
	if r.Score < 0 || r.Rings < 0 || r.Ticks < 0 {
		return Run{}, fmt.Errorf("%w: negative totals", ErrInvalidRun)
	}
	if r.EndedAt.Before(r.StartedAt) {
		return Run{}, fmt.Errorf("%w: ends before it starts", ErrInvalidRun)
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Player = strings.TrimSpace(r.Player); r.Player == "" {
		r.Player = "anonymous"
	}

	_, err := b.db.NamedExec(
		`INSERT INTO runs (id, player, score, rings, ticks, started_at, ended_at)
		 VALUES (:id, :player, :score, :rings, :ticks, :started_at, :ended_at)`,
		runRow{
			ID:        r.ID.String(),
			Player:    r.Player,
			Score:     r.Score,
			Rings:     r.Rings,
			Ticks:     r.Ticks,
			StartedAt: r.StartedAt.UnixNano(),
			EndedAt:   r.EndedAt.UnixNano(),
		},
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r, nil
}

// TopRuns returns the best runs, highest score first. Ties go to the
// earlier finish.
func (b *Board) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []runRow
	err := b.db.Select(&rows,
		`SELECT id, player, score, rings, ticks, started_at, ended_at
		 FROM runs
		 ORDER BY score DESC, ended_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}

	runs := make([]Run, 0, len(rows))
	for _, row := range rows {
		r, err := row.run()
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, nil
}

// Best returns the highest score on the board, 0 when it is empty.
func (b *Board) Best() (int, error) {
	var best sql.NullInt64
	if err := b.db.Get(&best, "SELECT MAX(score) FROM runs"); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Stats aggregates every recorded run.
func (b *Board) Stats() (Stats, error) {
	var s Stats
	err := b.db.Get(&s,
		`SELECT COUNT(*) AS runs,
		        COALESCE(MAX(score), 0) AS best,
		        COALESCE(AVG(score), 0) AS avg,
		        COALESCE(SUM(rings), 0) AS rings,
		        COALESCE(SUM(ticks), 0) AS ticks
		 FROM runs`,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return s, nil
}
