// Package storage provides SQLite-based persistence for the flight log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for flight persistence.
type Store struct {
	db *sql.DB
}

// FlightRecord is a single completed flight: how it ended, the score for
// landings, and how much fuel and time it took.
type FlightRecord struct {
	ID        int64
	Outcome   string // "landed", "crashed_off_pad", "crashed_tilted", "crashed_too_fast"
	Score     int    // Non-zero only for landings
	FuelLeft  int
	Duration  int // Flight duration in ticks
	CreatedAt time.Time
}

// FlightStats contains aggregated statistics across the flight log.
type FlightStats struct {
	Flights    int
	Landings   int
	HighScore  int
	AvgScore   float64
	LastFlight time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS flights (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			fuel_left INTEGER NOT NULL DEFAULT 0,
			duration_ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_flights_score ON flights(score DESC);
		CREATE INDEX IF NOT EXISTS idx_flights_outcome ON flights(outcome);
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

// SaveFlight records a completed flight. Returns the inserted record ID.
func (s *Store) SaveFlight(rec FlightRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO flights (outcome, score, fuel_left, duration_ticks) VALUES (?, ?, ?, ?)",
		rec.Outcome, rec.Score, rec.FuelLeft, rec.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save flight: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopFlights retrieves the highest-scoring landings, best first.
func (s *Store) TopFlights(limit int) ([]FlightRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, score, fuel_left, duration_ticks, created_at
		 FROM flights
		 WHERE outcome = 'landed'
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	defer rows.Close()

	return scanFlights(rows)
}

// RecentFlights retrieves the most recent flights regardless of outcome.
func (s *Store) RecentFlights(limit int) ([]FlightRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, score, fuel_left, duration_ticks, created_at
		 FROM flights
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	defer rows.Close()

	return scanFlights(rows)
}

// scanFlights reads flight rows, tolerating both time.Time and string
// datetime representations from the driver.
func scanFlights(rows *sql.Rows) ([]FlightRecord, error) {
	var records []FlightRecord
	for rows.Next() {
		var rec FlightRecord
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Outcome, &rec.Score, &rec.FuelLeft, &rec.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTimestamp handles both time.Time and string datetime values.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the best landing score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM flights WHERE outcome = 'landed'",
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for the whole flight log.
func (s *Store) Stats() (*FlightStats, error) {
	stats := &FlightStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'landed' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(CASE WHEN outcome = 'landed' THEN score END), 0),
		        COALESCE(AVG(CASE WHEN outcome = 'landed' THEN score END), 0)
		 FROM flights`,
	).Scan(&stats.Flights, &stats.Landings, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastFlight any
	err = s.db.QueryRow(
		`SELECT created_at FROM flights ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastFlight)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last flight: %w", err)
	}
	if err == nil {
		stats.LastFlight = parseTimestamp(lastFlight)
	}

	return stats, nil
}

// ClearFlights deletes the entire flight log.
func (s *Store) ClearFlights() error {
	_, err := s.db.Exec("DELETE FROM flights")
	if err != nil {
		return fmt.Errorf("storage: cannot clear flights: %w", err)
	}
	return nil
}
