// Package storage persists answers received by the form collector.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrEmptyAnswer is returned by SaveResponse for a blank answer.
var ErrEmptyAnswer = errors.New("storage: empty answer")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Response is one received form submission.
type Response struct {
	ID         int64
	Answer     string
	RemoteAddr string
	UserAgent  string
	CreatedAt  time.Time
}

// AnswerCount is the number of responses with a given answer.
type AnswerCount struct {
	Answer string
	Count  int
	Last   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
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

	// SQLite allows one writer; concurrent collector requests queue here.
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
		CREATE TABLE IF NOT EXISTS responses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			answer TEXT NOT NULL,
			remote_addr TEXT NOT NULL DEFAULT '',
			user_agent TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_responses_answer ON responses(answer);
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

// SaveResponse records a received answer.
// Returns the ID of the inserted record.
func (s *Store) SaveResponse(r Response) (int64, error) {
	answer := strings.TrimSpace(r.Answer)
	if answer == "" {
		return 0, ErrEmptyAnswer
	}

	result, err := s.db.Exec(
		"INSERT INTO responses (answer, remote_addr, user_agent) VALUES (?, ?, ?)",
		answer, r.RemoteAddr, r.UserAgent,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save response: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResponses retrieves the newest responses first.
func (s *Store) RecentResponses(limit int) ([]Response, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, answer, remote_addr, user_agent, created_at
		 FROM responses
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query responses: %w", err)
	}
	defer rows.Close()

	var entries []Response
	for rows.Next() {
		var r Response
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Answer, &r.RemoteAddr, &r.UserAgent, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// AnswerCounts returns how often each answer was received, most common first.
func (s *Store) AnswerCounts() ([]AnswerCount, error) {
	rows, err := s.db.Query(
		`SELECT answer, COUNT(*), MAX(created_at)
		 FROM responses
		 GROUP BY answer
		 ORDER BY COUNT(*) DESC, answer ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count answers: %w", err)
	}
	defer rows.Close()

	var counts []AnswerCount
	for rows.Next() {
		var c AnswerCount
		var last any
		if err := rows.Scan(&c.Answer, &c.Count, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan count row: %w", err)
		}
		c.Last = parseTime(last)
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearResponses deletes every stored response.
func (s *Store) ClearResponses() error {
	if _, err := s.db.Exec("DELETE FROM responses"); err != nil {
		return fmt.Errorf("storage: cannot clear responses: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
