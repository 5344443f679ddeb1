// Package storage keeps a local history of exploratory runs, so past
// combination searches (which can take hours) don't have to be repeated to
// recall their result.
package storage

import (
	"database/sql"
	"os"
	"os/user"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// Run is one completed exploratory pass.
type Run struct {
	ID          int64
	StartedAt   time.Time
	Size        int
	Excluded    string
	Combos      int
	BestLetters string
	BestScore   int
	Duration    time.Duration
}

func getDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback: get home dir from user.Current()
		if u, userErr := user.Current(); userErr == nil {
			home = u.HomeDir
		} else {
			return "", err
		}
	}
	dataDir := filepath.Join(home, ".local", "share", "watchwords")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// New opens the store at its default location under the user's data dir.
func New() (*Store, error) {
	dataDir, err := getDataDir()
	if err != nil {
		return nil, err
	}
	return Open(filepath.Join(dataDir, "watchwords.db"))
}

// Open opens or creates the store at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS explorations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at DATETIME NOT NULL,
		combo_size INTEGER NOT NULL,
		excluded TEXT NOT NULL DEFAULT '',
		combos INTEGER NOT NULL,
		best_letters TEXT NOT NULL,
		best_score INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_explorations_started ON explorations(started_at);
	`
	_, err := db.Exec(schema)
	return err
}

// RecordRun inserts a completed run. Callers record only after the pass
// finishes, so an interrupted exploration leaves no partial row.
func (s *Store) RecordRun(r Run) error {
	_, err := s.db.Exec(`
		INSERT INTO explorations (started_at, combo_size, excluded, combos, best_letters, best_score, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.StartedAt.UTC(), r.Size, r.Excluded, r.Combos, r.BestLetters, r.BestScore, r.Duration.Milliseconds())
	return err
}

// RecentRuns returns up to n runs, newest first.
func (s *Store) RecentRuns(n int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT id, started_at, combo_size, excluded, combos, best_letters, best_score, duration_ms
		FROM explorations
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ms int64
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.Size, &r.Excluded, &r.Combos, &r.BestLetters, &r.BestScore, &ms); err != nil {
			return nil, err
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
