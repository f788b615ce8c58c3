package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type Storage struct {
	DB *sql.DB
}

// Open connects to url. Remote libsql/Turso URLs go through the libsql driver, anything else
// is treated as a local sqlite file.
func Open(url string) (*Storage, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("database url is empty")
	}

	driver := driverFor(url)
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", url, err)
	}

	if driver == "sqlite" {
		// One writer at a time; keeps the foreign_keys pragma on the only connection.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			db.Close()
			return nil, fmt.Errorf("Failed to enable foreign keys: %w", err)
		}
	}

	if err := initializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func driverFor(url string) string {
	for _, prefix := range []string{"libsql://", "http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(url, prefix) {
			return "libsql"
		}
	}
	return "sqlite"
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS workout_logs (
            id TEXT PRIMARY KEY,
            workout_name TEXT NOT NULL,
            duration_minutes INTEGER NOT NULL,
            notes TEXT,
            logged_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS workout_log_exercises (
            id TEXT PRIMARY KEY,
            workout_log_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            name TEXT NOT NULL,
            muscle_group TEXT NOT NULL,
            notes TEXT,
            FOREIGN KEY (workout_log_id) REFERENCES workout_logs(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS workout_log_sets (
            id TEXT PRIMARY KEY,
            log_exercise_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            weight REAL NOT NULL,
            reps INTEGER NOT NULL,
            FOREIGN KEY (log_exercise_id) REFERENCES workout_log_exercises(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS xp_ledger (
            id TEXT PRIMARY KEY,
            action_type TEXT NOT NULL,
            xp_amount INTEGER NOT NULL,
            awarded_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS daily_entries (
            id TEXT PRIMARY KEY,
            day TEXT NOT NULL,
            kind TEXT NOT NULL,
            name TEXT NOT NULL,
            amount REAL,
            unit TEXT,
            logged_at TEXT NOT NULL
        );

        CREATE INDEX IF NOT EXISTS idx_daily_entries_day ON daily_entries(day);
    `)
	return err
}
