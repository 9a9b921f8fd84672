package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDatabase wraps a SQLite connection opened with the journal pragmas.
type SQLiteDatabase struct {
	db *sql.DB
}

// Open opens a connection to the SQLite database
func (s *SQLiteDatabase) Open(dataSourceName string) error {
	// Ensure the directory for the database file exists
	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory '%s': %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dataSourceName+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// One writer; the shell journals commands one at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		db.Close()
		return fmt.Errorf("failed to set SQLite synchronous pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA cache_size = 5000"); err != nil {
		db.Close()
		return fmt.Errorf("failed to set SQLite cache pragma: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to verify database connection: %w", err)
	}

	s.db = db
	return nil
}

// DB returns the underlying connection pool.
func (s *SQLiteDatabase) DB() *sql.DB {
	return s.db
}

// Close closes the connection to the SQLite database
func (s *SQLiteDatabase) Close() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close SQLite database: %w", err)
		}
		s.db = nil
	}
	return nil
}
