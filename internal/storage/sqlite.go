package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"mcoo/local-app/internal/model"
)

// SQLiteStore is the SQLite backed Store.
type SQLiteStore struct {
	database       *SQLiteDatabase
	JournalStorage *SQLiteJournalStorage
}

// NewSQLiteStore opens (creating when needed) the database dbDir/dbFile.
func NewSQLiteStore(dbDir, dbFile string) (*SQLiteStore, error) {
	database := &SQLiteDatabase{}
	if err := database.Open(filepath.Join(dbDir, dbFile)); err != nil {
		return nil, err
	}

	store := &SQLiteStore{database: database}
	if err := store.initSchema(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	store.JournalStorage = NewSQLiteJournalStorage(database.DB())

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.database.Close()
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.database.DB().Exec(`
		CREATE TABLE IF NOT EXISTS journal (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			scope TEXT NOT NULL,
			operation TEXT NOT NULL,
			args TEXT NOT NULL DEFAULT '[]',
			ok BOOLEAN NOT NULL DEFAULT 1,
			message TEXT NOT NULL DEFAULT '',
			created TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS journal_session ON journal (session_id, id);
	`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func (s *SQLiteStore) JournalAdd(ctx context.Context, entry model.JournalEntry) (int, error) {
	return s.JournalStorage.JournalAdd(ctx, entry)
}

func (s *SQLiteStore) JournalList(ctx context.Context, sessionID string, limit int) ([]model.JournalEntry, error) {
	return s.JournalStorage.JournalList(ctx, sessionID, limit)
}
