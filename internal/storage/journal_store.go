package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"mcoo/local-app/internal/model"
)

// SQLiteJournalStorage records executed shell commands.
type SQLiteJournalStorage struct {
	db *sql.DB
}

func NewSQLiteJournalStorage(db *sql.DB) *SQLiteJournalStorage {
	return &SQLiteJournalStorage{db: db}
}

// JournalAdd appends an entry and returns its id. A zero Created time is
// replaced with the current time.
func (s *SQLiteJournalStorage) JournalAdd(ctx context.Context, entry model.JournalEntry) (int, error) {
	args, err := json.Marshal(entry.Args)
	if err != nil {
		return 0, fmt.Errorf("failed to encode command arguments: %w", err)
	}
	if entry.Created.IsZero() {
		entry.Created = time.Now()
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO journal (session_id, scope, operation, args, ok, message, created) VALUES (?, ?, ?, ?, ?, ?, ?)",
		entry.SessionID, entry.Scope, entry.Operation, string(args), entry.OK, entry.Message,
		entry.Created.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to add journal entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return int(id), nil
}

// JournalList returns up to limit of the most recent entries, oldest first.
// An empty sessionID lists every session; a limit of 0 or less lists all.
func (s *SQLiteJournalStorage) JournalList(ctx context.Context, sessionID string, limit int) ([]model.JournalEntry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, scope, operation, args, ok, message, created
		FROM journal
		WHERE ? = '' OR session_id = ?
		ORDER BY id DESC
		LIMIT ?
	`, sessionID, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []model.JournalEntry
	for rows.Next() {
		var (
			e       model.JournalEntry
			args    string
			created string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Scope, &e.Operation, &args, &e.OK, &e.Message, &created); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		if err := json.Unmarshal([]byte(args), &e.Args); err != nil {
			return nil, fmt.Errorf("failed to decode arguments of journal entry %d: %w", e.ID, err)
		}
		if e.Created, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("failed to parse time of journal entry %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
