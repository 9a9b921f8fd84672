package storage

import (
	"context"
	"fmt"

	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/model"
)

// Store is the persistence surface used by the command shell.
type Store interface {
	JournalAdd(ctx context.Context, entry model.JournalEntry) (int, error)
	JournalList(ctx context.Context, sessionID string, limit int) ([]model.JournalEntry, error)
	Close() error
}

// NewStore opens the store configured by cfg.
func NewStore(cfg *model.Config, logger *log.Logger) (*SQLiteStore, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	ctx := context.Background()
	if cfg == nil {
		logger.Error(ctx, "Config not initialized", nil)
		return nil, fmt.Errorf("config not initialized")
	}

	logger.Info(ctx, "Opening journal database", log.Fields{"dir": cfg.DatabaseDir, "file": cfg.DatabaseFile})
	store, err := NewSQLiteStore(cfg.DatabaseDir, cfg.DatabaseFile)
	if err != nil {
		logger.Error(ctx, "Failed to open journal database", log.Fields{"error": err})
		return nil, err
	}
	logger.Info(ctx, "Journal database opened successfully", nil)
	return store, nil
}
