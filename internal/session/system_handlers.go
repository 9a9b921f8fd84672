package session

import (
	"context"
	"fmt"
	"strconv"

	"mcoo/local-app/internal/model"
	"mcoo/local-app/internal/registry"
)

func initEditCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"undo":  handleEditUndo,
		"redo":  handleEditRedo,
		"clear": handleEditClear,
	}
}

func initRegistryCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"list": handleRegistryList,
	}
}

func initJournalCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"list": handleJournalList,
	}
}

func initSystemCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"exit": handleSystemExit,
		"quit": handleSystemExit,
	}
}

func handleEditUndo(s *Session, cmd model.Command) (interface{}, error) {
	if !s.Elements.Undo() {
		return "Nothing to undo", nil
	}
	return fmt.Sprintf("Undone (%d more)", s.Elements.HistoryPastLen()), nil
}

func handleEditRedo(s *Session, cmd model.Command) (interface{}, error) {
	if !s.Elements.Redo() {
		return "Nothing to redo", nil
	}
	return fmt.Sprintf("Redone (%d more)", s.Elements.HistoryFutureLen()), nil
}

func handleEditClear(s *Session, cmd model.Command) (interface{}, error) {
	n := s.Elements.Len()
	if !s.Elements.ElementsClear() {
		return "Canvas already empty", nil
	}
	return fmt.Sprintf("Cleared %d elements", n), nil
}

// handleRegistryList returns the toolbar sections, or the types of one category.
func handleRegistryList(s *Session, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) == 0 {
		return registry.Sections(), nil
	}
	types := registry.ByCategory(registry.Category(cmd.Args[0]))
	if len(types) == 0 {
		return nil, fmt.Errorf("unknown category: %s", cmd.Args[0])
	}
	return types, nil
}

// handleJournalList returns the most recent commands of this session, or of
// every session with --all.
func handleJournalList(s *Session, cmd model.Command) (interface{}, error) {
	if s.Store == nil {
		return nil, fmt.Errorf("command journal not available")
	}

	limit, sessionID := 20, s.ID
	for _, arg := range cmd.Args {
		if arg == "--all" {
			sessionID = ""
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid count %q", arg)
		}
		limit = n
	}

	entries, err := s.Store.JournalList(context.Background(), sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}

// handleSystemExit ends the session. Unsaved changes block the exit unless
// --force is given.
func handleSystemExit(s *Session, cmd model.Command) (interface{}, error) {
	force := len(cmd.Args) == 1 && cmd.Args[0] == "--force"
	if len(cmd.Args) == 1 && !force {
		return nil, fmt.Errorf("usage: system %s [--force]", cmd.Operation)
	}
	if s.Elements.Dirty() && !force {
		return nil, fmt.Errorf("unsaved changes; save the project or use 'system %s --force'", cmd.Operation)
	}
	return "Exiting...", ErrExit
}
