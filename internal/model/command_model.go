package model

import "time"

// Command represents a user command with its scope, operation, and arguments
type Command struct {
	Scope     string
	Operation string
	Args      []string
}

// JournalEntry is one executed shell command as recorded in the command journal.
type JournalEntry struct {
	ID        int
	SessionID string
	Scope     string
	Operation string
	Args      []string
	OK        bool
	Message   string
	Created   time.Time
}
