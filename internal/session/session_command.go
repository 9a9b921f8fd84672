package session

import (
	"errors"
	"fmt"

	"mcoo/local-app/internal/model"
)

// SessionCommand wraps the model.Command and adds argument validation
type SessionCommand struct {
	model.Command
}

// NewSessionCommand creates a new SessionCommand from a model.Command
func NewSessionCommand(cmd model.Command) SessionCommand {
	return SessionCommand{Command: cmd}
}

// Validate checks the argument count of the command
func (c *SessionCommand) Validate() error {
	if c.Scope == "" {
		return errors.New("command scope is required")
	}
	if c.Operation == "" {
		return fmt.Errorf("%s command requires an operation", c.Scope)
	}

	switch c.Scope {
	case "element":
		return c.validateElementCommand()
	case "edit":
		return c.requireArgs(0, 0, "")
	case "project":
		return c.validateProjectCommand()
	case "canvas":
		return c.validateCanvasCommand()
	case "registry":
		return c.requireArgs(0, 1, "[category]")
	case "journal":
		return c.requireArgs(0, 2, "[count] [--all]")
	case "system":
		return c.requireArgs(0, 1, "[--force]")
	}
	// Unknown scopes are reported by the dispatcher.
	return nil
}

func (c *SessionCommand) validateElementCommand() error {
	switch c.Operation {
	case "add":
		return c.requireArgs(1, -1, "<type> [key=value]...")
	case "list":
		return c.requireArgs(0, 0, "")
	case "update", "set":
		return c.requireArgs(2, -1, "<id> <key=value>...")
	case "show":
		return c.requireArgs(0, 1, "[id]")
	case "delete", "duplicate", "front", "back", "forward", "backward", "hide", "lock":
		return c.requireArgs(1, 1, "<id>")
	case "reorder":
		return c.requireArgs(2, 2, "<from> <to>")
	case "select":
		return c.requireArgs(0, 1, "[id]")
	case "move":
		return c.requireArgs(3, 3, "<id> <x> <y>")
	case "transform":
		return c.requireArgs(6, 6, "<id> <x> <y> <scaleX> <scaleY> <rotation>")
	}
	return nil
}

func (c *SessionCommand) validateProjectCommand() error {
	switch c.Operation {
	case "save":
		return c.requireArgs(0, 2, "[file] [title]")
	case "load":
		return c.requireArgs(1, 2, "<file> [--force]")
	case "info":
		return c.requireArgs(0, 0, "")
	case "title":
		return c.requireArgs(1, 1, "<title>")
	}
	return nil
}

func (c *SessionCommand) validateCanvasCommand() error {
	switch c.Operation {
	case "size":
		return c.requireArgs(2, 2, "<width> <height>")
	case "map", "zoom", "grid":
		return c.requireArgs(1, 1, fmt.Sprintf("<%s>", canvasArgName[c.Operation]))
	}
	return nil
}

var canvasArgName = map[string]string{"map": "image|clear", "zoom": "factor|reset", "grid": "size"}

// requireArgs checks lo <= len(Args) <= hi; a negative hi means unbounded.
func (c *SessionCommand) requireArgs(lo, hi int, usage string) error {
	n := len(c.Args)
	if n >= lo && (hi < 0 || n <= hi) {
		return nil
	}
	if usage == "" {
		return fmt.Errorf("%s %s command does not accept any arguments", c.Scope, c.Operation)
	}
	return fmt.Errorf("usage: %s %s %s", c.Scope, c.Operation, usage)
}
