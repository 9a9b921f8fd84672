// Package session executes parsed shell commands against one editor state
// and journals every command it runs.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mcoo/local-app/internal/data"
	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/model"
	"mcoo/local-app/internal/storage"
)

// ErrExit is returned by the system exit command.
var ErrExit = errors.New("exit requested")

// CommandHandler is a function type for command handlers
type CommandHandler func(*Session, model.Command) (interface{}, error)

// Session owns one element store and the project file it is bound to.
type Session struct {
	ID           string
	Elements     *data.ElementManager
	Store        storage.Store
	Config       *model.Config
	ProjectFile  string
	ProjectTitle string
	LastActivity time.Time

	commandHandlers map[string]map[string]CommandHandler
	logger          *log.Logger
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}

// NewSession creates a new Session instance. store may be nil, in which case
// commands are not journaled.
func NewSession(id string, elements *data.ElementManager, store storage.Store, cfg *model.Config, logger *log.Logger) (*Session, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	ctx := context.Background()
	logger.Info(ctx, "Creating new Session", log.Fields{"sessionID": id})

	if elements == nil {
		logger.Error(ctx, "ElementManager not initialized", nil)
		return nil, fmt.Errorf("elementManager not initialized")
	}
	if cfg == nil {
		logger.Error(ctx, "Config not initialized", nil)
		return nil, fmt.Errorf("config not initialized")
	}
	if id == "" {
		id = NewSessionID()
	}

	s := &Session{
		ID:           id,
		Elements:     elements,
		Store:        store,
		Config:       cfg,
		LastActivity: time.Now(),
		logger:       logger,
	}
	s.initCommandHandlers()

	logger.Info(ctx, "New Session created successfully", log.Fields{"sessionID": id})
	return s, nil
}

// initCommandHandlers initializes the command handlers map
func (s *Session) initCommandHandlers() {
	s.logger.Debug(context.Background(), "Initializing command handlers", nil)

	s.commandHandlers = map[string]map[string]CommandHandler{
		"element":  initElementCommandHandlers(),
		"edit":     initEditCommandHandlers(),
		"project":  initProjectCommandHandlers(),
		"canvas":   initCanvasCommandHandlers(),
		"registry": initRegistryCommandHandlers(),
		"journal":  initJournalCommandHandlers(),
		"system":   initSystemCommandHandlers(),
	}
}

// CommandRun validates and executes a command, then journals the outcome.
func (s *Session) CommandRun(ctx context.Context, cmd model.Command) (interface{}, error) {
	s.logger.Command(ctx, "Running command", log.Fields{"sessionID": s.ID, "scope": cmd.Scope, "operation": cmd.Operation, "args": cmd.Args})
	s.LastActivity = time.Now()

	result, err := s.commandRun(cmd)
	if err != nil && !errors.Is(err, ErrExit) {
		s.logger.Error(ctx, "Command execution failed", log.Fields{"scope": cmd.Scope, "operation": cmd.Operation, "error": err})
	} else {
		s.logger.Debug(ctx, "Command executed successfully", log.Fields{"scope": cmd.Scope, "operation": cmd.Operation})
	}

	s.journal(ctx, cmd, err)
	return result, err
}

func (s *Session) commandRun(cmd model.Command) (interface{}, error) {
	sc := NewSessionCommand(cmd)
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	scopeHandlers, ok := s.commandHandlers[cmd.Scope]
	if !ok {
		return nil, fmt.Errorf("invalid command scope: %s", cmd.Scope)
	}
	handler, ok := scopeHandlers[cmd.Operation]
	if !ok {
		return nil, fmt.Errorf("invalid %s operation: %s", cmd.Scope, cmd.Operation)
	}
	return handler(s, cmd)
}

// journal records the command. Journal failures are logged and never fail
// the command itself.
func (s *Session) journal(ctx context.Context, cmd model.Command, cmdErr error) {
	if s.Store == nil {
		return
	}

	entry := model.JournalEntry{
		SessionID: s.ID,
		Scope:     cmd.Scope,
		Operation: cmd.Operation,
		Args:      cmd.Args,
		OK:        cmdErr == nil || errors.Is(cmdErr, ErrExit),
		Created:   s.LastActivity,
	}
	if !entry.OK {
		entry.Message = cmdErr.Error()
	}

	if _, err := s.Store.JournalAdd(ctx, entry); err != nil {
		s.logger.Warn(ctx, "Failed to journal command", log.Fields{"scope": cmd.Scope, "operation": cmd.Operation, "error": err})
	}
}

// projectPath resolves a project file name against the configured project
// directory. Names carrying a directory are used as given.
func (s *Session) projectPath(name string) string {
	name = storage.ProjectFileName(name)
	if filepath.IsAbs(name) || filepath.Dir(name) != "." || s.Config.ProjectDir == "" {
		return name
	}
	return filepath.Join(s.Config.ProjectDir, name)
}
