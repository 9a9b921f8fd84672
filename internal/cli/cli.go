// Package cli provides the command-line shell of the MCOO editor.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/model"
	"mcoo/local-app/internal/registry"
	"mcoo/local-app/internal/session"
	"mcoo/local-app/internal/ui"
)

// CLI reads shell commands and runs them in one session.
type CLI struct {
	session   *session.Session
	ui        *ui.UI
	elementUI *ui.ElementUI
	projectUI *ui.ProjectUI
	journalUI *ui.JournalUI
	logger    *log.Logger

	mu       sync.Mutex
	rl       *readline.Instance
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewCLI creates a CLI writing to out.
func NewCLI(s *session.Session, out io.Writer, useColor bool, logger *log.Logger) (*CLI, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	if s == nil {
		logger.Error(context.Background(), "Session not initialized", nil)
		return nil, fmt.Errorf("session not initialized")
	}

	return &CLI{
		session:   s,
		ui:        ui.NewUI(out, useColor),
		elementUI: ui.NewElementUI(out, useColor),
		projectUI: ui.NewProjectUI(out, useColor),
		journalUI: ui.NewJournalUI(out, useColor),
		logger:    logger,
		stopCh:    make(chan struct{}),
	}, nil
}

// Run starts the interactive shell and returns when the session exits or
// input ends.
func (c *CLI) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          c.prompt(),
		HistoryFile:     c.session.Config.HistoryFile,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          c.ui.Writer(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	c.mu.Lock()
	c.rl = rl
	c.mu.Unlock()
	defer rl.Close()

	c.ui.Println("Welcome to the MCOO editor! Use 'help' for the list of commands.")
	c.logger.Info(ctx, "CLI started", log.Fields{"sessionID": c.session.ID})

	for {
		select {
		case <-c.stopCh:
			return nil
		default:
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			c.ui.Info("Use 'system exit' to exit the program.")
			continue
		}
		if errors.Is(err, io.EOF) {
			c.warnUnsaved()
			return nil
		}
		if err != nil {
			select {
			case <-c.stopCh:
				return nil
			default:
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err := c.ExecuteLine(ctx, line); errors.Is(err, session.ErrExit) {
			return nil
		}
		rl.SetPrompt(c.prompt())
	}
}

// RunScript executes commands read line by line from r. Blank lines and
// lines starting with # are skipped. A failing command is reported and the
// script continues.
func (c *CLI) RunScript(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := c.ExecuteLine(ctx, line); errors.Is(err, session.ErrExit) {
			return nil
		}
		select {
		case <-c.stopCh:
			return nil
		default:
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script line %d: %w", n+1, err)
	}
	c.warnUnsaved()
	return nil
}

// ExecuteLine parses and runs one shell line, printing its result or error.
// The command error is returned; session.ErrExit signals a requested exit.
func (c *CLI) ExecuteLine(ctx context.Context, line string) error {
	args := ParseArgs(line)
	if len(args) == 0 {
		return nil
	}

	if strings.EqualFold(args[0], "help") {
		if err := c.HandleHelp(args[1:]); err != nil {
			c.ui.Error(err.Error())
			return err
		}
		return nil
	}
	if strings.EqualFold(args[0], "exit") || strings.EqualFold(args[0], "quit") {
		args = append([]string{"system"}, args...)
	}

	cmd := parseCommand(args)
	result, err := c.session.CommandRun(ctx, cmd)
	if errors.Is(err, session.ErrExit) {
		c.printResult(result)
		return err
	}
	if err != nil {
		c.ui.Error(err.Error())
		return err
	}
	c.printResult(result)
	return nil
}

// Stop ends Run or RunScript at the next opportunity.
func (c *CLI) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.rl != nil {
			c.rl.Close()
		}
	})
}

func (c *CLI) printResult(result interface{}) {
	switch r := result.(type) {
	case nil:
	case string:
		c.ui.Success(r)
	case model.Element:
		c.elementUI.ElementInfo(r)
	case []model.Element:
		c.elementUI.ElementList(r, c.session.Elements.SelectedID())
	case model.ProjectInfo:
		c.projectUI.ProjectInfo(r)
	case []registry.Section:
		c.projectUI.RegistrySections(r)
	case []registry.ElementType:
		c.projectUI.RegistryTypes(r)
	case []model.JournalEntry:
		c.journalUI.JournalList(r)
	default:
		c.ui.Printf("%v\n", r)
	}
}

func (c *CLI) prompt() string {
	return c.ui.PromptString(c.session.ProjectTitle, c.session.Elements.Dirty())
}

func (c *CLI) warnUnsaved() {
	if c.session.Elements.Dirty() {
		c.ui.Warning("unsaved changes were discarded")
	}
}

// ParseArgs splits a line on spaces, keeping double-quoted runs together.
func ParseArgs(input string) []string {
	var args []string
	var current strings.Builder
	inQuotes, quoted := false, false

	for _, char := range input {
		switch {
		case char == '"':
			inQuotes = !inQuotes
			quoted = true
		case (char == ' ' || char == '\t') && !inQuotes:
			if current.Len() > 0 || quoted {
				args = append(args, current.String())
				current.Reset()
			}
			quoted = false
		default:
			current.WriteRune(char)
		}
	}
	if current.Len() > 0 || quoted {
		args = append(args, current.String())
	}
	return args
}

// parseCommand maps "<scope> <operation> [args]" onto a model.Command.
func parseCommand(args []string) model.Command {
	cmd := model.Command{Scope: strings.ToLower(args[0]), Args: []string{}}
	if len(args) > 1 {
		cmd.Operation = strings.ToLower(args[1])
		cmd.Args = args[2:]
	}
	return cmd
}

// completer builds tab completion from the help table and the registry.
func completer() *readline.PrefixCompleter {
	var scopes []readline.PrefixCompleterInterface
	var current *readline.PrefixCompleter
	scope := ""
	for _, h := range commandHelps {
		if current == nil || h.Scope != scope {
			current = readline.PcItem(h.Scope)
			scopes = append(scopes, current)
			scope = h.Scope
		}
		op := readline.PcItem(h.Operation)
		if h.Scope == "element" && h.Operation == "add" {
			op = readline.PcItem(h.Operation, readline.PcItemDynamic(func(string) []string { return registry.Keys() }))
		}
		current.Children = append(current.Children, op)
	}
	scopes = append(scopes, readline.PcItem("help"))
	return readline.NewPrefixCompleter(scopes...)
}
