package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mcoo/local-app/internal/cli"
	"mcoo/local-app/internal/config"
	"mcoo/local-app/internal/data"
	"mcoo/local-app/internal/event"
	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/session"
	"mcoo/local-app/internal/storage"
	"mcoo/local-app/internal/ui"
)

// bootstrap loads the configuration, wires logger, storage, element store,
// session and CLI, then runs the given scripts or the interactive shell until
// exit or interrupt.
func bootstrap(configPath string, scripts []string) error {
	ctx := context.Background()

	// Set up channel to receive interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// Load configuration
	if configPath != "" {
		config.ConfigPathSet(configPath)
	}
	if err := config.ConfigLoad(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := config.ConfigGet()

	// Initialize logger
	logger, err := log.NewLogger(cfg, log.ParseLevel(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close logger: %v\n", err)
		}
	}()

	logger.Info(ctx, "Application started", log.Fields{"config": cfg})

	// Initialize journal storage
	store, err := storage.NewStore(cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error(ctx, "Failed to close storage", log.Fields{"error": err})
		}
	}()

	logger.Info(ctx, "Storage initialized", nil)

	// Initialize event manager and element store
	eventManager := event.NewEventManager(logger)
	for _, t := range []event.EventType{event.ElementsChanged, event.SelectionChanged, event.HistoryChanged, event.ViewChanged, event.ProjectLoaded} {
		eventManager.Subscribe(t, func(e event.Event) {
			logger.Debug(ctx, "Event published", log.Fields{"event": e.Type.String(), "data": e.Data})
		})
	}

	elements, err := data.NewElementManager(cfg, eventManager, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize element manager", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize element manager: %w", err)
	}

	logger.Info(ctx, "Element manager initialized", nil)

	// Initialize session
	s, err := session.NewSession("", elements, store, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize session: %w", err)
	}

	interactive := len(scripts) == 0 && ui.IsTerminal(os.Stdin)
	cliInstance, err := cli.NewCLI(s, os.Stdout, ui.IsTerminal(os.Stdout), logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize CLI", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize CLI: %w", err)
	}

	logger.Info(ctx, "CLI instance created", log.Fields{"interactive": interactive})

	// Set up graceful shutdown
	go func() {
		<-sigChan
		logger.Info(ctx, "Received interrupt signal. Shutting down...", nil)
		fmt.Println("\nReceived interrupt signal. Shutting down...")
		cliInstance.Stop()
	}()

	if err := run(ctx, cliInstance, interactive, scripts); err != nil {
		logger.Error(ctx, "CLI error", log.Fields{"error": err})
		return fmt.Errorf("CLI error: %w", err)
	}

	logger.Info(ctx, "Application shutting down", nil)
	if interactive {
		fmt.Println("Goodbye!")
	}
	return nil
}

func run(ctx context.Context, c *cli.CLI, interactive bool, scripts []string) error {
	if interactive {
		return c.Run(ctx)
	}
	if len(scripts) == 0 {
		return c.RunScript(ctx, os.Stdin)
	}

	for _, path := range scripts {
		if path == "-" {
			if err := c.RunScript(ctx, os.Stdin); err != nil {
				return err
			}
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		err = c.RunScript(ctx, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("script %s: %w", path, err)
		}
	}
	return nil
}
