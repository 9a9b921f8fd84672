// Package config provides functionality for loading, saving, and managing
// application configuration settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mcoo/local-app/internal/model"
)

const (
	DefaultCanvasWidth  = 900
	DefaultCanvasHeight = 560
	DefaultHistoryLimit = 50
)

// Global variables to store the current configuration and its file path.
var (
	currentConfig *model.Config
	configPath    = "./data/config.json"
)

// ConfigDefault returns the configuration written when no config file exists.
func ConfigDefault() *model.Config {
	return &model.Config{
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		HistoryLimit: DefaultHistoryLimit,
		ProjectDir:   "./projects",
		DatabaseDir:  "./data",
		DatabaseFile: "journal.db",
		HistoryFile:  "./data/.mcoo_history",
		LogFolder:    "./logs",
		LogLevel:     "info",
		CommandLog:   "commands.log",
		ErrorLog:     "errors.log",
		InfoLog:      "info.log",
	}
}

// ConfigPathSet changes the location of the config file.
func ConfigPathSet(path string) {
	configPath = path
}

// ConfigLoad loads the configuration from the JSON file.
// If the file doesn't exist, it creates a default configuration.
func ConfigLoad() error {
	// Ensure the data directory exists
	dataDir := filepath.Dir(configPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Check if the config file exists, if not create a default one
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaultConfig := ConfigDefault()
		if err := ConfigSave(defaultConfig); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
		currentConfig = defaultConfig
		return nil
	}

	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	cfg := &model.Config{}
	if err := json.Unmarshal(file, cfg); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	fillDefaults(cfg)
	currentConfig = cfg
	return nil
}

// fillDefaults replaces zero values left by an older or hand-edited config file.
func fillDefaults(cfg *model.Config) {
	def := ConfigDefault()
	if cfg.CanvasWidth <= 0 {
		cfg.CanvasWidth = def.CanvasWidth
	}
	if cfg.CanvasHeight <= 0 {
		cfg.CanvasHeight = def.CanvasHeight
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = def.HistoryLimit
	}
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = def.ProjectDir
	}
	if cfg.DatabaseDir == "" {
		cfg.DatabaseDir = def.DatabaseDir
	}
	if cfg.DatabaseFile == "" {
		cfg.DatabaseFile = def.DatabaseFile
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = def.HistoryFile
	}
	if cfg.LogFolder == "" {
		cfg.LogFolder = def.LogFolder
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.CommandLog == "" {
		cfg.CommandLog = def.CommandLog
	}
	if cfg.ErrorLog == "" {
		cfg.ErrorLog = def.ErrorLog
	}
	if cfg.InfoLog == "" {
		cfg.InfoLog = def.InfoLog
	}
}

// ConfigSave saves the provided configuration to the JSON file.
func ConfigSave(cfg *model.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// ConfigGet returns the current configuration.
func ConfigGet() *model.Config {
	return currentConfig
}
