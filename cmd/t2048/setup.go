package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	envCfg  config.Env
	logFile *os.File
)

// setup merges environment overrides into unset flags and configures logging.
func setup(cmd *cobra.Command, _ []string) error {
	e, err := config.LoadEnv()
	if err != nil {
		return err
	}
	envCfg = e

	changed := cmd.Flags().Changed
	if !changed("db") && e.DBPath != "" {
		flagDBPath = e.DBPath
	}
	if !changed("config") && e.ConfigPath != "" {
		flagConfig = e.ConfigPath
	}
	if !changed("difficulty") && e.Difficulty != "" {
		flagDifficulty = e.Difficulty
	}
	if !changed("seed") && e.Seed != 0 {
		flagSeed = e.Seed
	}
	if !changed("log-file") && e.LogFile != "" {
		flagLogFile = e.LogFile
	}
	if !changed("debug") && e.Debug {
		flagDebug = true
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	return setupLogging(cmd.Name() == "serve")
}

// setupLogging installs the default logger. The TUI owns the terminal, so
// logs go to a file unless the SSH server is running.
func setupLogging(toStderr bool) error {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	opts := log.Options{ReportTimestamp: true, Level: level}

	if toStderr {
		log.SetDefault(log.NewWithOptions(os.Stderr, opts))
		return nil
	}

	path, err := storage.ExpandPath(flagLogFile)
	if err != nil {
		return err
	}
	var w io.Writer = io.Discard
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err == nil {
			logFile = f
			w = f
		} else {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		}
	}
	log.SetDefault(log.NewWithOptions(w, opts))
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// loadGameConfig loads the game config and applies the difficulty preset.
func loadGameConfig() (config.T2048Config, error) {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficultyPreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyT2048Preset(&cfg, preset)
	}
	return cfg, nil
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
