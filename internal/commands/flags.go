// Package commands implements the autolist CLI subcommands.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/autolist/editor"
	"github.com/iw2rmb/autolist/internal/config"
	"github.com/iw2rmb/autolist/internal/logutils"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	NoColor    bool

	// Config is loaded in the Before hook and available to all commands.
	Config *config.Config

	// Logger is handed to the autoformat engine.
	Logger zerolog.Logger

	logCloser func()
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "autolist", "config.yaml")
}

// DefaultLogFile returns the log file the interactive editor writes to when
// --log-file is not set.
func DefaultLogFile() string {
	// Check XDG_STATE_HOME first (works on both macOS and Linux)
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "autolist", "autolist.log")
	}

	home, _ := os.UserHomeDir()

	// On macOS, use ~/Library/Logs
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "autolist", "autolist.log")
	}

	// On Linux, use ~/.local/state
	return filepath.Join(home, ".local", "state", "autolist", "autolist.log")
}

// SetupLogger points Logger and the global logger at file, or at stderr
// when file is empty, closing the previous log file. The level is
// --log-level, falling back to the config file.
func (f *Flags) SetupLogger(file string) error {
	level := f.LogLevel
	if level == "" {
		level = f.config().LogLevel
	}
	logger, closer, err := logutils.New(level, file)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	f.CloseLogger()
	f.Logger = logger
	f.logCloser = closer
	log.Logger = logger
	return nil
}

// CloseLogger closes the log file opened by SetupLogger, if any.
func (f *Flags) CloseLogger() {
	if f.logCloser != nil {
		f.logCloser()
		f.logCloser = nil
	}
}

func (f *Flags) config() *config.Config {
	if f.Config == nil {
		cfg := config.DefaultConfig()
		f.Config = &cfg
	}
	return f.Config
}

// layout is the tab stop layout shared by rendering and correction.
func (f *Flags) layout() editor.Layout {
	cfg := f.config()
	return editor.Layout{
		DefaultTabStops: cfg.DefaultTabStops(),
		PointsPerCell:   cfg.PointsPerCell,
	}
}
