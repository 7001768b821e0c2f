package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// logToStderr marks commands that keep the terminal in line mode, where
// logs can go to stderr. Full-screen commands would be garbled by them.
const logToStderr = "log-to-stderr"

// setupLogging configures the package-level logger from the global flags.
// The returned func closes the log file, if any, and silences the logger.
func setupLogging(cmd *cobra.Command) (func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	var out io.Writer = io.Discard
	if _, ok := cmd.Annotations[logToStderr]; ok {
		out = os.Stderr
	}

	cleanup := func() error { return nil }
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		out = f
		cleanup = func() error {
			log.SetOutput(io.Discard)
			return f.Close()
		}
	}

	log.SetOutput(out)
	log.Debug("logging configured", "level", level, "file", flagLogFile)
	return cleanup, nil
}

// exit flushes the log file before leaving from inside a command.
func exit(code int) {
	_ = closeLog()
	os.Exit(code)
}
