package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// setupLogging installs the default slog logger. In TUI mode logs would
// tear the screen, so they go to logFile when set and are otherwise limited
// to errors.
func setupLogging(stderr io.Writer, logFile string, tuiMode, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if tuiMode {
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	out := stderr
	closeFn := func() {}
	if tuiMode {
		out = io.Discard
		if logFile != "" {
			if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
				return nil, nil, err
			}
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, nil, err
			}
			out = f
			closeFn = func() { _ = f.Close() }
		}
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
