package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// newLogger builds the process logger. Without a file the terminal frontend
// must not log at all, so output goes to fallback (io.Discard for play).
// The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadSettings resolves settings from --config or the default search path
// and applies --fps.
func loadSettings(logger *log.Logger) (config.Settings, error) {
	settings, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, err
	}

	if flagFPS > 0 {
		settings.Screen.FPS = flagFPS
		if err := settings.Validate(); err != nil {
			return config.Settings{}, err
		}
	}

	logger.Info("settings loaded", "source", source, "fps", settings.Screen.FPS, "tick", settings.TickInterval())
	return settings, nil
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// playerName names local runs in the journal.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
