package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexisbeaulieu97/flexplay/internal/config"
	"github.com/alexisbeaulieu97/flexplay/internal/logger"
	"github.com/alexisbeaulieu97/flexplay/internal/playground"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger

	logFile io.Closer
}

// newAppContext loads the optional configuration file and opens the log
// sink. Flags win over the file.
func newAppContext(flags *rootFlags) (*AppContext, error) {
	cfg := config.Default()
	if path := strings.TrimSpace(flags.configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	app := &AppContext{Config: cfg}
	if err := app.openLogger(flags); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *AppContext) openLogger(flags *rootFlags) error {
	level := firstNonEmpty(flags.logLevel, a.Config.Log.Level, "info")
	if flags.verbose {
		level = "debug"
	}

	path := firstNonEmpty(flags.logFile, a.Config.Log.File)
	if path == "" {
		// The editor owns the terminal, so there is nowhere else to write.
		a.Logger = logger.Discard()
		return nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	log, err := logger.New(logger.Options{Level: level, Writer: file})
	if err != nil {
		file.Close() //nolint:errcheck
		return err
	}

	a.Logger = log
	a.logFile = file
	return nil
}

// NewSession builds a session seeded from the configuration. Extra options
// are applied last.
func (a *AppContext) NewSession(extra ...playground.Option) *playground.Session {
	opts := append(a.Config.SessionOptions(), playground.WithLogger(a.Logger))
	opts = append(opts, extra...)
	return playground.NewSession(opts...)
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	if a == nil || a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
