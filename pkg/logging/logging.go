package logging

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the structured logging interface injected into the normalizer and
// orchestrator. Implementations must be safe for concurrent use and must never
// influence control flow: a failing sink is not allowed to fail a request.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// Config controls the charm-backed logger construction.
type Config struct {
	Level  charmlog.Level
	Output io.Writer
	JSON   bool
	Prefix string
}

// DefaultConfig returns the configuration used when New is called with nil.
func DefaultConfig() *Config {
	return &Config{
		Level:  charmlog.InfoLevel,
		Output: os.Stderr,
		Prefix: "deckgen",
	}
}

type charmLogger struct {
	log *charmlog.Logger
}

// New builds a Logger backed by charmbracelet/log.
func New(cfg *Config) Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	logger := charmlog.NewWithOptions(out, charmlog.Options{
		Level:           cfg.Level,
		Prefix:          cfg.Prefix,
		ReportTimestamp: true,
	})
	if cfg.JSON {
		logger.SetFormatter(charmlog.JSONFormatter)
	}
	return &charmLogger{log: logger}
}

func (l *charmLogger) Debug(msg string, keyvals ...any) { l.log.Debug(msg, keyvals...) }
func (l *charmLogger) Info(msg string, keyvals ...any)  { l.log.Info(msg, keyvals...) }
func (l *charmLogger) Warn(msg string, keyvals ...any)  { l.log.Warn(msg, keyvals...) }
func (l *charmLogger) Error(msg string, keyvals ...any) { l.log.Error(msg, keyvals...) }

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards everything. It is the library default so
// normalization stays a pure function unless a caller opts into diagnostics.
func Nop() Logger {
	return nopLogger{}
}
