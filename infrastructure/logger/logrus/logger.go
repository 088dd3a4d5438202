// ABOUTME: Logrus logger implementation with optional rotating file output
// ABOUTME: Maps the field-map Logger contract onto logrus entries; files rotate with lumberjack

package logrus

import (
	"fmt"
	"io"
	"os"
	"strings"

	sirupsen "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error; empty means info
	Level string

	// Format is "json" or "text"; empty means json
	Format string

	// File, when set, also writes logs to a rotated file
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Logger implements the Logger interface on logrus
type Logger struct {
	log    *sirupsen.Logger
	closer io.Closer
}

// New creates a logger writing to stdout and, optionally, a rotated file
func New(opts Options) (*Logger, error) {
	var out io.Writer = os.Stdout
	var closer io.Closer

	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    valueOr(opts.MaxSizeMB, 100), // megabytes
			MaxBackups: valueOr(opts.MaxBackups, 3),
			MaxAge:     valueOr(opts.MaxAgeDays, 28), // days
			Compress:   opts.Compress,
		}
		out = io.MultiWriter(os.Stdout, rotating)
		closer = rotating
	}

	l, err := NewWithWriter(opts, out)
	if err != nil {
		return nil, err
	}
	l.closer = closer
	return l, nil
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(opts Options, w io.Writer) (*Logger, error) {
	level := sirupsen.InfoLevel
	if opts.Level != "" {
		parsed, err := sirupsen.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	log := sirupsen.New()
	log.SetOutput(w)
	log.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "", "json":
		log.SetFormatter(&sirupsen.JSONFormatter{})
	case "text":
		log.SetFormatter(&sirupsen.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	return &Logger{log: log}, nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) entry(fields map[string]interface{}) *sirupsen.Entry {
	if len(fields) == 0 {
		return sirupsen.NewEntry(l.log)
	}
	return l.log.WithFields(sirupsen.Fields(fields))
}

func valueOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
