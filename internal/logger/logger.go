// Package logger holds the application-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Log is the global logger. Call Init once from main.
var Log *logrus.Logger

var (
	fallbackOnce sync.Once
	runID        string
	file         *os.File
)

// Init configures Log. Empty level or format fall back to LOG_LEVEL / LOG_FORMAT,
// then to "info" and "text".
func Init(level, format string) {
	Log = logrus.New()

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// stderr keeps stdout free for maze output
	Log.SetOutput(os.Stderr)
}

// SetOutput redirects Log, e.g. to a file while the terminal backend owns the screen.
func SetOutput(w io.Writer) {
	Get().SetOutput(w)
}

// OpenFile appends Log output to path until Close is called.
func OpenFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if err := Close(); err != nil {
		f.Close()
		return err
	}
	file = f
	SetOutput(f)
	return nil
}

// Close closes the file opened by OpenFile and puts Log back on stderr.
// It is a no-op when no file is open.
func Close() error {
	if file == nil {
		return nil
	}
	SetOutput(os.Stderr)
	err := file.Close()
	file = nil
	return err
}

// SetRunID tags every Component entry with run_id.
func SetRunID(id string) {
	runID = id
}

// Get returns Log, installing a discarding logger when Init was never called
// (tests, library use).
func Get() *logrus.Logger {
	fallbackOnce.Do(func() {
		if Log == nil {
			Log = logrus.New()
			Log.SetOutput(io.Discard)
		}
	})
	return Log
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	fields := logrus.Fields{"component": name}
	if runID != "" {
		fields["run_id"] = runID
	}
	return Get().WithFields(fields)
}

// NewRunID returns a fresh identifier used to correlate the log lines of one run.
func NewRunID() string {
	return uuid.NewString()
}
