// Package logger sets up the zerolog logger shared by the commands.
// Output goes to stderr so stdout carries only lookup results.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var globalLogger = zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()

// Init replaces the global logger. An empty level keeps warn; debug
// overrides level.
func Init(w io.Writer, level string, debug bool) error {
	if w == nil {
		w = os.Stderr
	}

	lvl := zerolog.WarnLevel
	if debug {
		lvl = zerolog.DebugLevel
	} else if level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(level)
		if err != nil {
			return err
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	globalLogger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return nil
}

// Get returns the global logger.
func Get() zerolog.Logger {
	return globalLogger
}

// Nop is a logger that discards everything; handy in tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
