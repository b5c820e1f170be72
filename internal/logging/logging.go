// Package logging builds the hclog loggers used across Swatchbook.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Options controls logger construction.
type Options struct {
	// Level is an hclog level name ("trace", "debug", "info", "warn", "error", "off").
	// Unrecognised names fall back to "warn".
	Level string

	// Verbose forces debug level and takes precedence over Quiet and Level.
	Verbose bool

	// Quiet forces error level.
	Quiet bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a named logger configured from opts.
func New(name string, opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: out,
		Level:  ResolveLevel(opts),
	})
}

// ResolveLevel returns the effective level for opts.
func ResolveLevel(opts Options) hclog.Level {
	switch {
	case opts.Verbose:
		return hclog.Debug
	case opts.Quiet:
		return hclog.Error
	}

	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		return hclog.Warn
	}
	return level
}
