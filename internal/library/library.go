// Package library manages an ordered collection of named colours and its
// import, export and on-disk persistence.
package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatchbook/pkg/colour"
	"github.com/jmylchreest/swatchbook/pkg/swatch"
)

// ErrDuplicate is returned by Add when an equivalent colour already exists.
var ErrDuplicate = errors.New("duplicate colour")

// ErrNotFound is returned when no colour matches a name or id.
var ErrNotFound = errors.New("colour not found")

// Library is an ordered collection of named colours. It is not safe for
// concurrent mutation.
type Library struct {
	colours []swatch.NamedColor
	codec   *swatch.Codec
	logger  hclog.Logger
}

// ImportResult reports how many imported colours were new and how many were
// skipped as duplicates.
type ImportResult struct {
	Added      int
	Duplicates int
}

// New creates an empty library. Nil arguments select the default codec and
// a null logger.
func New(codec *swatch.Codec, logger hclog.Logger) *Library {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if codec == nil {
		codec = swatch.NewCodec(nil, logger)
	}
	return &Library{codec: codec, logger: logger}
}

// Len returns the number of colours.
func (l *Library) Len() int {
	return len(l.colours)
}

// Colours returns a copy of the colours in insertion order.
func (l *Library) Colours() []swatch.NamedColor {
	out := make([]swatch.NamedColor, len(l.colours))
	copy(out, l.colours)
	return out
}

// All returns an iterator over the colours in insertion order.
func (l *Library) All() func(func(int, swatch.NamedColor) bool) {
	return func(yield func(int, swatch.NamedColor) bool) {
		for i, c := range l.colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// IsDuplicate reports whether n matches an existing colour: the same id, or
// the same name (ignoring case) with a colour equal within
// colour.ChannelTolerance.
func (l *Library) IsDuplicate(n swatch.NamedColor) bool {
	return isDuplicateOf(n, l.colours)
}

func isDuplicateOf(n swatch.NamedColor, existing []swatch.NamedColor) bool {
	for _, e := range existing {
		if e.ID() == n.ID() {
			return true
		}
		if strings.EqualFold(e.Name(), n.Name()) && e.Color().Equal(n.Color(), colour.ChannelTolerance) {
			return true
		}
	}
	return false
}

// Add appends n unless it duplicates an existing colour.
func (l *Library) Add(n swatch.NamedColor) error {
	if l.IsDuplicate(n) {
		return fmt.Errorf("%w: %s", ErrDuplicate, n.Name())
	}
	l.colours = append(l.colours, n)
	l.logger.Debug("added colour", "name", n.Name(), "id", n.ID(), "method", n.Method().Kind())
	return nil
}

// Find returns the colour whose id equals key, or failing that the first
// colour whose name matches key ignoring case.
func (l *Library) Find(key string) (swatch.NamedColor, bool) {
	i := l.indexOf(key)
	if i < 0 {
		return swatch.NamedColor{}, false
	}
	return l.colours[i], true
}

// Remove deletes the colour Find would return for key.
func (l *Library) Remove(key string) (swatch.NamedColor, error) {
	i := l.indexOf(key)
	if i < 0 {
		return swatch.NamedColor{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	removed := l.colours[i]
	l.colours = append(l.colours[:i], l.colours[i+1:]...)
	l.logger.Debug("removed colour", "name", removed.Name(), "id", removed.ID())
	return removed, nil
}

func (l *Library) indexOf(key string) int {
	for i, c := range l.colours {
		if c.ID() == key {
			return i
		}
	}
	for i, c := range l.colours {
		if strings.EqualFold(c.Name(), key) {
			return i
		}
	}
	return -1
}

// Import decodes a colour document (a single envelope or an array) and adds
// every colour that is not a duplicate. A structural decode error aborts the
// import and leaves the library unchanged.
func (l *Library) Import(data []byte) (ImportResult, error) {
	incoming, err := l.codec.UnmarshalAll(data)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to import colours: %w", err)
	}

	var result ImportResult
	for _, n := range incoming {
		if l.IsDuplicate(n) {
			result.Duplicates++
			l.logger.Debug("skipping duplicate colour", "name", n.Name(), "id", n.ID())
			continue
		}
		l.colours = append(l.colours, n)
		result.Added++
	}

	l.logger.Info("imported colours", "added", result.Added, "duplicates", result.Duplicates)
	return result, nil
}

// Export encodes every colour as a JSON array of envelopes.
func (l *Library) Export() ([]byte, error) {
	data, err := l.codec.MarshalAll(l.colours)
	if err != nil {
		return nil, fmt.Errorf("failed to export colours: %w", err)
	}
	return data, nil
}
