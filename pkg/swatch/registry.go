package swatch

import (
	"github.com/jmylchreest/swatchbook/pkg/colour"
)

// System colour names known to the default registry.
const (
	SystemClear     = "clear"
	SystemBlack     = "black"
	SystemWhite     = "white"
	SystemGray      = "gray"
	SystemRed       = "red"
	SystemGreen     = "green"
	SystemBlue      = "blue"
	SystemOrange    = "orange"
	SystemYellow    = "yellow"
	SystemPink      = "pink"
	SystemPurple    = "purple"
	SystemPrimary   = "primary"
	SystemSecondary = "secondary"
	SystemAccent    = "accent"
)

// RegistryEntry pairs a system colour name with its value.
type RegistryEntry struct {
	Name  string
	Value colour.Value
}

// systemColours is the wire-level system colour table. Reverse lookup
// returns the first entry within tolerance, so the order is part of the
// format and must not change.
var systemColours = []RegistryEntry{
	{Name: SystemClear, Value: colour.RGBA(0, 0, 0, 0)},
	{Name: SystemBlack, Value: colour.RGBA8(0x00, 0x00, 0x00, 1)},
	{Name: SystemWhite, Value: colour.RGBA8(0xFF, 0xFF, 0xFF, 1)},
	{Name: SystemGray, Value: colour.RGBA8(0x8E, 0x8E, 0x93, 1)},
	{Name: SystemRed, Value: colour.RGBA8(0xFF, 0x3B, 0x30, 1)},
	{Name: SystemGreen, Value: colour.RGBA8(0x34, 0xC7, 0x59, 1)},
	{Name: SystemBlue, Value: colour.RGBA8(0x00, 0x7A, 0xFF, 1)},
	{Name: SystemOrange, Value: colour.RGBA8(0xFF, 0x95, 0x00, 1)},
	{Name: SystemYellow, Value: colour.RGBA8(0xFF, 0xCC, 0x00, 1)},
	{Name: SystemPink, Value: colour.RGBA8(0xFF, 0x2D, 0x55, 1)},
	{Name: SystemPurple, Value: colour.RGBA8(0xAF, 0x52, 0xDE, 1)},
	{Name: SystemPrimary, Value: colour.RGBA8(0x1C, 0x1C, 0x1E, 1)},
	{Name: SystemSecondary, Value: colour.RGBA8(0x3C, 0x3C, 0x43, 0.6)},
	{Name: SystemAccent, Value: colour.RGBA8(0x58, 0x56, 0xD6, 1)},
}

// DefaultRegistry is the process-wide system colour registry. It is never
// mutated and is safe for concurrent use.
var DefaultRegistry = NewRegistry(systemColours)

// Registry is an ordered, read-only table of named colours.
type Registry struct {
	entries []RegistryEntry
	byName  map[string]int
}

// NewRegistry builds a registry from entries in the given order. When a
// name repeats, the first occurrence wins.
func NewRegistry(entries []RegistryEntry) *Registry {
	r := &Registry{
		entries: make([]RegistryEntry, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	copy(r.entries, entries)
	for i, e := range r.entries {
		if _, exists := r.byName[e.Name]; !exists {
			r.byName[e.Name] = i
		}
	}
	return r
}

// LookupByName returns the colour registered under name.
func (r *Registry) LookupByName(name string) (colour.Value, bool) {
	i, ok := r.byName[name]
	if !ok {
		return colour.Clear, false
	}
	return r.entries[i].Value, true
}

// LookupByValue returns the name of the first entry whose four channels all
// differ from v by less than tolerance.
func (r *Registry) LookupByValue(v colour.Value, tolerance float64) (string, bool) {
	for _, e := range r.entries {
		if e.Value.Equal(v, tolerance) {
			return e.Name, true
		}
	}
	return "", false
}

// Entries returns a copy of the registry table in declaration order.
func (r *Registry) Entries() []RegistryEntry {
	out := make([]RegistryEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
