package swatch

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Marshal encodes n as a single enveloped JSON document.
func (c *Codec) Marshal(n NamedColor) ([]byte, error) {
	rec := c.Encode(n)
	return json.Marshal(Envelope{Data: &rec})
}

// MarshalAll encodes colours as a JSON array of envelopes, preserving order.
func (c *Codec) MarshalAll(colours []NamedColor) ([]byte, error) {
	envelopes := make([]Envelope, len(colours))
	for i, n := range colours {
		rec := c.Encode(n)
		envelopes[i] = Envelope{Data: &rec}
	}
	return json.MarshalIndent(envelopes, "", "  ")
}

// Unmarshal decodes a single enveloped JSON document.
func (c *Codec) Unmarshal(data []byte) (NamedColor, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return NamedColor{}, fmt.Errorf("failed to parse colour document: %w", err)
	}
	return c.decodeEnvelope(env)
}

// UnmarshalAll decodes either a single envelope or an array of envelopes.
// The first structural error aborts the whole batch and identifies the
// offending element.
func (c *Codec) UnmarshalAll(data []byte) ([]NamedColor, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		n, err := c.Unmarshal(trimmed)
		if err != nil {
			return nil, err
		}
		return []NamedColor{n}, nil
	}

	var envelopes []Envelope
	if err := json.Unmarshal(trimmed, &envelopes); err != nil {
		return nil, fmt.Errorf("failed to parse colour document: %w", err)
	}

	colours := make([]NamedColor, 0, len(envelopes))
	for i, env := range envelopes {
		n, err := c.decodeEnvelope(env)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i, err)
		}
		colours = append(colours, n)
	}
	return colours, nil
}

func (c *Codec) decodeEnvelope(env Envelope) (NamedColor, error) {
	if env.Data == nil {
		return NamedColor{}, malformed("", "data")
	}
	return c.Decode(*env.Data)
}

// Marshal encodes n with the default codec.
func Marshal(n NamedColor) ([]byte, error) {
	return defaultCodec.Marshal(n)
}

// MarshalAll encodes colours with the default codec.
func MarshalAll(colours []NamedColor) ([]byte, error) {
	return defaultCodec.MarshalAll(colours)
}

// Unmarshal decodes a single envelope with the default codec.
func Unmarshal(data []byte) (NamedColor, error) {
	return defaultCodec.Unmarshal(data)
}

// UnmarshalAll decodes one or many envelopes with the default codec.
func UnmarshalAll(data []byte) ([]NamedColor, error) {
	return defaultCodec.UnmarshalAll(data)
}
