// Package swatch models named colours that remember how they were made.
//
// A NamedColor carries a resolved colour together with its CreationMethod:
// a hex literal, a system colour from the fixed Registry, a mix of two
// colours, or a base colour scaled by an Intensity. The wire format records
// the creation method rather than only the final RGBA value, so a decoded
// colour can be re-encoded to the same record.
//
// Each value is wrapped in a fixed envelope:
//
//	{"data": {"name": "Test Red", "id": "…", "encoding": "hexString", "hexString": "#FF0000"}}
//
// Records carry only the fields their encoding needs. Bad scalar data (an
// unparsable hex string, an unknown system colour name) falls back to a
// transparent colour; structurally incomplete records fail with a
// *DecodeError.
package swatch
