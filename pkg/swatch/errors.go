package swatch

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord indicates a record whose encoding is known but
	// whose required fields are missing or invalid.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnknownEncoding indicates a record whose encoding tag is not one
	// of the four known strategies.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// DecodeError describes a structural decode failure. Err is either
// ErrMalformedRecord or ErrUnknownEncoding.
type DecodeError struct {
	Encoding Encoding
	Field    string
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrUnknownEncoding) {
		return fmt.Sprintf("%v: %q", e.Err, string(e.Encoding))
	}
	if e.Encoding == "" {
		return fmt.Sprintf("%v: missing or invalid field %q", e.Err, e.Field)
	}
	return fmt.Sprintf("%v: %s record: missing or invalid field %q", e.Err, e.Encoding, e.Field)
}

// Unwrap returns the sentinel error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func malformed(enc Encoding, field string) error {
	return &DecodeError{Encoding: enc, Field: field, Err: ErrMalformedRecord}
}

func unknownEncoding(enc Encoding) error {
	return &DecodeError{Encoding: enc, Field: "encoding", Err: ErrUnknownEncoding}
}
