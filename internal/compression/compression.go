// Package compression provides transparent compression for colour documents.
package compression

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/swatchbook/internal/security"
	"github.com/ulikunitz/xz"
)

// Format identifies how a document is compressed on disk.
type Format int

const (
	// FormatNone is plain, uncompressed data.
	FormatNone Format = iota
	// FormatGzip is gzip-compressed data.
	FormatGzip
	// FormatXz is xz-compressed data.
	FormatXz
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatGzip:
		return "gzip"
	case FormatXz:
		return "xz"
	default:
		return "none"
	}
}

// DetectFormat returns the compression implied by a file name's extension.
func DetectFormat(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xz"):
		return FormatXz
	case strings.HasSuffix(lower, ".gz"):
		return FormatGzip
	default:
		return FormatNone
	}
}

// Decompress returns the decompressed contents of data. The output is
// capped at security.MaxDocumentSize.
func Decompress(data []byte, format Format) ([]byte, error) {
	var r io.Reader
	switch format {
	case FormatXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	case FormatGzip:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	default:
		r = bytes.NewReader(data)
	}

	out, err := io.ReadAll(security.NewLimitedReader(r, security.MaxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s document: %w", format, err)
	}
	return out, nil
}

// Compress returns data compressed in format.
func Compress(data []byte, format Format) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser

	switch format {
	case FormatXz:
		xzw, err := xz.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		w = xzw
	case FormatGzip:
		w = gzip.NewWriter(&buf)
	default:
		return data, nil
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to compress %s document: %w", format, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish %s document: %w", format, err)
	}
	return buf.Bytes(), nil
}
