// Package security provides input validation utilities for Swatchbook.
package security

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxDocumentSize caps how many bytes a colour document may expand to when
// read, compressed or not.
const MaxDocumentSize = 32 * 1024 * 1024

// documentExtensions are the file suffixes accepted for colour documents.
var documentExtensions = []string{".json", ".json.gz", ".json.xz"}

// ValidateDocumentPath checks that path names a colour document with a
// supported extension and is not a directory.
func ValidateDocumentPath(path string) error {
	if path == "" {
		return fmt.Errorf("empty document path")
	}

	clean := filepath.Clean(path)
	lower := strings.ToLower(clean)

	supported := false
	for _, ext := range documentExtensions {
		if strings.HasSuffix(lower, ext) {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported document extension: %s (expected one of %s)",
			filepath.Base(clean), strings.Join(documentExtensions, ", "))
	}

	if info, err := os.Stat(clean); err == nil && info.IsDir() {
		return fmt.Errorf("document path is a directory: %s", clean)
	}

	return nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Unlike io.LimitReader it fails loudly instead of truncating, which prevents
// decompression bombs from silently yielding partial documents.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Probe for more data so an input of exactly the limit still succeeds.
		var probe [1]byte
		if n, _ := l.R.Read(probe[:]); n == 0 {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("document size limit exceeded")
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
