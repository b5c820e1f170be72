package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatchbook/internal/compression"
	"github.com/jmylchreest/swatchbook/internal/security"
	"github.com/jmylchreest/swatchbook/pkg/swatch"
)

// ReadDocument reads a colour document from path, decompressing it when the
// extension calls for it.
func ReadDocument(path string) ([]byte, error) {
	if err := security.ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path) // #nosec G304 - document path chosen by the user
	if err != nil {
		return nil, err
	}

	data, err := compression.Decompress(raw, compression.DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// WriteDocument writes data to path, compressing it when the extension calls
// for it. The write is atomic: data goes to a temporary file that is renamed
// into place.
func WriteDocument(path string, data []byte) error {
	if err := security.ValidateDocumentPath(path); err != nil {
		return err
	}

	packed, err := compression.Compress(data, compression.DetectFormat(path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(packed)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, errors.Join(writeErr, closeErr))
	}

	if err := os.Chmod(tmpPath, 0o600); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Load reads the library stored at path. A missing file yields an empty
// library.
func Load(path string, codec *swatch.Codec, logger hclog.Logger) (*Library, error) {
	lib := New(codec, logger)

	data, err := ReadDocument(path)
	if errors.Is(err, fs.ErrNotExist) {
		lib.logger.Debug("library not found, starting empty", "path", path)
		return lib, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}

	colours, err := lib.codec.UnmarshalAll(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load library %s: %w", path, err)
	}
	lib.colours = colours

	lib.logger.Debug("loaded library", "path", path, "colours", len(colours))
	return lib, nil
}

// Save writes the library to path.
func (l *Library) Save(path string) error {
	data, err := l.Export()
	if err != nil {
		return err
	}
	if err := WriteDocument(path, data); err != nil {
		return fmt.Errorf("failed to save library: %w", err)
	}
	l.logger.Debug("saved library", "path", path, "colours", len(l.colours))
	return nil
}
