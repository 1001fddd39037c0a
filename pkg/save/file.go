package save

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps a single JSON save file.
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to path.
func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("save file path is required")
	}
	return &FileStore{path: filepath.Clean(path)}, nil
}

// Path returns the save file location.
func (s *FileStore) Path() string { return s.path }

// Save writes rec to a temporary file next to the target and renames it into
// place, so the previous save survives any failure.
func (s *FileStore) Save(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ioErr("create save dir", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return ioErr("create temp save", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return ioErr("write save", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return ioErr("close save", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return ioErr("replace save", err)
	}
	return nil
}

// Load reads and decodes the save file.
func (s *FileStore) Load(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return Record{}, ioErr("open save", err)
	}
	defer f.Close()
	return Decode(f)
}

// Close is a no-op; files are opened per call.
func (s *FileStore) Close() error { return nil }
