package save

import (
	"context"
	"fmt"
	"strings"
)

// Store keeps the most recent save. Saving replaces whatever was stored.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Load(ctx context.Context) (Record, error)
	Close() error
}

// Backend names accepted by OpenStore.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// OpenStore opens the store selected by backend. slot is only used by the
// SQLite backend.
func OpenStore(backend, path, slot string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		fs, err := NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case BackendSQLite:
		db, err := OpenSQLite(path, slot)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
