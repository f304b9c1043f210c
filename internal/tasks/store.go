package tasks

import (
	"context"
	"fmt"
	"path/filepath"
)

// Storage backends selectable through configuration.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DefaultDatabase is the SQLite file name used when none is configured.
const DefaultDatabase = "tasks.db"

// Store loads and persists a project's task list.
type Store interface {
	// Load reads every task. A missing store yields an empty list.
	Load(ctx context.Context) (*List, error)
	// Save writes every task in l and returns how many were written.
	Save(ctx context.Context, l *List) (int, error)
	Close() error
}

// OpenStore opens the store for the task directory dir. database names the
// SQLite file, relative to dir unless absolute; it is ignored by the file
// backend.
func OpenStore(dir, backend, database string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(dir), nil
	case BackendSQLite:
		if database == "" {
			database = DefaultDatabase
		}
		if !filepath.IsAbs(database) {
			database = filepath.Join(dir, database)
		}
		return NewSQLiteStore(database)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
