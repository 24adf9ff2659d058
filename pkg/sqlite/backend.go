// Package sqlite provides the public API for the SQLite deptmap backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/deptmap/internal/sqlite"
	"github.com/mesh-intelligence/deptmap/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".deptmap",
//	})
//	defer store.Detach()
func NewBackend() types.Store {
	return sqlite.NewBackend()
}

// NewBackendWithLogger creates a backend that emits debug events through
// the given logger.
func NewBackendWithLogger(log zerolog.Logger) types.Store {
	return sqlite.NewBackend(sqlite.WithLogger(log))
}
