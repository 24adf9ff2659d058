// Package sqlite implements the SQLite storage backend for deptmap.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/deptmap/pkg/types"
)

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "deptmap.db"

// Backend implements the Store interface using SQLite. A single
// connection pool is shared by all mapper operations; database/sql
// serializes statement execution, and the backend adds its own lock
// around attach state.
type Backend struct {
	mu          sync.RWMutex
	attached    bool
	config      types.Config
	db          *sql.DB
	departments *DepartmentMapper
	log         zerolog.Logger
}

// Option configures a Backend before Attach.
type Option func(*Backend)

// WithLogger sets the backend logger. The default discards all events.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Backend) {
		b.log = log
	}
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist and opens the SQLite database. The
// departments table is not created here; CreateTable is an explicit
// mapper operation, so queries against a missing table surface as
// storage errors.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	b.departments = newDepartmentMapper(b, types.NewDepartment)

	b.log.Debug().Str("db", dbPath).Msg("backend attached")
	return nil
}

// Detach releases all resources held by the backend. Closes the SQLite
// connection. After Detach, Departments returns ErrStoreDetached.
// Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}

	b.attached = false
	b.departments = nil

	b.log.Debug().Msg("backend detached")
	return nil
}

// Departments returns the department mapper.
// Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) Departments() (types.Departments, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.departments, nil
}

// Mapper returns the concrete department mapper, which carries the
// snapshot export/import operations in addition to the Departments
// interface. Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) Mapper() (*DepartmentMapper, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.departments, nil
}
