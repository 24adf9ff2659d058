package types

import "errors"

// Store defines backend-agnostic access to department storage. Callers
// attach to a backend, obtain the mapper, and detach when done.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, Departments returns ErrStoreDetached.
	Detach() error

	// Departments returns the department mapper.
	// Returns ErrStoreDetached if the store is not attached.
	Departments() (Departments, error)
}

// Departments maps rows of the departments table to *Department
// instances through an identity cache: for any persisted key the mapper
// returns the same instance on every read, with its Name and Location
// refreshed from the row.
type Departments interface {
	// CreateTable creates the departments table and its indexes.
	// Idempotent: a no-op if the table already exists.
	CreateTable() error

	// DropTable removes the departments table. Idempotent: a no-op if
	// the table is absent. The identity cache is not cleared; entries
	// for dropped rows linger until the mapper is discarded.
	DropTable() error

	// All returns every department in storage order. Each row is
	// hydrated through the identity cache.
	All() ([]*Department, error)

	// FindByID returns the department with the given key.
	// Returns ErrNotFound if no row matches.
	FindByID(id int64) (*Department, error)

	// FindByName returns the first department whose name matches, in
	// storage order. Returns ErrNotFound if no row matches.
	FindByName(name string) (*Department, error)

	// Insert persists a transient department. Storage assigns the
	// surrogate key, the instance records it, and the instance enters
	// the identity cache. Returns ErrAlreadyPersisted if the department
	// already has a key.
	Insert(d *Department) error

	// Create builds a transient department and inserts it.
	Create(name, location string) (*Department, error)

	// Update pushes the department's current Name and Location to its
	// row. The identity cache is untouched; instance identity does not
	// change. Returns ErrNotPersisted for transient instances.
	Update(d *Department) error

	// Delete removes the department's row and evicts its identity-cache
	// entry. The instance keeps its ID; reusing it after Delete is the
	// caller's responsibility. Returns ErrNotPersisted for transient
	// instances.
	Delete(d *Department) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Mapper operation errors.
var (
	ErrNotFound         = errors.New("department not found")
	ErrAlreadyPersisted = errors.New("department is already persisted")
	ErrNotPersisted     = errors.New("department is not persisted")
)
