// This file implements the department mapper: hydration through the
// identity cache, query methods, and mutation/lifecycle methods.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/deptmap/pkg/types"
)

// Compile-time interface check: DepartmentMapper must implement Departments.
var _ types.Departments = (*DepartmentMapper)(nil)

// DepartmentMapper maps rows of the departments table to *Department
// instances. It owns the identity cache and a factory for constructing
// new instances, so the hydration logic works for any constructor a
// caller supplies.
type DepartmentMapper struct {
	backend *Backend
	cache   *identityCache
	factory func(name, location string) *types.Department
}

// newDepartmentMapper creates a mapper bound to the backend. The factory
// is used by fromRow and Create to construct instances.
func newDepartmentMapper(b *Backend, factory func(name, location string) *types.Department) *DepartmentMapper {
	return &DepartmentMapper{
		backend: b,
		cache:   newIdentityCache(),
		factory: factory,
	}
}

// conn returns the backend's database handle, or ErrStoreDetached if the
// backend has been detached since the mapper was handed out.
func (m *DepartmentMapper) conn() (*sql.DB, error) {
	m.backend.mu.RLock()
	defer m.backend.mu.RUnlock()

	if !m.backend.attached {
		return nil, types.ErrStoreDetached
	}
	return m.backend.db, nil
}

// fromRow turns raw row values into the canonical instance for that key.
// This is the single authoritative hydration path: every query method
// routes through it.
//
// A cache hit refreshes the cached instance's Name and Location in place
// and returns it; the key is never overwritten. Uncommitted in-memory
// edits are discarded on a hit: the latest persisted values win on read.
// A miss constructs a new instance via the factory, assigns the key, and
// caches it.
func (m *DepartmentMapper) fromRow(id int64, name, location string) *types.Department {
	if d, ok := m.cache.Lookup(id); ok {
		d.Name = name
		d.Location = location
		return d
	}
	d := m.factory(name, location)
	d.ID = id
	m.cache.Insert(id, d)
	return d
}

// CreateTable creates the departments table and its name index.
// Idempotent: a no-op if the table already exists.
func (m *DepartmentMapper) CreateTable() error {
	db, err := m.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec(createDepartments); err != nil {
		return fmt.Errorf("creating departments table: %w", err)
	}
	if _, err := db.Exec(idxDepartmentsName); err != nil {
		return fmt.Errorf("creating departments name index: %w", err)
	}
	m.backend.log.Debug().Msg("departments table created")
	return nil
}

// DropTable removes the departments table. Idempotent: a no-op if the
// table is absent. The identity cache keeps its entries; dropping the
// table does not invalidate live instances.
func (m *DepartmentMapper) DropTable() error {
	db, err := m.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec(dropDepartments); err != nil {
		return fmt.Errorf("dropping departments table: %w", err)
	}
	m.backend.log.Debug().Msg("departments table dropped")
	return nil
}

// All returns every department, in storage order (no ORDER BY; the order
// is whatever the engine yields). Each row is hydrated through fromRow.
func (m *DepartmentMapper) All() ([]*types.Department, error) {
	db, err := m.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT id, name, location FROM departments")
	if err != nil {
		return nil, fmt.Errorf("querying departments: %w", err)
	}
	defer rows.Close()

	var results []*types.Department
	for rows.Next() {
		var id int64
		var name, location sql.NullString
		if err := rows.Scan(&id, &name, &location); err != nil {
			return nil, fmt.Errorf("scanning department: %w", err)
		}
		results = append(results, m.fromRow(id, name.String, location.String))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating departments: %w", err)
	}
	return results, nil
}

// FindByID returns the department with the given key.
// Returns ErrNotFound if no row matches.
func (m *DepartmentMapper) FindByID(id int64) (*types.Department, error) {
	db, err := m.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT id, name, location FROM departments WHERE id = ?", id)
	return m.hydrateOne(row)
}

// FindByName returns the first department whose name matches, in storage
// order. Returns ErrNotFound if no row matches.
func (m *DepartmentMapper) FindByName(name string) (*types.Department, error) {
	db, err := m.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT id, name, location FROM departments WHERE name = ? LIMIT 1", name)
	return m.hydrateOne(row)
}

// hydrateOne scans a single-row result and hydrates it through fromRow.
// A zero-row result becomes ErrNotFound; everything else propagates as a
// storage error.
func (m *DepartmentMapper) hydrateOne(row *sql.Row) (*types.Department, error) {
	var id int64
	var name, location sql.NullString
	if err := row.Scan(&id, &name, &location); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("scanning department: %w", err)
	}
	return m.fromRow(id, name.String, location.String), nil
}

// Insert persists a transient department. Storage assigns the surrogate
// key, the instance records it, and the instance enters the identity
// cache under that key.
// Returns ErrAlreadyPersisted if the department already has a key;
// re-inserting a persisted instance would silently duplicate the row.
func (m *DepartmentMapper) Insert(d *types.Department) error {
	if d.Persisted() {
		return types.ErrAlreadyPersisted
	}

	db, err := m.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec(
		"INSERT INTO departments (name, location) VALUES (?, ?)",
		d.Name, d.Location,
	)
	if err != nil {
		return fmt.Errorf("inserting department: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted key: %w", err)
	}

	d.ID = id
	m.cache.Insert(id, d)

	m.backend.log.Debug().Int64("id", id).Str("name", d.Name).Msg("department inserted")
	return nil
}

// Create builds a transient department via the factory and inserts it.
func (m *DepartmentMapper) Create(name, location string) (*types.Department, error) {
	d := m.factory(name, location)
	if err := m.Insert(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update pushes the department's current Name and Location to its row.
// The identity cache is untouched; instance identity does not change.
// Returns ErrNotPersisted for transient instances.
func (m *DepartmentMapper) Update(d *types.Department) error {
	if !d.Persisted() {
		return types.ErrNotPersisted
	}

	db, err := m.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"UPDATE departments SET name = ?, location = ? WHERE id = ?",
		d.Name, d.Location, d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating department %d: %w", d.ID, err)
	}

	m.backend.log.Debug().Int64("id", d.ID).Msg("department updated")
	return nil
}

// Delete removes the department's row and evicts its identity-cache
// entry, so a later FindByID reports absence instead of resurrecting a
// stale instance. The instance keeps its ID; reusing it after Delete is
// the caller's responsibility.
// Returns ErrNotPersisted for transient instances.
func (m *DepartmentMapper) Delete(d *types.Department) error {
	if !d.Persisted() {
		return types.ErrNotPersisted
	}

	db, err := m.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM departments WHERE id = ?", d.ID); err != nil {
		return fmt.Errorf("deleting department %d: %w", d.ID, err)
	}

	m.cache.Evict(d.ID)

	m.backend.log.Debug().Int64("id", d.ID).Msg("department deleted")
	return nil
}
