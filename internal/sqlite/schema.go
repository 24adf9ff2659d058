// Package sqlite implements the SQLite storage backend for deptmap.
package sqlite

// Schema DDL for the departments table. Both statements are idempotent
// so CreateTable and DropTable can be called in any state.
const (
	createDepartments = `CREATE TABLE IF NOT EXISTS departments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT,
    location TEXT
);`

	dropDepartments = `DROP TABLE IF EXISTS departments;`
)

// Index DDL for name lookups.
const (
	idxDepartmentsName = `CREATE INDEX IF NOT EXISTS idx_departments_name ON departments(name);`
)
