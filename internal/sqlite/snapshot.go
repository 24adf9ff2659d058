// This file implements JSONL snapshot export and import for the
// departments table.
package sqlite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Snapshot file names inside a snapshot directory.
const (
	snapshotDataFile     = "departments.jsonl"
	snapshotManifestFile = "manifest.json"
)

// departmentRecord is the JSONL record format for one department row.
type departmentRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Manifest describes an exported snapshot.
type Manifest struct {
	SnapshotID  string    `json:"snapshot_id"`
	CreatedAt   time.Time `json:"created_at"`
	Departments int       `json:"departments"`
}

// newSnapshotID generates a UUID v7 for snapshot manifests.
func newSnapshotID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

// Export writes every department row to dir/departments.jsonl along with
// a manifest.json carrying a snapshot ID, creation time, and row count.
// Both files are written atomically. Returns the manifest.
func (m *DepartmentMapper) Export(dir string) (*Manifest, error) {
	db, err := m.conn()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	rows, err := db.Query("SELECT id, name, location FROM departments ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("querying departments for snapshot: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec departmentRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Location); err != nil {
			return nil, fmt.Errorf("scanning department for snapshot: %w", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshaling department %d: %w", rec.ID, err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating departments for snapshot: %w", err)
	}

	if err := writeJSONL(filepath.Join(dir, snapshotDataFile), records); err != nil {
		return nil, err
	}

	manifest := &Manifest{
		SnapshotID:  newSnapshotID(),
		CreatedAt:   time.Now().UTC(),
		Departments: len(records),
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := writeJSONL(filepath.Join(dir, snapshotManifestFile), []json.RawMessage{data}); err != nil {
		return nil, err
	}

	m.backend.log.Debug().
		Str("snapshot_id", manifest.SnapshotID).
		Int("departments", manifest.Departments).
		Msg("snapshot exported")
	return manifest, nil
}

// Import loads dir/departments.jsonl into the table. Records keep their
// exported keys (INSERT OR REPLACE), so a snapshot restores rows under
// their original IDs. Loading is transactional: all records land or none
// do. Malformed lines were already dropped by readJSONL. Every imported
// row is re-hydrated through the identity cache so live instances pick
// up the restored values. Returns the number of rows imported.
func (m *DepartmentMapper) Import(dir string) (int, error) {
	db, err := m.conn()
	if err != nil {
		return 0, err
	}

	records, err := readJSONL(filepath.Join(dir, snapshotDataFile))
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO departments (id, name, location) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing import insert: %w", err)
	}
	defer stmt.Close()

	var imported []departmentRecord
	for _, raw := range records {
		var rec departmentRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			// Records that parse as JSON but not as departments are skipped,
			// matching the malformed-line tolerance of readJSONL.
			continue
		}
		if _, err := stmt.Exec(rec.ID, rec.Name, rec.Location); err != nil {
			return 0, fmt.Errorf("importing department %d: %w", rec.ID, err)
		}
		imported = append(imported, rec)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}

	// Refresh live instances after the transaction is durable.
	for _, rec := range imported {
		m.fromRow(rec.ID, rec.Name, rec.Location)
	}

	m.backend.log.Debug().Int("departments", len(imported)).Msg("snapshot imported")
	return len(imported), nil
}
