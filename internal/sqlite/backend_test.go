// Unit tests for the backend attach/detach lifecycle.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/deptmap/pkg/types"
)

// setupBackend creates an attached backend with the departments table
// ready, backed by a temp directory.
func setupBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })

	depts, err := b.Departments()
	require.NoError(t, err)
	require.NoError(t, depts.CreateTable())
	return b
}

func TestBackendAttach(t *testing.T) {
	t.Run("attach twice returns ErrAlreadyAttached", func(t *testing.T) {
		b := setupBackend(t)
		err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
		assert.ErrorIs(t, err, types.ErrAlreadyAttached)
	})

	t.Run("attach rejects empty backend", func(t *testing.T) {
		b := NewBackend()
		err := b.Attach(types.Config{DataDir: t.TempDir()})
		assert.ErrorIs(t, err, types.ErrBackendEmpty)
	})

	t.Run("attach rejects unknown backend", func(t *testing.T) {
		b := NewBackend()
		err := b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})
}

func TestBackendDetach(t *testing.T) {
	t.Run("detach is idempotent", func(t *testing.T) {
		b := setupBackend(t)
		require.NoError(t, b.Detach())
		require.NoError(t, b.Detach())
	})

	t.Run("departments after detach returns ErrStoreDetached", func(t *testing.T) {
		b := setupBackend(t)
		require.NoError(t, b.Detach())

		_, err := b.Departments()
		assert.ErrorIs(t, err, types.ErrStoreDetached)
	})

	t.Run("mapper operations after detach return ErrStoreDetached", func(t *testing.T) {
		b := setupBackend(t)
		depts, err := b.Departments()
		require.NoError(t, err)
		require.NoError(t, b.Detach())

		_, err = depts.All()
		assert.ErrorIs(t, err, types.ErrStoreDetached)
		err = depts.Insert(types.NewDepartment("Payroll", "Building A"))
		assert.ErrorIs(t, err, types.ErrStoreDetached)
	})
}

func TestBackendReattach(t *testing.T) {
	dataDir := t.TempDir()

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
	depts, err := b.Departments()
	require.NoError(t, err)
	require.NoError(t, depts.CreateTable())
	created, err := depts.Create("Payroll", "Building A")
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	// Rows survive detach; the fresh mapper has an empty identity cache,
	// so the hydrated instance is a new one with the same key.
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}))
	defer b.Detach()
	depts, err = b.Departments()
	require.NoError(t, err)

	got, err := depts.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Payroll", got.Name)
	assert.NotSame(t, created, got)
}
