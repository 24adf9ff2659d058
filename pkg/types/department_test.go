package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDepartment(t *testing.T) {
	d := NewDepartment("Payroll", "Building A")

	assert.Equal(t, "Payroll", d.Name)
	assert.Equal(t, "Building A", d.Location)
	assert.Zero(t, d.ID)
	assert.False(t, d.Persisted(), "new departments are transient")
}

func TestPersisted(t *testing.T) {
	d := NewDepartment("HR", "Building C")
	assert.False(t, d.Persisted())

	d.ID = 42
	assert.True(t, d.Persisted())
}
