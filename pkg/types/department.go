package types

// Department represents one row of the departments table. Name and
// Location are free-form text; neither is unique at the storage layer.
type Department struct {
	ID       int64  // Surrogate key assigned by storage on insert; 0 while transient.
	Name     string // Department name.
	Location string // Department location.
}

// NewDepartment returns a transient department with no assigned key.
// The instance is not known to any store until it is inserted.
func NewDepartment(name, location string) *Department {
	return &Department{Name: name, Location: location}
}

// Persisted reports whether the department has been assigned a surrogate
// key. SQLite row IDs start at 1, so 0 always means transient.
func (d *Department) Persisted() bool {
	return d.ID != 0
}
