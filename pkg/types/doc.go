// Package types defines the Store and Departments interfaces, the
// Department entity, and the standard errors for the deptmap system.
//
// A Store is attached to a backend, hands out the department mapper, and
// is detached when done. The mapper guarantees that at most one live
// *Department exists per persisted primary key: every read path consults
// the identity cache before constructing a new instance, so code holding
// a reference to "the" department can rely on pointer identity.
package types
