// Package deptmap carries project-level metadata.
package deptmap

// Version is the deptmap release version.
const Version = "v0.1.0"
