// Package types defines the entity types, sanitization and validation
// routines, and standard errors shared by the floor-plan editor core and
// its storage backend.
package types
