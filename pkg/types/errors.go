package types

import "errors"

// Editor core errors. Callers match these with errors.Is after unwrapping.
var (
	// ErrElementNotFound is returned when an operation references an
	// element id that does not exist in the layout.
	ErrElementNotFound = errors.New("element not found")

	// ErrLayoutNotFound is returned when a load or delete references a
	// layout id with no saved record.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrInvalidLayout is returned when a layout fails structural
	// validation, including after schema migration. Partially valid
	// layouts are never accepted.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrInvalidKind is returned when an element carries a kind outside
	// the closed variant set.
	ErrInvalidKind = errors.New("invalid element kind")

	// ErrInvalidParent is returned when a parent reference points at a
	// missing element or at a kind that cannot own children.
	ErrInvalidParent = errors.New("invalid parent reference")
)

// Backend lifecycle errors.
var (
	ErrBackendDetached = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)
