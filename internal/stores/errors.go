package stores

import "errors"

// Sentinel errors shared by the stores.
var (
	// ErrNotFound is returned when a lookup by id matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAnnotation is returned when a save attempt fails
	// validation (empty content or missing start time). The store is
	// left untouched; no partial annotation is ever inserted.
	ErrInvalidAnnotation = errors.New("invalid annotation")
)
