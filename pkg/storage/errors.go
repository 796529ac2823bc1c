package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit or Rollback on a pooled handle.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicateSlug is returned when a write collides with the unique slug index.
	ErrDuplicateSlug = errors.New("duplicate slug")
	// ErrUnknownOffering is returned when a link references a missing catalog offering.
	ErrUnknownOffering = errors.New("unknown catalog offering")
)
