// Package storage defines the persistence interfaces of the back office and
// the transaction contract the services rely on. Concrete backends live in
// subpackages (see postgres).
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every storage capability. Both the pooled handle and a
// transactional handle implement it so services can run the same code paths
// inside and outside a transaction.
type AllStorage interface {
	SpecialistStorage
	MediaStorage
	OfferingLinkStorage
	CatalogStorage
	FeeTierStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit persists every change made through the handle.
	Commit() error
	// Rollback discards every change made through the handle.
	Rollback() error
}

// Storage is the pooled, non-transactional storage handle.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
