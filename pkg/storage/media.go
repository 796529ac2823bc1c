package storage

import (
	"context"

	"backoffice/pkg/domain"
)

// MediaStorage persists media rows.
type MediaStorage interface {
	// StoreMedia inserts media rows and returns them in insertion order.
	StoreMedia(ctx context.Context, media ...domain.Media) ([]domain.Media, error)
	// SpecialistMedia returns the live media of the specialists ordered by display order.
	SpecialistMedia(ctx context.Context, ids ...domain.SpecialistID) ([]domain.Media, error)
	// NextDisplayOrder returns one past the highest display order ever used by
	// the specialist, soft-deleted media included, or 0 when there is none.
	NextDisplayOrder(ctx context.Context, id domain.SpecialistID) (int, error)
	// DeleteSpecialistMedia soft-deletes all media of the specialist.
	DeleteSpecialistMedia(ctx context.Context, id domain.SpecialistID) error
}
