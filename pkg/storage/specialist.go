package storage

import (
	"context"
	"time"

	"backoffice/pkg/domain"

	"github.com/shopspring/decimal"
)

// SpecialistChanges is the set of columns written by UpdateSpecialist. Only
// non-nil fields are changed.
type SpecialistChanges struct {
	Slug         *string
	Title        *string
	Description  *string
	DurationDays *int
	BasePrice    *decimal.Decimal
	PlatformFee  *decimal.Decimal
	FinalPrice   *decimal.Decimal
	IsDraft      *bool
}

// IsEmpty reports whether no column would be written.
func (c SpecialistChanges) IsEmpty() bool {
	return c.Slug == nil && c.Title == nil && c.Description == nil && c.DurationDays == nil &&
		c.BasePrice == nil && c.PlatformFee == nil && c.FinalPrice == nil && c.IsDraft == nil
}

// PageCursor is the position of a row in the created_at DESC, id DESC order
// of published specialists. The id breaks ties between equal timestamps.
type PageCursor struct {
	CreatedAt time.Time
	ID        domain.SpecialistID
}

// SpecialistPage is a page of published specialists, newest first.
type SpecialistPage struct {
	Specialists []domain.Specialist
	// NextCursor points at the last row, nil when there is no next page.
	NextCursor *PageCursor
}

// SpecialistStorage persists the specialist rows. Relations (media, offering
// links) are loaded through their own storages. Soft-deleted rows are
// invisible to every read.
type SpecialistStorage interface {
	// StoreSpecialist inserts a specialist and returns the stored row.
	// A slug collision yields ErrDuplicateSlug.
	StoreSpecialist(ctx context.Context, specialist domain.Specialist) (*domain.Specialist, error)
	// SpecialistByID returns the specialist or nil when absent. When lock is
	// set the row is locked until the surrounding transaction ends.
	SpecialistByID(ctx context.Context, id domain.SpecialistID, lock bool) (*domain.Specialist, error)
	// SpecialistBySlug returns the specialist with the slug or nil when absent.
	SpecialistBySlug(ctx context.Context, slug string) (*domain.Specialist, error)
	// SlugTaken reports whether another specialist, including soft-deleted
	// ones, already holds the slug.
	SlugTaken(ctx context.Context, slug string, except *domain.SpecialistID) (bool, error)
	// UpdateSpecialist writes the changes when the stored version equals
	// version, bumps the version and returns the updated row. It returns nil
	// when the row is missing or the version does not match.
	UpdateSpecialist(ctx context.Context, id domain.SpecialistID, version uint, changes SpecialistChanges) (*domain.Specialist, error)
	// DeleteSpecialist soft-deletes the specialist and returns it, or nil when absent.
	DeleteSpecialist(ctx context.Context, id domain.SpecialistID) (*domain.Specialist, error)
	// PublishedSpecialists returns published specialists positioned after the
	// optional cursor, newest first. A non-empty search filters by title.
	PublishedSpecialists(ctx context.Context, search string, cursor *PageCursor, limit uint) (SpecialistPage, error)
}
