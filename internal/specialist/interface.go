// Package specialist implements the specialist aggregate: transactional
// create and update of a specialist with its pricing, offering links and
// media, plus the read and soft delete operations around it.
package specialist

import (
	"context"

	"backoffice/pkg/domain"
	"backoffice/pkg/fee"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -package mockspecialist -source=interface.go -destination=mock/mockspecialist.go *
type Service interface {
	// Create stores a new specialist with its offering links and media in one transaction.
	Create(ctx context.Context, in CreateInput) (*domain.Specialist, error)
	// Update applies a sparse patch to an existing specialist in one transaction.
	Update(ctx context.Context, id domain.SpecialistID, patch Patch) (*domain.Specialist, error)
	// Get returns a live specialist, draft or published, with its relations.
	Get(ctx context.Context, id domain.SpecialistID) (*domain.Specialist, error)
	// GetBySlug returns a published specialist with its relations.
	GetBySlug(ctx context.Context, slug string) (*domain.Specialist, error)
	// ListPublished returns published specialists newest first.
	ListPublished(ctx context.Context, query ListQuery) (Page, error)
	// Delete soft-deletes the specialist and its media.
	Delete(ctx context.Context, id domain.SpecialistID) error
	// Catalog returns the service offerings specialists can link to.
	Catalog(ctx context.Context) ([]domain.CatalogOffering, error)
	// QuoteFee resolves the platform fee for a base price.
	QuoteFee(ctx context.Context, amount decimal.Decimal) (fee.Quote, error)
}
