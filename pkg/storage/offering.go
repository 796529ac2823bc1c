package storage

import (
	"context"

	"backoffice/pkg/domain"
)

// OfferingLinkStorage persists the specialist to catalog offering links.
type OfferingLinkStorage interface {
	// OfferingLinks returns the links of the specialists with their catalog
	// offering filled in.
	OfferingLinks(ctx context.Context, ids ...domain.SpecialistID) ([]domain.OfferingLink, error)
	// AddOfferingLinks links the offerings. A missing offering yields ErrUnknownOffering.
	AddOfferingLinks(ctx context.Context, id domain.SpecialistID, offerings ...domain.CatalogOfferingID) error
	// RemoveOfferingLinks unlinks the offerings.
	RemoveOfferingLinks(ctx context.Context, id domain.SpecialistID, offerings ...domain.CatalogOfferingID) error
}

// CatalogStorage reads and seeds the service offering catalog.
type CatalogStorage interface {
	// MissingCatalogOfferings returns the ids that do not exist in the catalog.
	MissingCatalogOfferings(ctx context.Context, ids ...domain.CatalogOfferingID) ([]domain.CatalogOfferingID, error)
	// CatalogOfferings returns the whole catalog ordered by title.
	CatalogOfferings(ctx context.Context) ([]domain.CatalogOffering, error)
	// StoreCatalogOfferings inserts catalog offerings and returns the stored rows.
	StoreCatalogOfferings(ctx context.Context, offerings ...domain.CatalogOffering) ([]domain.CatalogOffering, error)
}

// FeeTierStorage reads and seeds the platform fee schedule.
type FeeTierStorage interface {
	// FeeTiers returns the tiers ordered by their lower bound.
	FeeTiers(ctx context.Context) ([]domain.FeeTier, error)
	// StoreFeeTiers inserts tiers and returns the stored rows.
	StoreFeeTiers(ctx context.Context, tiers ...domain.FeeTier) ([]domain.FeeTier, error)
}
