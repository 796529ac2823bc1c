package domain

import (
	"time"

	"github.com/google/uuid"
)

// CatalogOfferingID identifies a reusable service offering in the catalog.
type CatalogOfferingID uuid.UUID

// String returns the canonical uuid representation.
func (id CatalogOfferingID) String() string {
	return uuid.UUID(id).String()
}

// CatalogOffering is a reusable service item that specialists can link to.
type CatalogOffering struct {
	ID          CatalogOfferingID `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	// ImageKey is the optional object store key of the offering image.
	ImageKey   string    `json:"imageKey,omitempty"`
	BucketName string    `json:"bucketName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OfferingLink associates a specialist with a catalog offering. A link carries
// no payload beyond the two identifiers; Offering is filled on reads.
type OfferingLink struct {
	SpecialistID SpecialistID      `json:"specialistId"`
	OfferingID   CatalogOfferingID `json:"offeringId"`
	Offering     *CatalogOffering  `json:"offering,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
