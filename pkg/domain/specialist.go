package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpecialistID uniquely identifies a specialist listing.
// It wraps uuid.UUID to provide type safety at the domain layer.
type SpecialistID uuid.UUID

// String returns the canonical uuid representation.
func (id SpecialistID) String() string {
	return uuid.UUID(id).String()
}

// VerificationStatus is the back-office review state of a specialist.
type VerificationStatus string

const (
	// VerificationStatusPending is assigned to every newly created specialist.
	VerificationStatusPending VerificationStatus = "pending"
	// VerificationStatusApproved marks a specialist accepted by an operator.
	VerificationStatusApproved VerificationStatus = "approved"
	// VerificationStatusRejected marks a specialist refused by an operator.
	VerificationStatusRejected VerificationStatus = "rejected"
)

// Specialist is a service listing offered on the marketplace together with
// its pricing and its dependent media and offering links.
type Specialist struct {
	// ID is the unique identifier of the specialist.
	ID SpecialistID `json:"id"`
	// Slug is derived from Title and is globally unique.
	Slug string `json:"slug"`

	Title        string `json:"title"`
	Description  string `json:"description"`
	DurationDays int    `json:"durationDays"`

	// BasePrice is the price entered by the specialist.
	BasePrice decimal.Decimal `json:"basePrice"`
	// PlatformFee is computed from the fee schedule when the specialist is published.
	PlatformFee decimal.Decimal `json:"platformFee"`
	// FinalPrice is always BasePrice + PlatformFee.
	FinalPrice decimal.Decimal `json:"finalPrice"`

	IsDraft            bool               `json:"isDraft"`
	IsVerified         bool               `json:"isVerified"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`

	AverageRating        decimal.Decimal `json:"averageRating"`
	TotalNumberOfRatings int             `json:"totalNumberOfRatings"`

	// Version is incremented on every persisted change and guards concurrent edits.
	Version uint `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the specialist was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`

	Media     []Media        `json:"media"`
	Offerings []OfferingLink `json:"offerings"`
}

// IsPublished reports whether the specialist is visible on the marketplace.
func (s *Specialist) IsPublished() bool {
	return !s.IsDraft
}

// OfferingIDs returns the ids of the linked catalog offerings.
func (s *Specialist) OfferingIDs() []CatalogOfferingID {
	ids := make([]CatalogOfferingID, 0, len(s.Offerings))
	for _, link := range s.Offerings {
		ids = append(ids, link.OfferingID)
	}

	return ids
}
