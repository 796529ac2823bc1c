package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeTierID identifies a platform fee tier.
type FeeTierID uuid.UUID

// FeeTierName is the label of a fee band.
type FeeTierName string

const (
	FeeTierLow    FeeTierName = "low"
	FeeTierMedium FeeTierName = "medium"
	FeeTierHigh   FeeTierName = "high"
)

// FeeTier is one band of the platform fee schedule. An amount belongs to the
// tier when MinValue <= amount <= MaxValue; a nil MaxValue is unbounded.
type FeeTier struct {
	ID         FeeTierID        `json:"id"`
	Name       FeeTierName      `json:"name"`
	MinValue   decimal.Decimal  `json:"minValue"`
	MaxValue   *decimal.Decimal `json:"maxValue,omitempty"`
	Percentage decimal.Decimal  `json:"percentage"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// Contains reports whether amount falls inside the tier bounds.
func (t FeeTier) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(t.MinValue) {
		return false
	}

	return t.MaxValue == nil || amount.LessThanOrEqual(*t.MaxValue)
}
