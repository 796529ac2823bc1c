// Package fee resolves the platform fee charged on top of a specialist's base
// price from an ordered, non-overlapping tier schedule.
package fee

import (
	"context"
	"fmt"
	"sort"

	"backoffice/pkg/domain"
	"backoffice/pkg/serrors"

	"github.com/shopspring/decimal"
)

// ErrNoTierConfigured is returned when no tier contains the amount.
var ErrNoTierConfigured = serrors.NewKind("NO_TIER_CONFIGURED")

var hundred = decimal.NewFromInt(100)

// Quote is the result of resolving an amount against the schedule.
type Quote struct {
	Tier        domain.FeeTier
	Fee         decimal.Decimal
	FinalAmount decimal.Decimal
}

// Schedule is an ordered set of non-overlapping fee tiers.
type Schedule struct {
	tiers []domain.FeeTier
}

// NewSchedule sorts tiers by MinValue and rejects overlapping bands. Gaps are
// allowed; amounts falling in a gap fail to resolve.
func NewSchedule(tiers []domain.FeeTier) (*Schedule, error) {
	sorted := make([]domain.FeeTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinValue.LessThan(sorted[j].MinValue)
	})

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.MaxValue == nil || cur.MinValue.LessThanOrEqual(*prev.MaxValue) {
			return nil, fmt.Errorf("fee tier %q starting at %s overlaps tier %q", cur.Name, cur.MinValue, prev.Name)
		}
	}

	return &Schedule{tiers: sorted}, nil
}

// Tiers returns the tiers in ascending order.
func (s *Schedule) Tiers() []domain.FeeTier {
	return s.tiers
}

// Resolve finds the tier containing amount and computes the fee, rounded half
// up to two decimals, and the final amount.
func (s *Schedule) Resolve(amount decimal.Decimal) (Quote, error) {
	for _, tier := range s.tiers {
		if !tier.Contains(amount) {
			continue
		}

		fee := amount.Mul(tier.Percentage).Div(hundred).Round(2)

		return Quote{
			Tier:        tier,
			Fee:         fee,
			FinalAmount: amount.Add(fee),
		}, nil
	}

	return Quote{}, serrors.With(ErrNoTierConfigured, "no fee tier configured for amount %s", amount.StringFixed(2))
}

// TierSource provides the fee tiers ordered by MinValue.
type TierSource interface {
	FeeTiers(ctx context.Context) ([]domain.FeeTier, error)
}

// Resolver loads the schedule from a TierSource on every call so that it
// observes the tier table as seen by the caller's transaction.
type Resolver struct{}

// Quote resolves amount against the tiers read from src.
func (Resolver) Quote(ctx context.Context, src TierSource, amount decimal.Decimal) (Quote, error) {
	tiers, err := src.FeeTiers(ctx)
	if err != nil {
		return Quote{}, fmt.Errorf("could not load fee tiers: %w", err)
	}

	schedule, err := NewSchedule(tiers)
	if err != nil {
		return Quote{}, serrors.Wrap(serrors.ErrInternal, err, "invalid fee schedule")
	}

	return schedule.Resolve(amount)
}
