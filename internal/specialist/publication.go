package specialist

import (
	"backoffice/pkg/serrors"

	"github.com/shopspring/decimal"
)

// State is the publication state of a specialist.
type State string

const (
	StateDraft     State = "draft"
	StatePublished State = "published"
)

// StateOf maps the is_draft flag to a state.
func StateOf(isDraft bool) State {
	if isDraft {
		return StateDraft
	}

	return StatePublished
}

// Transition is a change of publication state within one write.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionPublish
	TransitionUnpublish
)

// NextTransition returns the transition taken when moving from one state to another.
func NextTransition(from, to State) Transition {
	switch {
	case from == StateDraft && to == StatePublished:
		return TransitionPublish
	case from == StatePublished && to == StateDraft:
		return TransitionUnpublish
	default:
		return TransitionNone
	}
}

// PricingAction tells a write what to do with the stored fee and final price.
type PricingAction int

const (
	// PricingKeep leaves platform_fee and final_price as stored.
	PricingKeep PricingAction = iota
	// PricingResolve recomputes the fee from the schedule.
	PricingResolve
	// PricingReset sets the fee to zero and the final price to the base price.
	PricingReset
)

// PricingFor decides how the fee follows an edit. Published specialists
// resolve a fee when their base price changes or when they get published.
// Drafts carry no fee, so a base price change on a draft resets it.
// Unpublishing keeps the last computed fee.
func PricingFor(from, to State, baseChanged bool) PricingAction {
	switch {
	case to == StatePublished && (baseChanged || NextTransition(from, to) == TransitionPublish):
		return PricingResolve
	case to == StateDraft && baseChanged:
		return PricingReset
	default:
		return PricingKeep
	}
}

// EnsurePublishable rejects base prices that cannot be published.
func EnsurePublishable(basePrice decimal.Decimal) error {
	if !basePrice.IsPositive() {
		return serrors.With(ErrValidation, "base price must be greater than zero to publish")
	}

	return nil
}
