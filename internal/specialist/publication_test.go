package specialist_test

import (
	"testing"

	"backoffice/internal/specialist"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNextTransition(t *testing.T) {
	t.Parallel()

	require.Equal(t, specialist.TransitionPublish, specialist.NextTransition(specialist.StateDraft, specialist.StatePublished))
	require.Equal(t, specialist.TransitionUnpublish, specialist.NextTransition(specialist.StatePublished, specialist.StateDraft))
	require.Equal(t, specialist.TransitionNone, specialist.NextTransition(specialist.StateDraft, specialist.StateDraft))
	require.Equal(t, specialist.TransitionNone, specialist.NextTransition(specialist.StatePublished, specialist.StatePublished))
	require.Equal(t, specialist.StateDraft, specialist.StateOf(true))
}

func TestPricingFor(t *testing.T) {
	t.Parallel()

	draft, published := specialist.StateDraft, specialist.StatePublished
	tests := []struct {
		name        string
		from, to    specialist.State
		baseChanged bool
		want        specialist.PricingAction
	}{
		{name: "publish", from: draft, to: published, want: specialist.PricingResolve},
		{name: "publish with new price", from: draft, to: published, baseChanged: true, want: specialist.PricingResolve},
		{name: "published price change", from: published, to: published, baseChanged: true, want: specialist.PricingResolve},
		{name: "published other edit", from: published, to: published, want: specialist.PricingKeep},
		{name: "unpublish keeps fee", from: published, to: draft, want: specialist.PricingKeep},
		{name: "unpublish with new price", from: published, to: draft, baseChanged: true, want: specialist.PricingReset},
		{name: "draft price change", from: draft, to: draft, baseChanged: true, want: specialist.PricingReset},
		{name: "draft other edit", from: draft, to: draft, want: specialist.PricingKeep},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, specialist.PricingFor(tc.from, tc.to, tc.baseChanged))
		})
	}
}

func TestEnsurePublishable(t *testing.T) {
	t.Parallel()

	require.NoError(t, specialist.EnsurePublishable(decimal.NewFromFloat(0.01)))
	require.ErrorIs(t, specialist.EnsurePublishable(decimal.Zero), specialist.ErrValidation)
	require.ErrorIs(t, specialist.EnsurePublishable(decimal.NewFromInt(-5)), specialist.ErrValidation)
}
