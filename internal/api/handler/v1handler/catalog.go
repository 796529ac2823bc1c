package v1handler

import (
	"net/http"

	"backoffice/internal/specialist"
	"backoffice/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// QuoteFee handles GET /v1/fees/quote?amount=.
func (h *Handler) QuoteFee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.URL.Query().Get("amount")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		writeError(ctx, w, serrors.Wrap(specialist.ErrValidation, err, "invalid amount %q", raw))

		return
	}

	q, err := h.deps.Specialists.QuoteFee(ctx, amount)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeQuote(e, &q) })
}

// ListOfferings handles GET /v1/offerings.
func (h *Handler) ListOfferings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offerings, err := h.deps.Specialists.Catalog(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for i := range offerings {
						encodeCatalogOffering(e, &offerings[i])
					}
				})
			})
		})
	})
}
