// Package v1handler implements the /v1 HTTP API of the back office.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"backoffice/internal/specialist"
	"backoffice/pkg/fee"
	"backoffice/pkg/logger"
	"backoffice/pkg/objectstore"
	"backoffice/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 20
	// maxMemory is the part of a multipart body kept in memory, the rest spills to disk.
	maxMemory = 8 << 20
)

// Deps are the services the handlers call.
type Deps struct {
	Specialists specialist.Service
}

// Options tune request parsing.
type Options struct {
	// MaxUploadBytes caps the body of create and update requests.
	MaxUploadBytes int64
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	if options.MaxUploadBytes <= 0 {
		options.MaxUploadBytes = 50 << 20
	}

	return &Handler{deps: deps, options: options}
}

// Register mounts the v1 routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/specialists", h.CreateSpecialist)
	mux.HandleFunc("GET /v1/specialists", h.ListSpecialists)
	mux.HandleFunc("GET /v1/specialists/{id}", h.GetSpecialist)
	mux.HandleFunc("PATCH /v1/specialists/{id}", h.UpdateSpecialist)
	mux.HandleFunc("DELETE /v1/specialists/{id}", h.DeleteSpecialist)
	mux.HandleFunc("GET /v1/specialists/by-slug/{slug}", h.GetSpecialistBySlug)
	mux.HandleFunc("GET /v1/fees/quote", h.QuoteFee)
	mux.HandleFunc("GET /v1/offerings", h.ListOfferings)
}

// StatusOf maps an error to its HTTP status code.
func StatusOf(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, specialist.ErrValidation),
		errors.Is(err, specialist.ErrInvalidOfferingReference),
		errors.Is(err, fee.ErrNoTierConfigured):
		return http.StatusUnprocessableEntity
	case errors.Is(err, specialist.ErrDuplicateSlug),
		errors.Is(err, specialist.ErrVersionConflict),
		errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, objectstore.ErrStoreUnavailable),
		errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"code": ..., "message": ...}. Internal errors
// are logged and their details withheld.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := StatusOf(err)

	code, message := "INTERNAL", "internal error"
	if k := serrors.KindOf(err); k != nil {
		code = k.Error()
	}
	if status == http.StatusRequestEntityTooLarge {
		code = "PAYLOAD_TOO_LARGE"
	}
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Int("status", status), zap.Error(err))
	}
	if status != http.StatusInternalServerError {
		message = err.Error()
	}

	writeJSON(w, status, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("code", func(e *jx.Encoder) { e.Str(code) })
			e.Field("message", func(e *jx.Encoder) { e.Str(message) })
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
