package v1handler

import (
	"net/http"
	"strconv"
	"strings"

	"backoffice/internal/specialist"
	"backoffice/pkg/domain"
	"backoffice/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

func specialistID(r *http.Request) (domain.SpecialistID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.SpecialistID{}, serrors.Wrap(serrors.ErrNotFound, err, "specialist %q not found", r.PathValue("id"))
	}

	return domain.SpecialistID(id), nil
}

func writeSpecialist(w http.ResponseWriter, status int, s *domain.Specialist) {
	w.Header().Set("ETag", strconv.Quote(strconv.FormatUint(uint64(s.Version), 10)))
	writeJSON(w, status, func(e *jx.Encoder) { EncodeSpecialist(e, s) })
}

// CreateSpecialist handles POST /v1/specialists.
func (h *Handler) CreateSpecialist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := h.parseForm(w, r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	in, err := f.createInput()
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	s, err := h.deps.Specialists.Create(ctx, in)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	w.Header().Set("Location", "/v1/specialists/"+s.ID.String())
	writeSpecialist(w, http.StatusCreated, s)
}

// UpdateSpecialist handles PATCH /v1/specialists/{id}. Only the fields
// present in the body are changed. The expected version comes from the
// expected_version field or an If-Match header.
func (h *Handler) UpdateSpecialist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := specialistID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	f, err := h.parseForm(w, r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	patch, err := f.patch()
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if patch.ExpectedVersion == nil {
		if patch.ExpectedVersion, err = ifMatch(r); err != nil {
			writeError(ctx, w, err)

			return
		}
	}

	s, err := h.deps.Specialists.Update(ctx, id, patch)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeSpecialist(w, http.StatusOK, s)
}

func ifMatch(r *http.Request) (*uint, error) {
	raw := strings.TrimSpace(r.Header.Get("If-Match"))
	if raw == "" || raw == "*" {
		return nil, nil
	}

	v, err := strconv.ParseUint(strings.Trim(strings.TrimPrefix(raw, "W/"), `"`), 10, 0)
	if err != nil {
		return nil, badRequest(err, "invalid If-Match header")
	}
	u := uint(v)

	return &u, nil
}

// GetSpecialist handles GET /v1/specialists/{id}; drafts included.
func (h *Handler) GetSpecialist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := specialistID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	s, err := h.deps.Specialists.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeSpecialist(w, http.StatusOK, s)
}

// GetSpecialistBySlug handles GET /v1/specialists/by-slug/{slug}.
func (h *Handler) GetSpecialistBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := h.deps.Specialists.GetBySlug(ctx, r.PathValue("slug"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeSpecialist(w, http.StatusOK, s)
}

// ListSpecialists handles GET /v1/specialists?search=&cursor=&limit=.
func (h *Handler) ListSpecialists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	limit := uint(DefaultLimit)
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 0)
		if err != nil || v == 0 {
			writeError(ctx, w, serrors.With(specialist.ErrValidation, "invalid limit %q", raw))

			return
		}
		limit = uint(v)
	}

	page, err := h.deps.Specialists.ListPublished(ctx, specialist.ListQuery{
		Search: strings.TrimSpace(q.Get("search")),
		Cursor: q.Get("cursor"),
		Limit:  limit,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodePage(e, &page) })
}

// DeleteSpecialist handles DELETE /v1/specialists/{id}.
func (h *Handler) DeleteSpecialist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := specialistID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Specialists.Delete(ctx, id); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
