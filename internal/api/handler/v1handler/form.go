package v1handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"backoffice/internal/specialist"
	"backoffice/pkg/domain"
	"backoffice/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Form field names shared by create and update requests.
const (
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldDurationDays    = "duration_days"
	FieldBasePrice       = "base_price"
	FieldIsDraft         = "is_draft"
	FieldServices        = "services"
	FieldImages          = "images"
	FieldExpectedVersion = "expected_version"
)

// form is a parsed multipart or urlencoded body. Presence of a key is what
// makes a field part of a sparse update.
type form struct {
	values map[string][]string
	files  map[string][]*multipart.FileHeader
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) (*form, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxUploadBytes)

	err := r.ParseMultipartForm(maxMemory)
	switch {
	case errors.Is(err, http.ErrNotMultipart):
		if err := r.ParseForm(); err != nil {
			return nil, badRequest(err, "could not parse form")
		}

		return &form{values: r.PostForm}, nil
	case err != nil:
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return nil, err //nolint: wrapcheck
		}

		return nil, badRequest(err, "could not parse multipart form")
	}

	return &form{values: r.MultipartForm.Value, files: r.MultipartForm.File}, nil
}

func (f *form) has(key string) bool {
	_, ok := f.values[key]

	return ok
}

func (f *form) get(key string) string {
	if v := f.values[key]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}

	return ""
}

func (f *form) optString(key string) *string {
	if !f.has(key) {
		return nil
	}
	v := f.get(key)

	return &v
}

func (f *form) optInt(key string) (*int, error) {
	if !f.has(key) {
		return nil, nil
	}
	v, err := strconv.Atoi(f.get(key))
	if err != nil {
		return nil, invalidField(key, err)
	}

	return &v, nil
}

func (f *form) optDecimal(key string) (*decimal.Decimal, error) {
	if !f.has(key) {
		return nil, nil
	}
	v, err := decimal.NewFromString(f.get(key))
	if err != nil {
		return nil, invalidField(key, err)
	}

	return &v, nil
}

func (f *form) optBool(key string) (*bool, error) {
	if !f.has(key) {
		return nil, nil
	}
	v, err := strconv.ParseBool(f.get(key))
	if err != nil {
		return nil, invalidField(key, err)
	}

	return &v, nil
}

func (f *form) optUint(key string) (*uint, error) {
	if !f.has(key) {
		return nil, nil
	}
	v, err := strconv.ParseUint(f.get(key), 10, 0)
	if err != nil {
		return nil, invalidField(key, err)
	}
	u := uint(v)

	return &u, nil
}

// offerings decodes the services field, a JSON array of catalog offering
// ids. An empty value is an empty list.
func (f *form) offerings() (*[]domain.CatalogOfferingID, error) {
	if !f.has(FieldServices) {
		return nil, nil
	}

	ids := []domain.CatalogOfferingID{}
	raw := f.get(FieldServices)
	if raw == "" {
		return &ids, nil
	}

	err := jx.DecodeStr(raw).Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		if err != nil {
			return err //nolint: wrapcheck
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("offering id %q: %w", s, err)
		}
		ids = append(ids, domain.CatalogOfferingID(id))

		return nil
	})
	if err != nil {
		return nil, invalidField(FieldServices, err)
	}

	return &ids, nil
}

func (f *form) uploads() ([]specialist.Upload, error) {
	headers := f.files[FieldImages]
	uploads := make([]specialist.Upload, 0, len(headers))
	for _, fh := range headers {
		file, err := fh.Open()
		if err != nil {
			return nil, badRequest(err, "could not open upload %q", fh.Filename)
		}
		data, err := io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			return nil, badRequest(err, "could not read upload %q", fh.Filename)
		}

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(data)
		}
		uploads = append(uploads, specialist.Upload{
			Filename:    fh.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}

	return uploads, nil
}

func (f *form) createInput() (specialist.CreateInput, error) {
	var in specialist.CreateInput

	in.Title = f.get(FieldTitle)
	in.Description = f.get(FieldDescription)

	duration, err := f.optInt(FieldDurationDays)
	if err != nil {
		return in, err
	}
	if duration != nil {
		in.DurationDays = *duration
	}

	base, err := f.optDecimal(FieldBasePrice)
	if err != nil {
		return in, err
	}
	if base != nil {
		in.BasePrice = *base
	}

	draft, err := f.optBool(FieldIsDraft)
	if err != nil {
		return in, err
	}
	in.IsDraft = draft != nil && *draft

	offerings, err := f.offerings()
	if err != nil {
		return in, err
	}
	if offerings != nil {
		in.OfferingIDs = *offerings
	}

	in.Files, err = f.uploads()

	return in, err
}

func (f *form) patch() (specialist.Patch, error) {
	var (
		p   specialist.Patch
		err error
	)

	p.Title = f.optString(FieldTitle)
	p.Description = f.optString(FieldDescription)
	if p.DurationDays, err = f.optInt(FieldDurationDays); err != nil {
		return p, err
	}
	if p.BasePrice, err = f.optDecimal(FieldBasePrice); err != nil {
		return p, err
	}
	if p.IsDraft, err = f.optBool(FieldIsDraft); err != nil {
		return p, err
	}
	if p.OfferingIDs, err = f.offerings(); err != nil {
		return p, err
	}
	if p.ExpectedVersion, err = f.optUint(FieldExpectedVersion); err != nil {
		return p, err
	}
	p.Files, err = f.uploads()

	return p, err
}

func badRequest(err error, msgFmt string, args ...any) error {
	return serrors.Wrap(serrors.ErrBadRequest, err, msgFmt, args...)
}

func invalidField(key string, err error) error {
	return serrors.Wrap(specialist.ErrValidation, err, "invalid %s", key)
}
