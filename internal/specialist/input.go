package specialist

import (
	"errors"
	"strings"
	"time"

	"backoffice/pkg/domain"
	"backoffice/pkg/serrors"
	"backoffice/pkg/storage"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxTitleLength = 255

// Upload is a raw file attached to a create or update call.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Validate implements validation.Validatable.
func (u Upload) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.ContentType, validation.Required),
		validation.Field(&u.Data, validation.Required),
	)
}

// CreateInput carries every field of a new specialist.
type CreateInput struct {
	Title        string
	Description  string
	DurationDays int
	BasePrice    decimal.Decimal
	IsDraft      bool
	OfferingIDs  []domain.CatalogOfferingID
	Files        []Upload
}

// Validate checks the scalar constraints that do not depend on stored state.
func (in CreateInput) Validate() error {
	return wrapValidation(validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, maxTitleLength), validation.By(sluggable)),
		validation.Field(&in.DurationDays, validation.Required, validation.Min(1)),
		validation.Field(&in.BasePrice, validation.By(nonNegative)),
		validation.Field(&in.Files),
	))
}

// Patch is a sparse update: nil fields are left untouched. A nil
// OfferingIDs keeps the links as they are while a non-nil empty slice
// removes them all.
type Patch struct {
	Title        *string
	Description  *string
	DurationDays *int
	BasePrice    *decimal.Decimal
	IsDraft      *bool
	OfferingIDs  *[]domain.CatalogOfferingID
	Files        []Upload

	// ExpectedVersion, when set, must equal the stored version.
	ExpectedVersion *uint
}

// Validate checks the supplied fields.
func (p Patch) Validate() error {
	return wrapValidation(validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty, validation.Length(1, maxTitleLength), validation.By(sluggable)),
		validation.Field(&p.DurationDays, validation.Min(1)),
		validation.Field(&p.BasePrice, validation.By(nonNegative)),
		validation.Field(&p.Files),
	))
}

// ListQuery selects a page of published specialists.
type ListQuery struct {
	Search string
	// Cursor is the NextCursor of the previous page.
	Cursor string
	Limit  uint
}

// Page is a page of published specialists.
type Page struct {
	Specialists []domain.Specialist
	NextCursor  string
}

// cursorSeparator joins the two halves of a page cursor. It never occurs in
// an RFC3339 timestamp or a uuid.
const cursorSeparator = "_"

func encodeCursor(c storage.PageCursor) string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()
}

func (q ListQuery) pageCursor() (*storage.PageCursor, error) {
	if q.Cursor == "" {
		return nil, nil
	}

	ts, id, ok := strings.Cut(q.Cursor, cursorSeparator)
	if !ok {
		return nil, serrors.With(ErrValidation, "invalid cursor")
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, serrors.Wrap(ErrValidation, err, "invalid cursor")
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, serrors.Wrap(ErrValidation, err, "invalid cursor")
	}

	return &storage.PageCursor{CreatedAt: t, ID: domain.SpecialistID(uid)}, nil
}

func nonNegative(value any) error {
	var d decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		d = *v
	default:
		return errors.New("must be a decimal")
	}

	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return errors.New("must have at most two decimals")
	}

	return nil
}

func sluggable(value any) error {
	var title string
	switch v := value.(type) {
	case string:
		title = v
	case *string:
		if v == nil {
			return nil
		}
		title = *v
	}

	if title != "" && Slugify(title) == "" {
		return errors.New("must contain at least one letter or digit")
	}

	return nil
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}

	return serrors.Wrap(ErrValidation, err, "invalid specialist")
}
