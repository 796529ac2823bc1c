package client

import (
	"strings"

	"backoffice/pkg/domain"
	"backoffice/pkg/offering"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FormState is the editable part of a specialist as held by an edit form.
type FormState struct {
	Title        string
	Description  string
	DurationDays int
	BasePrice    decimal.Decimal
	IsDraft      bool
	OfferingIDs  []uuid.UUID
}

// Normalized returns the form as the server stores it: title and
// description without surrounding whitespace.
func (f FormState) Normalized() FormState {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)

	return f
}

// Snapshot is the last successfully saved state of a specialist.
type Snapshot struct {
	FormState

	ID      uuid.UUID
	Version uint
}

// SnapshotOf captures the editable state of a specialist returned by the API.
func SnapshotOf(s *Specialist) Snapshot {
	ids := make([]uuid.UUID, 0, len(s.Offerings))
	for _, o := range s.Offerings {
		ids = append(ids, o.OfferingID)
	}

	return Snapshot{
		FormState: FormState{
			Title:        s.Title,
			Description:  s.Description,
			DurationDays: s.DurationDays,
			BasePrice:    s.BasePrice,
			IsDraft:      s.IsDraft,
			OfferingIDs:  ids,
		},
		ID:      s.ID,
		Version: s.Version,
	}
}

// File is a new file attached to a save.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Changes is the minimal update derived from a form. Nil scalar fields are
// unchanged.
type Changes struct {
	Title        *string
	Description  *string
	DurationDays *int
	BasePrice    *decimal.Decimal
	IsDraft      *bool

	OfferingAdds    []uuid.UUID
	OfferingRemoves []uuid.UUID
	// Offerings is the full desired offering list, set only when the links changed.
	Offerings []uuid.UUID

	HasNewFiles bool
}

// IsEmpty reports whether saving the changes would be a no-op.
func (c Changes) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.DurationDays == nil &&
		c.BasePrice == nil && c.IsDraft == nil &&
		len(c.OfferingAdds) == 0 && len(c.OfferingRemoves) == 0 &&
		!c.HasNewFiles
}

// Diff compares the current form against the last saved snapshot. Scalars
// are compared field by field after normalization, prices by value, and
// offerings as id sets.
func Diff(prev Snapshot, cur FormState, newFiles []File) Changes {
	var c Changes

	cur = cur.Normalized()

	if cur.Title != prev.Title {
		c.Title = &cur.Title
	}
	if cur.Description != prev.Description {
		c.Description = &cur.Description
	}
	if cur.DurationDays != prev.DurationDays {
		c.DurationDays = &cur.DurationDays
	}
	if !cur.BasePrice.Equal(prev.BasePrice) {
		c.BasePrice = &cur.BasePrice
	}
	if cur.IsDraft != prev.IsDraft {
		c.IsDraft = &cur.IsDraft
	}

	delta := offering.Reconcile(toOfferingIDs(prev.OfferingIDs), toOfferingIDs(cur.OfferingIDs))
	if !delta.IsEmpty() {
		c.OfferingAdds = fromOfferingIDs(delta.ToAdd)
		c.OfferingRemoves = fromOfferingIDs(delta.ToRemove)
		c.Offerings = fromOfferingIDs(offering.Apply(toOfferingIDs(prev.OfferingIDs), delta))
	}

	c.HasNewFiles = len(newFiles) > 0

	return c
}

func toOfferingIDs(ids []uuid.UUID) []domain.CatalogOfferingID {
	out := make([]domain.CatalogOfferingID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.CatalogOfferingID(id))
	}

	return out
}

func fromOfferingIDs(ids []domain.CatalogOfferingID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, uuid.UUID(id))
	}

	return out
}
