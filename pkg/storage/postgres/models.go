package postgres

import (
	"database/sql"
	"time"

	"backoffice/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PgSpecialist struct {
	ID   uuid.UUID `db:"id"   goqu:"skipinsert"`
	Slug string    `db:"slug"`

	Title        string `db:"title"`
	Description  string `db:"description"`
	DurationDays int    `db:"duration_days"`

	BasePrice   decimal.Decimal `db:"base_price"`
	PlatformFee decimal.Decimal `db:"platform_fee"`
	FinalPrice  decimal.Decimal `db:"final_price"`

	IsDraft            bool   `db:"is_draft"`
	IsVerified         bool   `db:"is_verified"`
	VerificationStatus string `db:"verification_status"`

	AverageRating        decimal.Decimal `db:"average_rating"          goqu:"skipinsert"`
	TotalNumberOfRatings int             `db:"total_number_of_ratings" goqu:"skipinsert"`
	Version              uint            `db:"version"                 goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgSpecialist) ToDomain() *domain.Specialist {
	return &domain.Specialist{
		ID:                   domain.SpecialistID(p.ID),
		Slug:                 p.Slug,
		Title:                p.Title,
		Description:          p.Description,
		DurationDays:         p.DurationDays,
		BasePrice:            p.BasePrice,
		PlatformFee:          p.PlatformFee,
		FinalPrice:           p.FinalPrice,
		IsDraft:              p.IsDraft,
		IsVerified:           p.IsVerified,
		VerificationStatus:   domain.VerificationStatus(p.VerificationStatus),
		AverageRating:        p.AverageRating,
		TotalNumberOfRatings: p.TotalNumberOfRatings,
		Version:              p.Version,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
		DeletedAt:            p.DeletedAt.Time,
	}
}

func (p *PgSpecialist) FromDomain(s domain.Specialist) {
	status := s.VerificationStatus
	if status == "" {
		status = domain.VerificationStatusPending
	}

	*p = PgSpecialist{
		ID:                 uuid.UUID(s.ID),
		Slug:               s.Slug,
		Title:              s.Title,
		Description:        s.Description,
		DurationDays:       s.DurationDays,
		BasePrice:          s.BasePrice,
		PlatformFee:        s.PlatformFee,
		FinalPrice:         s.FinalPrice,
		IsDraft:            s.IsDraft,
		IsVerified:         s.IsVerified,
		VerificationStatus: string(status),
	}
}

type PgMedia struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	SpecialistID uuid.UUID `db:"specialist_id"`

	Key          string `db:"key"`
	Size         int64  `db:"size"`
	MimeType     string `db:"mime_type"`
	Kind         string `db:"kind"`
	DisplayOrder int    `db:"display_order"`

	UploadedAt time.Time    `db:"uploaded_at" goqu:"skipinsert"`
	CreatedAt  time.Time    `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt  sql.NullTime `db:"updated_at"  goqu:"skipinsert"`
	DeletedAt  sql.NullTime `db:"deleted_at"  goqu:"skipinsert"`
}

func (p *PgMedia) ToDomain() domain.Media {
	return domain.Media{
		ID:           domain.MediaID(p.ID),
		SpecialistID: domain.SpecialistID(p.SpecialistID),
		Key:          p.Key,
		Size:         p.Size,
		MimeType:     p.MimeType,
		Kind:         domain.MediaKind(p.Kind),
		DisplayOrder: p.DisplayOrder,
		UploadedAt:   p.UploadedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
		DeletedAt:    p.DeletedAt.Time,
	}
}

func (p *PgMedia) FromDomain(m domain.Media) {
	kind := m.Kind
	if kind == "" {
		kind = domain.MediaKindOf(m.MimeType)
	}

	*p = PgMedia{
		SpecialistID: uuid.UUID(m.SpecialistID),
		Key:          m.Key,
		Size:         m.Size,
		MimeType:     m.MimeType,
		Kind:         string(kind),
		DisplayOrder: m.DisplayOrder,
	}
}

// PgOfferingLink is a link row joined with its catalog offering.
type PgOfferingLink struct {
	SpecialistID uuid.UUID    `db:"specialist_id"`
	OfferingID   uuid.UUID    `db:"offering_id"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    sql.NullTime `db:"updated_at"`

	Title       string         `db:"title"`
	Description string         `db:"description"`
	ImageKey    sql.NullString `db:"image_key"`
	BucketName  string         `db:"bucket_name"`
}

func (p *PgOfferingLink) ToDomain() domain.OfferingLink {
	return domain.OfferingLink{
		SpecialistID: domain.SpecialistID(p.SpecialistID),
		OfferingID:   domain.CatalogOfferingID(p.OfferingID),
		Offering: &domain.CatalogOffering{
			ID:          domain.CatalogOfferingID(p.OfferingID),
			Title:       p.Title,
			Description: p.Description,
			ImageKey:    p.ImageKey.String,
			BucketName:  p.BucketName,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

type PgCatalogOffering struct {
	ID          uuid.UUID      `db:"id"          goqu:"skipinsert"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	ImageKey    sql.NullString `db:"image_key"`
	BucketName  string         `db:"bucket_name"`
	CreatedAt   time.Time      `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt   sql.NullTime   `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgCatalogOffering) ToDomain() domain.CatalogOffering {
	return domain.CatalogOffering{
		ID:          domain.CatalogOfferingID(p.ID),
		Title:       p.Title,
		Description: p.Description,
		ImageKey:    p.ImageKey.String,
		BucketName:  p.BucketName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgCatalogOffering) FromDomain(o domain.CatalogOffering) {
	*p = PgCatalogOffering{
		Title:       o.Title,
		Description: o.Description,
		ImageKey:    sql.NullString{String: o.ImageKey, Valid: o.ImageKey != ""},
		BucketName:  o.BucketName,
	}
}

type PgFeeTier struct {
	ID         uuid.UUID           `db:"id"         goqu:"skipinsert"`
	Name       string              `db:"name"`
	MinValue   decimal.Decimal     `db:"min_value"`
	MaxValue   decimal.NullDecimal `db:"max_value"`
	Percentage decimal.Decimal     `db:"percentage"`
	CreatedAt  time.Time           `db:"created_at" goqu:"skipinsert"`
	UpdatedAt  sql.NullTime        `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgFeeTier) ToDomain() domain.FeeTier {
	tier := domain.FeeTier{
		ID:         domain.FeeTierID(p.ID),
		Name:       domain.FeeTierName(p.Name),
		MinValue:   p.MinValue,
		Percentage: p.Percentage,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
	}
	if p.MaxValue.Valid {
		maxValue := p.MaxValue.Decimal
		tier.MaxValue = &maxValue
	}

	return tier
}

func (p *PgFeeTier) FromDomain(t domain.FeeTier) {
	*p = PgFeeTier{
		Name:       string(t.Name),
		MinValue:   t.MinValue,
		Percentage: t.Percentage,
	}
	if t.MaxValue != nil {
		p.MaxValue = decimal.NullDecimal{Decimal: *t.MaxValue, Valid: true}
	}
}

// TODO: use https://github.com/jmattheis/goverter for converting

func pgSpecialistsToDomain(rows []PgSpecialist) []domain.Specialist {
	out := make([]domain.Specialist, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgMediaToDomain(rows []PgMedia) []domain.Media {
	out := make([]domain.Media, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
