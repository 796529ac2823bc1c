package v1handler

import (
	"time"

	"backoffice/internal/specialist"
	"backoffice/pkg/domain"
	"backoffice/pkg/fee"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money is rendered as a string with exactly two decimals.
func encodeMoney(e *jx.Encoder, d decimal.Decimal) { e.Str(d.StringFixed(2)) }

func encodeTime(e *jx.Encoder, t time.Time) { e.Str(t.UTC().Format(time.RFC3339Nano)) }

func EncodeSpecialist(e *jx.Encoder, s *domain.Specialist) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(s.ID.String()) })
		e.Field("slug", func(e *jx.Encoder) { e.Str(s.Slug) })
		e.Field("title", func(e *jx.Encoder) { e.Str(s.Title) })
		e.Field("description", func(e *jx.Encoder) { e.Str(s.Description) })
		e.Field("durationDays", func(e *jx.Encoder) { e.Int(s.DurationDays) })
		e.Field("basePrice", func(e *jx.Encoder) { encodeMoney(e, s.BasePrice) })
		e.Field("platformFee", func(e *jx.Encoder) { encodeMoney(e, s.PlatformFee) })
		e.Field("finalPrice", func(e *jx.Encoder) { encodeMoney(e, s.FinalPrice) })
		e.Field("isDraft", func(e *jx.Encoder) { e.Bool(s.IsDraft) })
		e.Field("isVerified", func(e *jx.Encoder) { e.Bool(s.IsVerified) })
		e.Field("verificationStatus", func(e *jx.Encoder) { e.Str(string(s.VerificationStatus)) })
		e.Field("averageRating", func(e *jx.Encoder) { e.Str(s.AverageRating.StringFixed(2)) })
		e.Field("totalNumberOfRatings", func(e *jx.Encoder) { e.Int(s.TotalNumberOfRatings) })
		e.Field("version", func(e *jx.Encoder) { e.UInt(s.Version) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, s.CreatedAt) })
		e.Field("updatedAt", func(e *jx.Encoder) { encodeTime(e, s.UpdatedAt) })
		e.Field("media", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range s.Media {
					encodeMedia(e, &s.Media[i])
				}
			})
		})
		e.Field("offerings", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range s.Offerings {
					encodeOfferingLink(e, &s.Offerings[i])
				}
			})
		})
	})
}

func encodeMedia(e *jx.Encoder, m *domain.Media) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(uuid.UUID(m.ID).String()) })
		e.Field("key", func(e *jx.Encoder) { e.Str(m.Key) })
		e.Field("size", func(e *jx.Encoder) { e.Int64(m.Size) })
		e.Field("mimeType", func(e *jx.Encoder) { e.Str(m.MimeType) })
		e.Field("kind", func(e *jx.Encoder) { e.Str(string(m.Kind)) })
		e.Field("displayOrder", func(e *jx.Encoder) { e.Int(m.DisplayOrder) })
		e.Field("uploadedAt", func(e *jx.Encoder) { encodeTime(e, m.UploadedAt) })
	})
}

func encodeOfferingLink(e *jx.Encoder, l *domain.OfferingLink) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("offeringId", func(e *jx.Encoder) { e.Str(l.OfferingID.String()) })
		e.Field("linkedAt", func(e *jx.Encoder) { encodeTime(e, l.CreatedAt) })
		if l.Offering != nil {
			e.Field("title", func(e *jx.Encoder) { e.Str(l.Offering.Title) })
			e.Field("imageKey", func(e *jx.Encoder) { e.Str(l.Offering.ImageKey) })
		}
	})
}

func encodeCatalogOffering(e *jx.Encoder, o *domain.CatalogOffering) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(o.ID.String()) })
		e.Field("title", func(e *jx.Encoder) { e.Str(o.Title) })
		e.Field("description", func(e *jx.Encoder) { e.Str(o.Description) })
		e.Field("imageKey", func(e *jx.Encoder) { e.Str(o.ImageKey) })
		e.Field("bucketName", func(e *jx.Encoder) { e.Str(o.BucketName) })
	})
}

func encodePage(e *jx.Encoder, p *specialist.Page) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range p.Specialists {
					EncodeSpecialist(e, &p.Specialists[i])
				}
			})
		})
		e.Field("nextCursor", func(e *jx.Encoder) {
			if p.NextCursor == "" {
				e.Null()

				return
			}
			e.Str(p.NextCursor)
		})
	})
}

func encodeQuote(e *jx.Encoder, q *fee.Quote) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("tier", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("name", func(e *jx.Encoder) { e.Str(string(q.Tier.Name)) })
				e.Field("minValue", func(e *jx.Encoder) { encodeMoney(e, q.Tier.MinValue) })
				e.Field("maxValue", func(e *jx.Encoder) {
					if q.Tier.MaxValue == nil {
						e.Null()

						return
					}
					encodeMoney(e, *q.Tier.MaxValue)
				})
				e.Field("percentage", func(e *jx.Encoder) { e.Str(q.Tier.Percentage.String()) })
			})
		})
		e.Field("fee", func(e *jx.Encoder) { encodeMoney(e, q.Fee) })
		e.Field("finalAmount", func(e *jx.Encoder) { encodeMoney(e, q.FinalAmount) })
	})
}
