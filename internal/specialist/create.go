package specialist

import (
	"context"
	"errors"
	"fmt"

	"backoffice/pkg/domain"
	"backoffice/pkg/storage"

	"github.com/shopspring/decimal"
)

// Create stores a specialist, its offering links and its media atomically.
// Published specialists get their fee from the schedule; drafts carry none.
func (s *service) Create(ctx context.Context, in CreateInput) (*domain.Specialist, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	slug := Slugify(in.Title)
	offerings := uniqueOfferings(in.OfferingIDs)

	var created *domain.Specialist
	err := s.write(ctx, "create", func(ctx context.Context, tx storage.AllStorage, up *uploader) error {
		specialist := domain.Specialist{
			Slug:               slug,
			Title:              in.Title,
			Description:        in.Description,
			DurationDays:       in.DurationDays,
			BasePrice:          in.BasePrice,
			PlatformFee:        decimal.Zero,
			FinalPrice:         in.BasePrice,
			IsDraft:            in.IsDraft,
			VerificationStatus: domain.VerificationStatusPending,
			AverageRating:      decimal.Zero,
		}
		if !in.IsDraft {
			q, err := s.quote(ctx, tx, in.BasePrice)
			if err != nil {
				return err
			}
			specialist.PlatformFee = q.Fee
			specialist.FinalPrice = q.FinalAmount
		}

		taken, err := tx.SlugTaken(ctx, slug, nil)
		if err != nil {
			return fmt.Errorf("could not check slug: %w", err)
		}
		if taken {
			return slugDuplicate(slug, nil)
		}

		stored, err := tx.StoreSpecialist(ctx, specialist)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateSlug) {
				return slugDuplicate(slug, err)
			}

			return fmt.Errorf("could not store specialist: %w", err)
		}

		if err := linkOfferings(ctx, tx, stored.ID, offerings); err != nil {
			return err
		}
		if err := attachMedia(ctx, tx, up, stored.ID, in.Files, 0); err != nil {
			return err
		}

		created, err = loadAggregate(ctx, tx, stored)

		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
