package specialist

import (
	"context"
	"errors"
	"fmt"

	"backoffice/pkg/domain"
	"backoffice/pkg/offering"
	"backoffice/pkg/serrors"
	"backoffice/pkg/storage"

	"github.com/shopspring/decimal"
)

// Update merges the supplied fields onto the stored specialist, reconciles
// its offering links when a list is given and appends new media. The fee is
// recomputed only when the base price changes or the specialist gets
// published. A patch changing nothing leaves the row untouched.
func (s *service) Update(ctx context.Context, id domain.SpecialistID, patch Patch) (*domain.Specialist, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *domain.Specialist
		oldSlug string
	)
	err := s.write(ctx, "update", func(ctx context.Context, tx storage.AllStorage, up *uploader) error {
		current, err := tx.SpecialistByID(ctx, id, true)
		if err != nil {
			return fmt.Errorf("could not load specialist: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "specialist %s not found", id)
		}
		if patch.ExpectedVersion != nil && *patch.ExpectedVersion != current.Version {
			return serrors.With(ErrVersionConflict,
				"specialist %s is at version %d, expected %d", id, current.Version, *patch.ExpectedVersion)
		}
		oldSlug = current.Slug

		changes, err := s.merge(ctx, tx, current, patch)
		if err != nil {
			return err
		}

		relationsChanged := false
		if patch.OfferingIDs != nil {
			changed, err := reconcileOfferings(ctx, tx, id, *patch.OfferingIDs)
			if err != nil {
				return err
			}
			relationsChanged = changed
		}

		if len(patch.Files) > 0 {
			next, err := tx.NextDisplayOrder(ctx, id)
			if err != nil {
				return fmt.Errorf("could not read display order: %w", err)
			}
			if err := attachMedia(ctx, tx, up, id, patch.Files, next); err != nil {
				return err
			}
			relationsChanged = true
		}

		stored := current
		if !changes.IsEmpty() || relationsChanged {
			stored, err = tx.UpdateSpecialist(ctx, id, current.Version, changes)
			if err != nil {
				if errors.Is(err, storage.ErrDuplicateSlug) {
					slug := current.Slug
					if changes.Slug != nil {
						slug = *changes.Slug
					}

					return slugDuplicate(slug, err)
				}

				return fmt.Errorf("could not update specialist: %w", err)
			}
			if stored == nil {
				return serrors.With(ErrVersionConflict, "specialist %s was modified concurrently", id)
			}
		}

		updated, err = loadAggregate(ctx, tx, stored)

		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, oldSlug, updated.Slug)

	return updated, nil
}

// merge turns the patch into the set of columns that actually change,
// pricing included.
func (s *service) merge(ctx context.Context,
	tx storage.AllStorage,
	current *domain.Specialist,
	patch Patch) (storage.SpecialistChanges, error) {
	var changes storage.SpecialistChanges

	if patch.Title != nil && *patch.Title != current.Title {
		changes.Title = patch.Title

		slug := Slugify(*patch.Title)
		if slug != current.Slug {
			taken, err := tx.SlugTaken(ctx, slug, &current.ID)
			if err != nil {
				return changes, fmt.Errorf("could not check slug: %w", err)
			}
			if taken {
				return changes, slugDuplicate(slug, nil)
			}
			changes.Slug = &slug
		}
	}
	if patch.Description != nil && *patch.Description != current.Description {
		changes.Description = patch.Description
	}
	if patch.DurationDays != nil && *patch.DurationDays != current.DurationDays {
		changes.DurationDays = patch.DurationDays
	}

	base := current.BasePrice
	baseChanged := patch.BasePrice != nil && !patch.BasePrice.Equal(current.BasePrice)
	if baseChanged {
		base = *patch.BasePrice
		changes.BasePrice = &base
	}

	from := StateOf(current.IsDraft)
	to := from
	if patch.IsDraft != nil {
		to = StateOf(*patch.IsDraft)
		if to != from {
			changes.IsDraft = patch.IsDraft
		}
	}

	switch PricingFor(from, to, baseChanged) {
	case PricingResolve:
		q, err := s.quote(ctx, tx, base)
		if err != nil {
			return changes, err
		}
		if !q.Fee.Equal(current.PlatformFee) || !q.FinalAmount.Equal(current.FinalPrice) {
			changes.PlatformFee = &q.Fee
			changes.FinalPrice = &q.FinalAmount
		}
	case PricingReset:
		zero := decimal.Zero
		changes.PlatformFee = &zero
		changes.FinalPrice = &base
	case PricingKeep:
	}

	return changes, nil
}

// reconcileOfferings applies the difference between the stored links and
// the desired ones and reports whether anything changed.
func reconcileOfferings(ctx context.Context,
	tx storage.AllStorage,
	id domain.SpecialistID,
	desired []domain.CatalogOfferingID) (bool, error) {
	links, err := tx.OfferingLinks(ctx, id)
	if err != nil {
		return false, fmt.Errorf("could not load offering links: %w", err)
	}
	current := make([]domain.CatalogOfferingID, 0, len(links))
	for _, link := range links {
		current = append(current, link.OfferingID)
	}

	delta := offering.Reconcile(current, desired)
	if delta.IsEmpty() {
		return false, nil
	}

	if len(delta.ToRemove) > 0 {
		if err := tx.RemoveOfferingLinks(ctx, id, delta.ToRemove...); err != nil {
			return false, fmt.Errorf("could not unlink offerings: %w", err)
		}
	}
	if err := linkOfferings(ctx, tx, id, delta.ToAdd); err != nil {
		return false, err
	}

	return true, nil
}
