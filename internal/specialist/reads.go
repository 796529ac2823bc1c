package specialist

import (
	"context"
	"fmt"

	"backoffice/pkg/domain"
	"backoffice/pkg/fee"
	"backoffice/pkg/logger"
	"backoffice/pkg/serrors"
	"backoffice/pkg/storage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const slugCachePrefix = "specialist:slug:"

func (s *service) Get(ctx context.Context, id domain.SpecialistID) (*domain.Specialist, error) {
	specialist, err := s.storage.SpecialistByID(ctx, id, false)
	if err != nil {
		return nil, serrors.FromContext(err, "could not load specialist %s", id)
	}
	if specialist == nil {
		return nil, serrors.With(serrors.ErrNotFound, "specialist %s not found", id)
	}

	return loadAggregate(ctx, s.storage, specialist)
}

// GetBySlug serves published specialists only, read through the cache.
func (s *service) GetBySlug(ctx context.Context, slug string) (*domain.Specialist, error) {
	key := slugCachePrefix + slug

	var cached domain.Specialist
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn(ctx, "could not read specialist from cache", zap.String("key", key), zap.Error(err))
	}
	if found {
		return &cached, nil
	}

	specialist, err := s.storage.SpecialistBySlug(ctx, slug)
	if err != nil {
		return nil, serrors.FromContext(err, "could not load specialist %q", slug)
	}
	if specialist == nil || !specialist.IsPublished() {
		return nil, serrors.With(serrors.ErrNotFound, "specialist %q not found", slug)
	}

	full, err := loadAggregate(ctx, s.storage, specialist)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, full, s.options.CacheTTL); err != nil {
		logger.Warn(ctx, "could not cache specialist", zap.String("key", key), zap.Error(err))
	}

	return full, nil
}

func (s *service) ListPublished(ctx context.Context, query ListQuery) (Page, error) {
	cursor, err := query.pageCursor()
	if err != nil {
		return Page{}, err
	}

	limit := query.Limit
	if limit == 0 || limit > s.options.MaxPageSize {
		limit = s.options.MaxPageSize
	}

	page, err := s.storage.PublishedSpecialists(ctx, query.Search, cursor, limit)
	if err != nil {
		return Page{}, serrors.FromContext(err, "could not list specialists")
	}

	out := Page{Specialists: make([]domain.Specialist, 0, len(page.Specialists))}
	if page.NextCursor != nil {
		out.NextCursor = encodeCursor(*page.NextCursor)
	}
	if len(page.Specialists) == 0 {
		return out, nil
	}

	ids := make([]domain.SpecialistID, 0, len(page.Specialists))
	for _, sp := range page.Specialists {
		ids = append(ids, sp.ID)
	}
	media, err := s.storage.SpecialistMedia(ctx, ids...)
	if err != nil {
		return Page{}, fmt.Errorf("could not load media: %w", err)
	}
	links, err := s.storage.OfferingLinks(ctx, ids...)
	if err != nil {
		return Page{}, fmt.Errorf("could not load offering links: %w", err)
	}

	mediaBy := make(map[domain.SpecialistID][]domain.Media, len(ids))
	for _, m := range media {
		mediaBy[m.SpecialistID] = append(mediaBy[m.SpecialistID], m)
	}
	linksBy := make(map[domain.SpecialistID][]domain.OfferingLink, len(ids))
	for _, l := range links {
		linksBy[l.SpecialistID] = append(linksBy[l.SpecialistID], l)
	}

	for _, sp := range page.Specialists {
		sp.Media = mediaBy[sp.ID]
		sp.Offerings = linksBy[sp.ID]
		if sp.Media == nil {
			sp.Media = []domain.Media{}
		}
		if sp.Offerings == nil {
			sp.Offerings = []domain.OfferingLink{}
		}
		out.Specialists = append(out.Specialists, sp)
	}

	return out, nil
}

// Delete soft-deletes the specialist together with its media. Offering links
// are kept for audit and disappear with the specialist from every read.
func (s *service) Delete(ctx context.Context, id domain.SpecialistID) error {
	var slug string
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteSpecialist(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete specialist: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "specialist %s not found", id)
		}
		slug = deleted.Slug

		if err := tx.DeleteSpecialistMedia(ctx, id); err != nil {
			return fmt.Errorf("could not delete media: %w", err)
		}

		return nil
	})
	if err != nil {
		return serrors.FromContext(err, "could not delete specialist %s", id)
	}

	s.invalidate(ctx, slug)

	return nil
}

func (s *service) Catalog(ctx context.Context) ([]domain.CatalogOffering, error) {
	offerings, err := s.storage.CatalogOfferings(ctx)
	if err != nil {
		return nil, serrors.FromContext(err, "could not load catalog")
	}

	return offerings, nil
}

func (s *service) QuoteFee(ctx context.Context, amount decimal.Decimal) (fee.Quote, error) {
	if amount.IsNegative() {
		return fee.Quote{}, serrors.With(ErrValidation, "amount must not be negative")
	}

	return s.fees.Quote(ctx, s.storage, amount)
}

func (s *service) invalidate(ctx context.Context, slugs ...string) {
	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, slugCachePrefix+slug)
		}
	}
	if len(keys) == 0 {
		return
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn(ctx, "could not invalidate cached specialists", zap.Strings("keys", keys), zap.Error(err))
	}
}
