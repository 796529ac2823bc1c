package postgres_test

import (
	"testing"
	"time"

	"backoffice/pkg/domain"
	"backoffice/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreSpecialist(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := t.Context()

	t.Run("stores with defaults", func(t *testing.T) {
		t.Parallel()

		stored, err := pg.StoreSpecialist(ctx, newSpecialist("tax-filing", false))
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
		require.Equal(t, uint(1), stored.Version)
		require.Equal(t, domain.VerificationStatusPending, stored.VerificationStatus)
		require.False(t, stored.IsVerified)
		require.True(t, stored.AverageRating.IsZero())
		require.Zero(t, stored.TotalNumberOfRatings)
		require.True(t, dec("1050").Equal(stored.FinalPrice))
	})

	t.Run("duplicate slug", func(t *testing.T) {
		t.Parallel()

		_, err := pg.StoreSpecialist(ctx, newSpecialist("bank-account", true))
		require.NoError(t, err)

		_, err = pg.StoreSpecialist(ctx, newSpecialist("bank-account", true))
		require.ErrorIs(t, err, storage.ErrDuplicateSlug)
	})

	t.Run("published with zero price violates check", func(t *testing.T) {
		t.Parallel()

		s := newSpecialist("free-but-published", false)
		s.BasePrice, s.PlatformFee, s.FinalPrice = dec("0"), dec("0"), dec("0")
		_, err := pg.StoreSpecialist(ctx, s)
		require.Error(t, err)
	})
}

func TestPgSQL_SpecialistReads(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := t.Context()

	stored, err := pg.StoreSpecialist(ctx, newSpecialist("company-secretary", false))
	require.NoError(t, err)

	byID, err := pg.SpecialistByID(ctx, stored.ID, false)
	require.NoError(t, err)
	require.Equal(t, stored.Slug, byID.Slug)

	bySlug, err := pg.SpecialistBySlug(ctx, "company-secretary")
	require.NoError(t, err)
	require.Equal(t, stored.ID, bySlug.ID)

	missing, err := pg.SpecialistByID(ctx, domain.SpecialistID(uuid.New()), false)
	require.NoError(t, err)
	require.Nil(t, missing)

	taken, err := pg.SlugTaken(ctx, "company-secretary", nil)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = pg.SlugTaken(ctx, "company-secretary", &stored.ID)
	require.NoError(t, err)
	require.False(t, taken)

	deleted, err := pg.DeleteSpecialist(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	gone, err := pg.SpecialistByID(ctx, stored.ID, false)
	require.NoError(t, err)
	require.Nil(t, gone)

	again, err := pg.DeleteSpecialist(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, again)

	// soft-deleted rows keep their slug reserved
	taken, err = pg.SlugTaken(ctx, "company-secretary", nil)
	require.NoError(t, err)
	require.True(t, taken)
}

func TestPgSQL_UpdateSpecialist(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := t.Context()

	stored, err := pg.StoreSpecialist(ctx, newSpecialist("registered-office", false))
	require.NoError(t, err)

	base, fee, final := dec("2000"), dec("150"), dec("2150")
	updated, err := pg.UpdateSpecialist(ctx, stored.ID, stored.Version, storage.SpecialistChanges{
		BasePrice:   &base,
		PlatformFee: &fee,
		FinalPrice:  &final,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, stored.Version+1, updated.Version)
	require.True(t, final.Equal(updated.FinalPrice))
	require.Equal(t, stored.Title, updated.Title)
	require.False(t, updated.UpdatedAt.IsZero())

	t.Run("stale version", func(t *testing.T) {
		title := "stale"
		res, err := pg.UpdateSpecialist(ctx, stored.ID, stored.Version, storage.SpecialistChanges{Title: &title})
		require.NoError(t, err)
		require.Nil(t, res)
	})

	t.Run("slug collision", func(t *testing.T) {
		_, err := pg.StoreSpecialist(ctx, newSpecialist("taken-slug", true))
		require.NoError(t, err)

		slug := "taken-slug"
		_, err = pg.UpdateSpecialist(ctx, stored.ID, updated.Version, storage.SpecialistChanges{Slug: &slug})
		require.ErrorIs(t, err, storage.ErrDuplicateSlug)
	})
}

func TestPgSQL_PublishedSpecialists(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := t.Context()

	for _, slug := range []string{"chat-support", "compliance-calendar", "priority-filing"} {
		_, err := pg.StoreSpecialist(ctx, newSpecialist(slug, false))
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}
	_, err := pg.StoreSpecialist(ctx, newSpecialist("draft-only", true))
	require.NoError(t, err)

	page, err := pg.PublishedSpecialists(ctx, "", nil, 2)
	require.NoError(t, err)
	require.Len(t, page.Specialists, 2)
	require.Equal(t, "priority-filing", page.Specialists[0].Slug)
	require.Equal(t, "compliance-calendar", page.Specialists[1].Slug)
	require.NotNil(t, page.NextCursor)

	page, err = pg.PublishedSpecialists(ctx, "", page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page.Specialists, 1)
	require.Equal(t, "chat-support", page.Specialists[0].Slug)
	require.Nil(t, page.NextCursor)

	page, err = pg.PublishedSpecialists(ctx, "CALENDAR", nil, 10)
	require.NoError(t, err)
	require.Len(t, page.Specialists, 1)
}

func TestPgSQL_PublishedSpecialists_EqualCreatedAt(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := t.Context()

	// CURRENT_TIMESTAMP is fixed for the whole transaction, so every row shares created_at
	slugs := []string{"audit-prep", "bookkeeping", "payroll-setup", "vat-returns", "year-end"}
	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		for _, slug := range slugs {
			if _, err := tx.StoreSpecialist(ctx, newSpecialist(slug, false)); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	seen := make(map[domain.SpecialistID]struct{})
	var (
		cursor *storage.PageCursor
		pages  int
	)
	for {
		page, err := pg.PublishedSpecialists(ctx, "", cursor, 2)
		require.NoError(t, err)
		pages++
		for _, sp := range page.Specialists {
			_, dup := seen[sp.ID]
			require.False(t, dup, sp.Slug)
			seen[sp.ID] = struct{}{}
			require.Equal(t, page.Specialists[0].CreatedAt, sp.CreatedAt)
		}
		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}

	require.Len(t, seen, len(slugs))
	require.Equal(t, 3, pages)
}

func TestPgSQL_MediaAndLinks(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := t.Context()

	stored, err := pg.StoreSpecialist(ctx, newSpecialist("courier-handling", false))
	require.NoError(t, err)

	next, err := pg.NextDisplayOrder(ctx, stored.ID)
	require.NoError(t, err)
	require.Zero(t, next)

	media, err := pg.StoreMedia(ctx,
		domain.Media{SpecialistID: stored.ID, Key: "a.png", Size: 10, MimeType: "image/png", DisplayOrder: 0},
		domain.Media{SpecialistID: stored.ID, Key: "b.mp4", Size: 20, MimeType: "video/mp4", DisplayOrder: 1},
	)
	require.NoError(t, err)
	require.Len(t, media, 2)
	require.Equal(t, domain.MediaKindVideo, media[1].Kind)

	next, err = pg.NextDisplayOrder(ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, 2, next)

	require.NoError(t, pg.DeleteSpecialistMedia(ctx, stored.ID))
	live, err := pg.SpecialistMedia(ctx, stored.ID)
	require.NoError(t, err)
	require.Empty(t, live)

	// positions of deleted media are not reused
	next, err = pg.NextDisplayOrder(ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, 2, next)

	catalog := seedCatalog(t, pg, 3)
	require.NoError(t, pg.AddOfferingLinks(ctx, stored.ID, catalog[0].ID, catalog[1].ID))
	require.NoError(t, pg.AddOfferingLinks(ctx, stored.ID, catalog[1].ID))
	require.NoError(t, pg.RemoveOfferingLinks(ctx, stored.ID, catalog[0].ID))

	links, err := pg.OfferingLinks(ctx, stored.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, catalog[1].ID, links[0].OfferingID)
	require.Equal(t, catalog[1].Title, links[0].Offering.Title)

	unknown := domain.CatalogOfferingID(uuid.New())
	err = pg.AddOfferingLinks(ctx, stored.ID, unknown)
	require.ErrorIs(t, err, storage.ErrUnknownOffering)

	missing, err := pg.MissingCatalogOfferings(ctx, catalog[2].ID, unknown)
	require.NoError(t, err)
	require.Equal(t, []domain.CatalogOfferingID{unknown}, missing)
}

func TestPgSQL_FeeTiers(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := t.Context()

	maxLow := dec("1000")
	_, err := pg.StoreFeeTiers(ctx,
		domain.FeeTier{Name: domain.FeeTierMedium, MinValue: dec("1001"), Percentage: dec("7.5")},
		domain.FeeTier{Name: domain.FeeTierLow, MinValue: dec("0"), MaxValue: &maxLow, Percentage: dec("5")},
	)
	require.NoError(t, err)

	tiers, err := pg.FeeTiers(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	require.Equal(t, domain.FeeTierLow, tiers[0].Name)
	require.True(t, maxLow.Equal(*tiers[0].MaxValue))
	require.Nil(t, tiers[1].MaxValue)
	require.True(t, dec("7.5").Equal(tiers[1].Percentage))
}
