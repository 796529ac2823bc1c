package specialist_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"backoffice/internal/specialist"
	mockcache "backoffice/pkg/cache/mock"
	"backoffice/pkg/domain"
	"backoffice/pkg/fee"
	"backoffice/pkg/objectstore"
	"backoffice/pkg/objectstore/memory"
	mockobjectstore "backoffice/pkg/objectstore/mock"
	"backoffice/pkg/serrors"
	"backoffice/pkg/storage"
	mockstorage "backoffice/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl  *gomock.Controller
	st    *mockstorage.MockStorage
	cache *mockcache.MockCache
	svc   specialist.Service
}

func newFixture(t *testing.T, store objectstore.Store, options specialist.Options) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c := mockcache.NewMockCache(ctrl)
	if store == nil {
		store = memory.New("specialists/")
	}
	if options.TxTimeout == 0 {
		options.TxTimeout = 5 * time.Second
	}
	if options.CacheTTL == 0 {
		options.CacheTTL = time.Minute
	}

	svc, err := specialist.New(st, store, c, options)
	require.NoError(t, err)

	return &fixture{ctrl: ctrl, st: st, cache: c, svc: svc}
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func (f *fixture) expectWithTx(t *testing.T, fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	f.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func tiers() []domain.FeeTier {
	return []domain.FeeTier{
		{Name: domain.FeeTierLow, MinValue: dec("0"), MaxValue: ptr(dec("1000")), Percentage: dec("5")},
		{Name: domain.FeeTierMedium, MinValue: dec("1001"), MaxValue: ptr(dec("5000")), Percentage: dec("7.5")},
	}
}

func published(id domain.SpecialistID) *domain.Specialist {
	return &domain.Specialist{
		ID:                 id,
		Slug:               "tax-advisory",
		Title:              "Tax Advisory",
		Description:        "Quarterly filings",
		DurationDays:       7,
		BasePrice:          dec("1000"),
		PlatformFee:        dec("50"),
		FinalPrice:         dec("1050"),
		VerificationStatus: domain.VerificationStatusPending,
		Version:            1,
	}
}

func expectLoad(tx *mockstorage.MockAllStorage, id domain.SpecialistID) {
	tx.EXPECT().SpecialistMedia(gomock.Any(), id).Return(nil, nil)
	tx.EXPECT().OfferingLinks(gomock.Any(), id).Return(nil, nil)
}

func TestService_Create_Published(t *testing.T) {
	store := memory.New("specialists/")
	f := newFixture(t, store, specialist.Options{UploadConcurrency: 2})

	id := domain.SpecialistID(uuid.New())
	offeringID := domain.CatalogOfferingID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().FeeTiers(gomock.Any()).Return(tiers(), nil)
		tx.EXPECT().SlugTaken(gomock.Any(), "tax-advisory", gomock.Nil()).Return(false, nil)
		tx.EXPECT().StoreSpecialist(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s domain.Specialist) (*domain.Specialist, error) {
				require.True(t, dec("50").Equal(s.PlatformFee))
				require.True(t, dec("1050").Equal(s.FinalPrice))
				require.True(t, s.AverageRating.IsZero())
				require.Zero(t, s.TotalNumberOfRatings)
				require.False(t, s.IsVerified)
				s.ID = id
				s.Version = 1

				return &s, nil
			})
		tx.EXPECT().MissingCatalogOfferings(gomock.Any(), offeringID).Return(nil, nil)
		tx.EXPECT().AddOfferingLinks(gomock.Any(), id, offeringID).Return(nil)
		tx.EXPECT().StoreMedia(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, media ...domain.Media) ([]domain.Media, error) {
				require.Len(t, media, 3)
				for i, m := range media {
					require.Equal(t, i, m.DisplayOrder)
					require.Equal(t, id, m.SpecialistID)
				}
				require.Equal(t, "image/png", media[0].MimeType)
				require.Equal(t, "video/mp4", media[1].MimeType)
				require.Equal(t, domain.MediaKindVideo, media[1].Kind)
				require.Equal(t, int64(3), media[2].Size)

				return media, nil
			})
		tx.EXPECT().SpecialistMedia(gomock.Any(), id).Return([]domain.Media{{SpecialistID: id}}, nil)
		tx.EXPECT().OfferingLinks(gomock.Any(), id).Return([]domain.OfferingLink{{SpecialistID: id, OfferingID: offeringID}}, nil)
	})

	created, err := f.svc.Create(context.Background(), specialist.CreateInput{
		Title:        "Tax Advisory",
		DurationDays: 7,
		BasePrice:    dec("1000"),
		OfferingIDs:  []domain.CatalogOfferingID{offeringID, offeringID},
		Files: []specialist.Upload{
			{Filename: "a.png", ContentType: "image/png", Data: []byte("a")},
			{Filename: "b.mp4", ContentType: "video/mp4", Data: []byte("bb")},
			{Filename: "c.jpg", ContentType: "image/jpeg", Data: []byte("ccc")},
		},
	})
	require.NoError(t, err)
	require.Equal(t, id, created.ID)
	require.Equal(t, "tax-advisory", created.Slug)
	require.Len(t, created.Media, 1)
	require.Len(t, created.Offerings, 1)
	require.Equal(t, 3, store.Len())
}

func TestService_Create_DisplayOrderFollowsInputWhenUploadsFinishOutOfOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockobjectstore.NewMockStore(ctrl)
	f := newFixture(t, store, specialist.Options{UploadConcurrency: 4})
	id := domain.SpecialistID(uuid.New())

	// the first file is held back until every other upload has completed
	var (
		others   sync.WaitGroup
		mu       sync.Mutex
		finished []string
	)
	others.Add(3)
	released := make(chan struct{})
	go func() {
		others.Wait()
		close(released)
	}()

	store.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png").Times(4).DoAndReturn(
		func(ctx context.Context, data []byte, _ string) (string, error) {
			if string(data) == "file-0" {
				select {
				case <-released:
				case <-ctx.Done():
					return "", ctx.Err()
				}
			} else {
				defer others.Done()
			}

			mu.Lock()
			finished = append(finished, string(data))
			mu.Unlock()

			return "specialists/" + string(data), nil
		})

	var stored []domain.Media
	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SlugTaken(gomock.Any(), "tax-advisory", gomock.Nil()).Return(false, nil)
		tx.EXPECT().StoreSpecialist(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s domain.Specialist) (*domain.Specialist, error) {
				s.ID = id

				return &s, nil
			})
		tx.EXPECT().StoreMedia(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, media ...domain.Media) ([]domain.Media, error) {
				stored = media

				return media, nil
			})
		expectLoad(tx, id)
	})

	files := make([]specialist.Upload, 4)
	for i := range files {
		files[i] = specialist.Upload{
			Filename:    fmt.Sprintf("file-%d.png", i),
			ContentType: "image/png",
			Data:        []byte(fmt.Sprintf("file-%d", i)),
		}
	}

	_, err := f.svc.Create(context.Background(), specialist.CreateInput{
		Title: "Tax Advisory", DurationDays: 7, IsDraft: true, Files: files,
	})
	require.NoError(t, err)

	require.Len(t, finished, 4)
	require.Equal(t, "file-0", finished[3])
	require.Len(t, stored, 4)
	for i, m := range stored {
		require.Equal(t, i, m.DisplayOrder)
		require.Equal(t, fmt.Sprintf("specialists/file-%d", i), m.Key)
	}
}

func TestService_Create_Draft(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SlugTaken(gomock.Any(), "tax-advisory", gomock.Nil()).Return(false, nil)
		tx.EXPECT().StoreSpecialist(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s domain.Specialist) (*domain.Specialist, error) {
				require.True(t, s.IsDraft)
				require.True(t, s.PlatformFee.IsZero())
				require.True(t, s.BasePrice.Equal(s.FinalPrice))
				s.ID = id

				return &s, nil
			})
		expectLoad(tx, id)
	})

	created, err := f.svc.Create(context.Background(), specialist.CreateInput{
		Title:        "Tax Advisory",
		DurationDays: 7,
		BasePrice:    dec("0"),
		IsDraft:      true,
	})
	require.NoError(t, err)
	require.NotNil(t, created.Media)
	require.NotNil(t, created.Offerings)
}

func TestService_Create_PricingFailures(t *testing.T) {
	tests := map[string]struct {
		base    string
		tiers   bool
		noTier  bool
		message string
	}{
		"zero base price":   {base: "0", message: "greater than zero"},
		"amount in no tier": {base: "6000", tiers: true, noTier: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, nil, specialist.Options{})
			f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
				if tc.tiers {
					tx.EXPECT().FeeTiers(gomock.Any()).Return(tiers(), nil)
				}
			})

			_, err := f.svc.Create(context.Background(), specialist.CreateInput{
				Title:        "Tax Advisory",
				DurationDays: 7,
				BasePrice:    dec(tc.base),
			})
			require.ErrorIs(t, err, specialist.ErrValidation)
			require.Equal(t, tc.noTier, errors.Is(err, fee.ErrNoTierConfigured))
			require.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestService_Create_InvalidInput(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})

	_, err := f.svc.Create(context.Background(), specialist.CreateInput{Title: "", DurationDays: 7})
	require.ErrorIs(t, err, specialist.ErrValidation)

	_, err = f.svc.Create(context.Background(), specialist.CreateInput{Title: "Tax", DurationDays: 0})
	require.ErrorIs(t, err, specialist.ErrValidation)
}

func TestService_Create_DuplicateSlug(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SlugTaken(gomock.Any(), "tax-advisory", gomock.Nil()).Return(true, nil)
	})

	_, err := f.svc.Create(context.Background(), specialist.CreateInput{
		Title: "Tax Advisory", DurationDays: 7, BasePrice: dec("10"), IsDraft: true,
	})
	require.ErrorIs(t, err, specialist.ErrDuplicateSlug)
}

func TestService_Create_DuplicateSlugRace(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SlugTaken(gomock.Any(), "tax-advisory", gomock.Nil()).Return(false, nil)
		tx.EXPECT().StoreSpecialist(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateSlug)
	})

	_, err := f.svc.Create(context.Background(), specialist.CreateInput{
		Title: "Tax Advisory", DurationDays: 7, IsDraft: true,
	})
	require.ErrorIs(t, err, specialist.ErrDuplicateSlug)
}

func TestService_Create_InvalidOffering(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())
	missing := domain.CatalogOfferingID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SlugTaken(gomock.Any(), "tax-advisory", gomock.Nil()).Return(false, nil)
		tx.EXPECT().StoreSpecialist(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s domain.Specialist) (*domain.Specialist, error) {
				s.ID = id

				return &s, nil
			})
		tx.EXPECT().MissingCatalogOfferings(gomock.Any(), missing).Return([]domain.CatalogOfferingID{missing}, nil)
	})

	_, err := f.svc.Create(context.Background(), specialist.CreateInput{
		Title: "Tax Advisory", DurationDays: 7, IsDraft: true,
		OfferingIDs: []domain.CatalogOfferingID{missing},
	})
	require.ErrorIs(t, err, specialist.ErrInvalidOfferingReference)
}

func TestService_Create_UploadFailureSweepsOrphans(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockobjectstore.NewMockStore(ctrl)
	f := newFixture(t, store, specialist.Options{UploadConcurrency: 1, SweepOrphans: true})
	id := domain.SpecialistID(uuid.New())

	store.EXPECT().Put(gomock.Any(), []byte("a"), "image/png").Return("specialists/a.png", nil)
	store.EXPECT().Put(gomock.Any(), []byte("b"), "image/jpeg").Return("", errors.New("connection reset"))

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SlugTaken(gomock.Any(), "tax-advisory", gomock.Nil()).Return(false, nil)
		tx.EXPECT().StoreSpecialist(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s domain.Specialist) (*domain.Specialist, error) {
				s.ID = id

				return &s, nil
			})
	})
	f.st.EXPECT().AddJob(gomock.Any(), specialist.SweepOrphansArgs{Keys: []string{"specialists/a.png"}}, gomock.Nil()).
		Return(true, nil)

	_, err := f.svc.Create(context.Background(), specialist.CreateInput{
		Title: "Tax Advisory", DurationDays: 7, IsDraft: true,
		Files: []specialist.Upload{
			{Filename: "a.png", ContentType: "image/png", Data: []byte("a")},
			{Filename: "b.jpg", ContentType: "image/jpeg", Data: []byte("b")},
		},
	})
	require.ErrorIs(t, err, objectstore.ErrStoreUnavailable)
}

func TestService_Create_TransactionTimeout(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{TxTimeout: 20 * time.Millisecond})

	f.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ func(storage.AllStorage) error) error {
			<-ctx.Done()

			return ctx.Err()
		})

	_, err := f.svc.Create(context.Background(), specialist.CreateInput{
		Title: "Tax Advisory", DurationDays: 7, IsDraft: true,
	})
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestService_Create_DetachedFromCallerCancellation(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ func(storage.AllStorage) error) error {
			require.NoError(t, ctx.Err())

			return serrors.With(specialist.ErrDuplicateSlug, "taken")
		})

	_, err := f.svc.Create(ctx, specialist.CreateInput{Title: "Tax Advisory", DurationDays: 7, IsDraft: true})
	require.ErrorIs(t, err, specialist.ErrDuplicateSlug)
}

func TestService_Update_BasePriceRecomputesFee(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(published(id), nil)
		tx.EXPECT().FeeTiers(gomock.Any()).Return(tiers(), nil)
		tx.EXPECT().UpdateSpecialist(gomock.Any(), id, uint(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.SpecialistID, _ uint, c storage.SpecialistChanges) (*domain.Specialist, error) {
				require.Nil(t, c.Title)
				require.Nil(t, c.Slug)
				require.Nil(t, c.IsDraft)
				require.True(t, dec("2000").Equal(*c.BasePrice))
				require.True(t, dec("150").Equal(*c.PlatformFee))
				require.True(t, dec("2150").Equal(*c.FinalPrice))

				s := published(id)
				s.BasePrice, s.PlatformFee, s.FinalPrice = *c.BasePrice, *c.PlatformFee, *c.FinalPrice
				s.Version = 2

				return s, nil
			})
		expectLoad(tx, id)
	})
	f.cache.EXPECT().Delete(gomock.Any(), "specialist:slug:tax-advisory", "specialist:slug:tax-advisory").Return(nil)

	updated, err := f.svc.Update(context.Background(), id, specialist.Patch{BasePrice: ptr(dec("2000"))})
	require.NoError(t, err)
	require.Equal(t, uint(2), updated.Version)
	require.Equal(t, "2150.00", updated.FinalPrice.StringFixed(2))
}

func TestService_Update_DescriptionKeepsFee(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(published(id), nil)
		tx.EXPECT().UpdateSpecialist(gomock.Any(), id, uint(1), storage.SpecialistChanges{
			Description: ptr("Monthly filings"),
		}).Return(published(id), nil)
		expectLoad(tx, id)
	})
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Update(context.Background(), id, specialist.Patch{
		Description: ptr("Monthly filings"),
		BasePrice:   ptr(dec("1000.00")),
	})
	require.NoError(t, err)
}

func TestService_Update_NoChangesWritesNothing(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(published(id), nil)
		expectLoad(tx, id)
	})
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.svc.Update(context.Background(), id, specialist.Patch{
		Title:     ptr("Tax Advisory"),
		BasePrice: ptr(dec("1000")),
		IsDraft:   ptr(false),
	})
	require.NoError(t, err)
	require.Equal(t, uint(1), updated.Version)
}

func TestService_Update_PublishDraft(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())

	draft := published(id)
	draft.IsDraft = true
	draft.PlatformFee = decimal.Zero
	draft.FinalPrice = draft.BasePrice

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(draft, nil)
		tx.EXPECT().FeeTiers(gomock.Any()).Return(tiers(), nil)
		tx.EXPECT().UpdateSpecialist(gomock.Any(), id, uint(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.SpecialistID, _ uint, c storage.SpecialistChanges) (*domain.Specialist, error) {
				require.False(t, *c.IsDraft)
				require.Nil(t, c.BasePrice)
				require.True(t, dec("50").Equal(*c.PlatformFee))

				return published(id), nil
			})
		expectLoad(tx, id)
	})
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Update(context.Background(), id, specialist.Patch{IsDraft: ptr(false)})
	require.NoError(t, err)
}

func TestService_Update_PublishZeroPriceFails(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())

	draft := published(id)
	draft.IsDraft = true
	draft.BasePrice = decimal.Zero

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(draft, nil)
	})

	_, err := f.svc.Update(context.Background(), id, specialist.Patch{IsDraft: ptr(false)})
	require.ErrorIs(t, err, specialist.ErrValidation)
}

func TestService_Update_UnpublishKeepsFee(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(published(id), nil)
		tx.EXPECT().UpdateSpecialist(gomock.Any(), id, uint(1), storage.SpecialistChanges{IsDraft: ptr(true)}).
			Return(published(id), nil)
		expectLoad(tx, id)
	})
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Update(context.Background(), id, specialist.Patch{IsDraft: ptr(true)})
	require.NoError(t, err)
}

func TestService_Update_DraftPriceChangeResetsFee(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())

	draft := published(id)
	draft.IsDraft = true

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(draft, nil)
		tx.EXPECT().UpdateSpecialist(gomock.Any(), id, uint(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.SpecialistID, _ uint, c storage.SpecialistChanges) (*domain.Specialist, error) {
				require.True(t, c.PlatformFee.IsZero())
				require.True(t, dec("300").Equal(*c.FinalPrice))

				return draft, nil
			})
		expectLoad(tx, id)
	})
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Update(context.Background(), id, specialist.Patch{BasePrice: ptr(dec("300"))})
	require.NoError(t, err)
}

func TestService_Update_Rename(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(published(id), nil)
		tx.EXPECT().SlugTaken(gomock.Any(), "vat-advisory", &id).Return(false, nil)
		tx.EXPECT().UpdateSpecialist(gomock.Any(), id, uint(1), storage.SpecialistChanges{
			Title: ptr("VAT Advisory"),
			Slug:  ptr("vat-advisory"),
		}).DoAndReturn(func(context.Context, domain.SpecialistID, uint, storage.SpecialistChanges) (*domain.Specialist, error) {
			s := published(id)
			s.Title, s.Slug = "VAT Advisory", "vat-advisory"

			return s, nil
		})
		expectLoad(tx, id)
	})
	f.cache.EXPECT().Delete(gomock.Any(), "specialist:slug:tax-advisory", "specialist:slug:vat-advisory").Return(nil)

	updated, err := f.svc.Update(context.Background(), id, specialist.Patch{Title: ptr("VAT Advisory")})
	require.NoError(t, err)
	require.Equal(t, "vat-advisory", updated.Slug)
}

func TestService_Update_RenameCollision(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(published(id), nil)
		tx.EXPECT().SlugTaken(gomock.Any(), "vat-advisory", &id).Return(true, nil)
	})

	_, err := f.svc.Update(context.Background(), id, specialist.Patch{Title: ptr("VAT Advisory")})
	require.ErrorIs(t, err, specialist.ErrDuplicateSlug)
}

func TestService_Update_NotFound(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(nil, nil)
	})

	_, err := f.svc.Update(context.Background(), id, specialist.Patch{Description: ptr("x")})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Update_VersionConflict(t *testing.T) {
	t.Run("expected version mismatch", func(t *testing.T) {
		f := newFixture(t, nil, specialist.Options{})
		id := domain.SpecialistID(uuid.New())

		f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(published(id), nil)
		})

		_, err := f.svc.Update(context.Background(), id, specialist.Patch{
			Description:     ptr("x"),
			ExpectedVersion: ptr(uint(3)),
		})
		require.ErrorIs(t, err, specialist.ErrVersionConflict)
	})

	t.Run("guarded update misses", func(t *testing.T) {
		f := newFixture(t, nil, specialist.Options{})
		id := domain.SpecialistID(uuid.New())

		f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(published(id), nil)
			tx.EXPECT().UpdateSpecialist(gomock.Any(), id, uint(1), gomock.Any()).Return(nil, nil)
		})

		_, err := f.svc.Update(context.Background(), id, specialist.Patch{
			Description:     ptr("x"),
			ExpectedVersion: ptr(uint(1)),
		})
		require.ErrorIs(t, err, specialist.ErrVersionConflict)
	})
}

func TestService_Update_ReconcilesOfferings(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())
	a, b, c := domain.CatalogOfferingID(uuid.New()), domain.CatalogOfferingID(uuid.New()), domain.CatalogOfferingID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(published(id), nil)
		tx.EXPECT().OfferingLinks(gomock.Any(), id).Return([]domain.OfferingLink{
			{SpecialistID: id, OfferingID: a},
			{SpecialistID: id, OfferingID: b},
		}, nil)
		tx.EXPECT().RemoveOfferingLinks(gomock.Any(), id, a).Return(nil)
		tx.EXPECT().MissingCatalogOfferings(gomock.Any(), c).Return(nil, nil)
		tx.EXPECT().AddOfferingLinks(gomock.Any(), id, c).Return(nil)
		tx.EXPECT().UpdateSpecialist(gomock.Any(), id, uint(1), storage.SpecialistChanges{}).Return(published(id), nil)
		expectLoad(tx, id)
	})
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Update(context.Background(), id, specialist.Patch{
		OfferingIDs: &[]domain.CatalogOfferingID{b, c},
	})
	require.NoError(t, err)
}

func TestService_Update_SameOfferingsWriteNothing(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	id := domain.SpecialistID(uuid.New())
	a := domain.CatalogOfferingID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(published(id), nil)
		tx.EXPECT().OfferingLinks(gomock.Any(), id).Return([]domain.OfferingLink{{SpecialistID: id, OfferingID: a}}, nil)
		expectLoad(tx, id)
	})
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Update(context.Background(), id, specialist.Patch{
		OfferingIDs: &[]domain.CatalogOfferingID{a},
	})
	require.NoError(t, err)
}

func TestService_Update_AppendsMedia(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{UploadConcurrency: 4})
	id := domain.SpecialistID(uuid.New())

	f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SpecialistByID(gomock.Any(), id, true).Return(published(id), nil)
		tx.EXPECT().NextDisplayOrder(gomock.Any(), id).Return(3, nil)
		tx.EXPECT().StoreMedia(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, media ...domain.Media) ([]domain.Media, error) {
				require.Equal(t, 3, media[0].DisplayOrder)
				require.Equal(t, "image/png", media[0].MimeType)
				require.Equal(t, 4, media[1].DisplayOrder)
				require.Equal(t, "image/webp", media[1].MimeType)

				return media, nil
			})
		tx.EXPECT().UpdateSpecialist(gomock.Any(), id, uint(1), storage.SpecialistChanges{}).Return(published(id), nil)
		expectLoad(tx, id)
	})
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Update(context.Background(), id, specialist.Patch{
		Files: []specialist.Upload{
			{Filename: "a.png", ContentType: "image/png", Data: []byte("a")},
			{Filename: "b.webp", ContentType: "image/webp", Data: []byte("b")},
		},
	})
	require.NoError(t, err)
}

func TestService_GetBySlug(t *testing.T) {
	id := domain.SpecialistID(uuid.New())

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t, nil, specialist.Options{})
		f.cache.EXPECT().Get(gomock.Any(), "specialist:slug:tax-advisory", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, dest any) (bool, error) {
				*dest.(*domain.Specialist) = *published(id)

				return true, nil
			})

		s, err := f.svc.GetBySlug(context.Background(), "tax-advisory")
		require.NoError(t, err)
		require.Equal(t, id, s.ID)
	})

	t.Run("cache miss", func(t *testing.T) {
		f := newFixture(t, nil, specialist.Options{})
		f.cache.EXPECT().Get(gomock.Any(), "specialist:slug:tax-advisory", gomock.Any()).Return(false, nil)
		f.st.EXPECT().SpecialistBySlug(gomock.Any(), "tax-advisory").Return(published(id), nil)
		f.st.EXPECT().SpecialistMedia(gomock.Any(), id).Return(nil, nil)
		f.st.EXPECT().OfferingLinks(gomock.Any(), id).Return(nil, nil)
		f.cache.EXPECT().Set(gomock.Any(), "specialist:slug:tax-advisory", gomock.Any(), time.Minute).Return(nil)

		s, err := f.svc.GetBySlug(context.Background(), "tax-advisory")
		require.NoError(t, err)
		require.Equal(t, id, s.ID)
	})

	t.Run("cache miss without ttl uses default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mockstorage.NewMockStorage(ctrl)
		c := mockcache.NewMockCache(ctrl)
		svc, err := specialist.New(st, memory.New("specialists/"), c, specialist.Options{})
		require.NoError(t, err)

		c.EXPECT().Get(gomock.Any(), "specialist:slug:tax-advisory", gomock.Any()).Return(false, nil)
		st.EXPECT().SpecialistBySlug(gomock.Any(), "tax-advisory").Return(published(id), nil)
		st.EXPECT().SpecialistMedia(gomock.Any(), id).Return(nil, nil)
		st.EXPECT().OfferingLinks(gomock.Any(), id).Return(nil, nil)
		c.EXPECT().Set(gomock.Any(), "specialist:slug:tax-advisory", gomock.Any(), specialist.DefaultCacheTTL).Return(nil)

		_, err = svc.GetBySlug(context.Background(), "tax-advisory")
		require.NoError(t, err)
	})

	t.Run("draft is hidden", func(t *testing.T) {
		f := newFixture(t, nil, specialist.Options{})
		draft := published(id)
		draft.IsDraft = true
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.st.EXPECT().SpecialistBySlug(gomock.Any(), "tax-advisory").Return(draft, nil)

		_, err := f.svc.GetBySlug(context.Background(), "tax-advisory")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestService_ListPublished(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{MaxPageSize: 10})
	id := domain.SpecialistID(uuid.New())
	lastID := domain.SpecialistID(uuid.New())
	cursor := storage.PageCursor{
		CreatedAt: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
		ID:        domain.SpecialistID(uuid.New()),
	}
	next := storage.PageCursor{CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), ID: lastID}

	f.st.EXPECT().PublishedSpecialists(gomock.Any(), "tax", &cursor, uint(10)).Return(storage.SpecialistPage{
		Specialists: []domain.Specialist{*published(id)},
		NextCursor:  &next,
	}, nil)
	f.st.EXPECT().SpecialistMedia(gomock.Any(), id).Return([]domain.Media{{SpecialistID: id, DisplayOrder: 0}}, nil)
	f.st.EXPECT().OfferingLinks(gomock.Any(), id).Return(nil, nil)

	page, err := f.svc.ListPublished(context.Background(), specialist.ListQuery{
		Search: "tax",
		Cursor: "2025-04-01T10:00:00Z_" + cursor.ID.String(),
		Limit:  500,
	})
	require.NoError(t, err)
	require.Len(t, page.Specialists, 1)
	require.Len(t, page.Specialists[0].Media, 1)
	require.Empty(t, page.Specialists[0].Offerings)
	require.Equal(t, "2025-03-01T10:00:00Z_"+lastID.String(), page.NextCursor)

	for _, bad := range []string{"yesterday", "2025-04-01T10:00:00Z", "2025-04-01T10:00:00Z_nope", "soon_" + lastID.String()} {
		_, err = f.svc.ListPublished(context.Background(), specialist.ListQuery{Cursor: bad})
		require.ErrorIs(t, err, specialist.ErrValidation, bad)
	}
}

func TestService_ListPublished_FirstPageHasNoCursor(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{MaxPageSize: 10})

	f.st.EXPECT().PublishedSpecialists(gomock.Any(), "", nil, uint(3)).Return(storage.SpecialistPage{}, nil)

	page, err := f.svc.ListPublished(context.Background(), specialist.ListQuery{Limit: 3})
	require.NoError(t, err)
	require.Empty(t, page.Specialists)
	require.Empty(t, page.NextCursor)
}

func TestService_Delete(t *testing.T) {
	id := domain.SpecialistID(uuid.New())

	t.Run("deleted", func(t *testing.T) {
		f := newFixture(t, nil, specialist.Options{})
		f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().DeleteSpecialist(gomock.Any(), id).Return(published(id), nil)
			tx.EXPECT().DeleteSpecialistMedia(gomock.Any(), id).Return(nil)
		})
		f.cache.EXPECT().Delete(gomock.Any(), "specialist:slug:tax-advisory").Return(nil)

		require.NoError(t, f.svc.Delete(context.Background(), id))
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t, nil, specialist.Options{})
		f.expectWithTx(t, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().DeleteSpecialist(gomock.Any(), id).Return(nil, nil)
		})

		require.ErrorIs(t, f.svc.Delete(context.Background(), id), serrors.ErrNotFound)
	})
}

func TestService_QuoteFee(t *testing.T) {
	f := newFixture(t, nil, specialist.Options{})
	f.st.EXPECT().FeeTiers(gomock.Any()).Return(tiers(), nil)

	q, err := f.svc.QuoteFee(context.Background(), dec("2000"))
	require.NoError(t, err)
	require.Equal(t, "150.00", q.Fee.StringFixed(2))
	require.Equal(t, domain.FeeTierMedium, q.Tier.Name)

	_, err = f.svc.QuoteFee(context.Background(), dec("-1"))
	require.ErrorIs(t, err, specialist.ErrValidation)
}
