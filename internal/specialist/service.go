package specialist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/config"
	"backoffice/pkg/cache"
	"backoffice/pkg/domain"
	"backoffice/pkg/fee"
	"backoffice/pkg/logger"
	"backoffice/pkg/metrics"
	"backoffice/pkg/objectstore"
	"backoffice/pkg/serrors"
	"backoffice/pkg/storage"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "backoffice/internal/specialist"

// DefaultCacheTTL bounds how long a published specialist read by slug may be
// served from the cache when Options.CacheTTL is unset.
const DefaultCacheTTL = 30 * time.Second

// Options tune the write pipeline.
type Options struct {
	// TxTimeout bounds a whole create or update, uploads included.
	TxTimeout time.Duration
	// UploadTimeout bounds a single file upload.
	UploadTimeout time.Duration
	// UploadConcurrency is the number of files uploaded in parallel.
	UploadConcurrency int
	// SweepOrphans enqueues a job deleting the objects uploaded by a failed write.
	SweepOrphans bool
	// CacheTTL is how long published specialists are cached by slug.
	CacheTTL time.Duration
	// MaxPageSize caps ListQuery.Limit.
	MaxPageSize uint
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		TxTimeout:         cfg.Specialist.TxTimeout,
		UploadTimeout:     cfg.Specialist.UploadTimeout,
		UploadConcurrency: cfg.Specialist.UploadConcurrency,
		SweepOrphans:      cfg.Specialist.SweepOrphans,
		CacheTTL:          cfg.Redis.DetailTTL,
		MaxPageSize:       cfg.Specialist.MaxPageSize,
	}
}

type service struct {
	options Options
	storage storage.Storage
	store   objectstore.Store
	cache   cache.Cache
	fees    fee.Resolver

	tracer         trace.Tracer
	writes         metric.Int64Counter
	uploadDuration metric.Float64Histogram
}

// New returns a Service. A nil cache disables caching.
func New(storage storage.Storage, store objectstore.Store, c cache.Cache, options Options) (Service, error) {
	if c == nil {
		c = cache.Nop{}
	}
	if options.UploadConcurrency < 1 {
		options.UploadConcurrency = 1
	}
	if options.TxTimeout <= 0 {
		options.TxTimeout = time.Minute
	}
	if options.UploadTimeout <= 0 {
		options.UploadTimeout = options.TxTimeout
	}
	if options.MaxPageSize == 0 {
		options.MaxPageSize = 100
	}
	if options.CacheTTL <= 0 {
		options.CacheTTL = DefaultCacheTTL
	}

	meter := otel.Meter(instrumentationName)
	writes, err := meter.Int64Counter("specialist_writes",
		metric.WithDescription("Specialist aggregate writes by operation and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create writes counter: %w", err)
	}
	uploadDuration, err := meter.Float64Histogram("specialist_media_upload_duration",
		metric.WithDescription("Duration of single media uploads to the object store."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create upload histogram: %w", err)
	}

	return &service{
		options:        options,
		storage:        storage,
		store:          store,
		cache:          c,
		tracer:         otel.Tracer(instrumentationName),
		writes:         writes,
		uploadDuration: uploadDuration,
	}, nil
}

// write runs cb in a transaction bounded by TxTimeout. The transaction is
// detached from the caller's cancellation so that it always ends in a commit
// or a rollback. On failure the keys of already uploaded objects are logged
// and optionally handed to the sweep job.
func (s *service) write(ctx context.Context,
	op string,
	cb func(ctx context.Context, tx storage.AllStorage, up *uploader) error) (err error) {
	ctx, span := s.tracer.Start(ctx, "specialist."+op)
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			if k := serrors.KindOf(err); k != nil {
				outcome = k.Error()
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		s.writes.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("outcome", outcome)))
		span.End()
	}()

	txCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.options.TxTimeout)
	defer cancel()

	up := &uploader{
		store:       s.store,
		timeout:     s.options.UploadTimeout,
		concurrency: s.options.UploadConcurrency,
		duration:    s.uploadDuration,
	}

	err = s.storage.WithTx(txCtx, func(tx storage.AllStorage) error {
		return cb(txCtx, tx, up)
	})
	if err == nil {
		return nil
	}

	if errors.Is(txCtx.Err(), context.DeadlineExceeded) && !errors.Is(err, serrors.ErrTimeout) {
		err = serrors.Wrap(serrors.ErrTimeout, err, "%s timed out", op)
	}

	if keys := up.uploaded(); len(keys) > 0 {
		s.orphaned(ctx, keys)
	}

	return err
}

// orphaned reports objects left behind by a rolled back write.
func (s *service) orphaned(ctx context.Context, keys []string) {
	logger.Warn(ctx, "write rolled back after media upload, objects left orphaned",
		zap.Strings("keys", keys), zap.Bool("sweep", s.options.SweepOrphans))
	if !s.options.SweepOrphans {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if _, err := s.storage.AddJob(ctx, SweepOrphansArgs{Keys: keys}, nil); err != nil {
		logger.Error(ctx, "could not enqueue orphan sweep", zap.Strings("keys", keys), zap.Error(err))
	}
}

// quote resolves the fee of a specialist being published.
func (s *service) quote(ctx context.Context, tx storage.AllStorage, basePrice decimal.Decimal) (fee.Quote, error) {
	if err := EnsurePublishable(basePrice); err != nil {
		return fee.Quote{}, err
	}

	q, err := s.fees.Quote(ctx, tx, basePrice)
	switch {
	case errors.Is(err, fee.ErrNoTierConfigured):
		return fee.Quote{}, serrors.Wrap(ErrValidation, err, "base price cannot be published")
	case err != nil:
		return fee.Quote{}, fmt.Errorf("could not resolve platform fee: %w", err)
	}

	return q, nil
}

// linkOfferings checks the offerings exist and links them.
func linkOfferings(ctx context.Context, tx storage.AllStorage, id domain.SpecialistID, offerings []domain.CatalogOfferingID) error {
	if len(offerings) == 0 {
		return nil
	}

	missing, err := tx.MissingCatalogOfferings(ctx, offerings...)
	if err != nil {
		return fmt.Errorf("could not check catalog offerings: %w", err)
	}
	if len(missing) > 0 {
		return serrors.With(ErrInvalidOfferingReference, "unknown catalog offering %s", missing[0])
	}

	if err := tx.AddOfferingLinks(ctx, id, offerings...); err != nil {
		if errors.Is(err, storage.ErrUnknownOffering) {
			return serrors.Wrap(ErrInvalidOfferingReference, err, "unknown catalog offering")
		}

		return fmt.Errorf("could not link offerings: %w", err)
	}

	return nil
}

// attachMedia uploads files and stores their media rows.
func attachMedia(ctx context.Context,
	tx storage.AllStorage,
	up *uploader,
	id domain.SpecialistID,
	files []Upload,
	firstOrder int) error {
	if len(files) == 0 {
		return nil
	}

	media, err := up.upload(ctx, id, files, firstOrder)
	if err != nil {
		return err
	}

	if _, err := tx.StoreMedia(ctx, media...); err != nil {
		return fmt.Errorf("could not store media: %w", err)
	}

	return nil
}

// loadAggregate fills the relations of s.
func loadAggregate(ctx context.Context, st storage.AllStorage, s *domain.Specialist) (*domain.Specialist, error) {
	media, err := st.SpecialistMedia(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("could not load media: %w", err)
	}
	links, err := st.OfferingLinks(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("could not load offering links: %w", err)
	}

	out := *s
	out.Media = media
	out.Offerings = links
	if out.Media == nil {
		out.Media = []domain.Media{}
	}
	if out.Offerings == nil {
		out.Offerings = []domain.OfferingLink{}
	}

	return &out, nil
}

func slugDuplicate(slug string, err error) error {
	return serrors.Wrap(ErrDuplicateSlug, err, "slug %q is already taken", slug)
}

func uniqueOfferings(ids []domain.CatalogOfferingID) []domain.CatalogOfferingID {
	seen := make(map[domain.CatalogOfferingID]struct{}, len(ids))
	out := make([]domain.CatalogOfferingID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
