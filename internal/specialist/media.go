package specialist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"backoffice/pkg/domain"
	"backoffice/pkg/objectstore"
	"backoffice/pkg/serrors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

// uploader pushes the files of one write to the object store and remembers
// every key it stored, so a failed write can report its orphans.
type uploader struct {
	store       objectstore.Store
	timeout     time.Duration
	concurrency int
	duration    metric.Float64Histogram

	mu   sync.Mutex
	keys []string
}

// upload stores files in parallel. The returned media follow the input order
// with display orders firstOrder, firstOrder+1, ... whatever order the
// uploads complete in. The first failure cancels the remaining uploads.
func (u *uploader) upload(ctx context.Context,
	id domain.SpecialistID,
	files []Upload,
	firstOrder int) ([]domain.Media, error) {
	media := make([]domain.Media, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, file := range files {
		g.Go(func() error {
			key, err := u.put(gctx, i, file)
			if err != nil {
				return err
			}

			media[i] = domain.Media{
				SpecialistID: id,
				Key:          key,
				Size:         int64(len(file.Data)),
				MimeType:     file.ContentType,
				Kind:         domain.MediaKindOf(file.ContentType),
				DisplayOrder: firstOrder + i,
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return media, nil
}

func (u *uploader) put(ctx context.Context, index int, file Upload) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	start := time.Now()
	key, err := u.store.Put(ctx, file.Data, file.ContentType)
	u.duration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.Bool("success", err == nil)))

	switch {
	case err == nil:
		u.mu.Lock()
		u.keys = append(u.keys, key)
		u.mu.Unlock()

		return key, nil
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return "", serrors.Wrap(serrors.ErrTimeout, err, "upload of file %d (%s) timed out", index, file.Filename)
	case serrors.KindOf(err) == nil:
		return "", serrors.Wrap(objectstore.ErrStoreUnavailable, err, "could not upload file %d (%s)", index, file.Filename)
	default:
		return "", fmt.Errorf("could not upload file %d (%s): %w", index, file.Filename, err)
	}
}

func (u *uploader) uploaded() []string {
	u.mu.Lock()
	defer u.mu.Unlock()

	return append([]string(nil), u.keys...)
}
