package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/specialist"
	"backoffice/pkg/logger"
	"backoffice/pkg/objectstore"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const unavailableSnooze = 30 * time.Second

// OrphanSweepWorker deletes media objects whose rows were rolled back. Keys
// already gone from the store count as deleted, so a job can be retried as
// a whole.
type OrphanSweepWorker struct {
	river.WorkerDefaults[specialist.SweepOrphansArgs]

	store objectstore.Store
}

func NewOrphanSweepWorker(store objectstore.Store) *OrphanSweepWorker {
	return &OrphanSweepWorker{store: store}
}

// Work deletes every key of the job. When the store is unavailable the job
// is snoozed without spending an attempt; other failures are retried.
func (w *OrphanSweepWorker) Work(ctx context.Context, job *river.Job[specialist.SweepOrphansArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int("keys", len(job.Args.Keys)))

	var (
		failed      []string
		errs        []error
		unavailable bool
	)
	for _, key := range job.Args.Keys {
		if err := w.store.Delete(ctx, key); err != nil {
			failed = append(failed, key)
			errs = append(errs, err)
			unavailable = unavailable || errors.Is(err, objectstore.ErrStoreUnavailable)
		}
	}

	if len(failed) == 0 {
		logger.Info(ctx, "orphaned media deleted")

		return nil
	}

	err := errors.Join(errs...)
	logger.Error(ctx, "could not delete orphaned media", zap.Strings("failed", failed), zap.Error(err))

	if unavailable && len(failed) == len(job.Args.Keys) {
		return river.JobSnooze(unavailableSnooze) //nolint: wrapcheck
	}

	return fmt.Errorf("could not delete %d of %d orphaned objects: %w", len(failed), len(job.Args.Keys), err)
}

// Timeout bounds a single sweep.
func (w *OrphanSweepWorker) Timeout(*river.Job[specialist.SweepOrphansArgs]) time.Duration {
	return time.Minute
}
