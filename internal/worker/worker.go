package worker

import (
	"context"
	"fmt"
	"log/slog"

	"backoffice/internal/specialist"
	"backoffice/pkg/logger"
	"backoffice/pkg/objectstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configures the job runner.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently on the default queue.
	MaxWorkers int
}

// Start registers the back office workers and starts processing jobs.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	store objectstore.Store,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers < 1 {
		options.MaxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker[specialist.SweepOrphansArgs](workers, NewOrphanSweepWorker(store))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
