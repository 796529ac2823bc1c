package specialist

import (
	"github.com/riverqueue/river"
)

// SweepOrphansArgs asks the worker to delete objects uploaded by a write that
// was rolled back afterwards.
type SweepOrphansArgs struct {
	Keys []string `json:"keys"`
}

// Kind returns the River job kind.
func (SweepOrphansArgs) Kind() string { return "SweepOrphanedMediaJob" }

// InsertOpts returns the River options used when enqueueing the job.
func (SweepOrphansArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 10}
}
