package client

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// SaveResult tells what a save did.
type SaveResult struct {
	// NoChanges is set when the form matched the snapshot and nothing was sent.
	NoChanges bool
	// Specialist is the saved aggregate, nil when NoChanges is set.
	Specialist *Specialist
}

// EditSession edits one specialist. It keeps the last saved snapshot and
// diffs every save against it.
type EditSession struct {
	client *Client

	mu       sync.Mutex
	snapshot Snapshot
}

// NewEditSession starts editing s.
func (c *Client) NewEditSession(s *Specialist) *EditSession {
	return &EditSession{client: c, snapshot: SnapshotOf(s)}
}

// Edit fetches the specialist and starts an edit session on it.
func (c *Client) Edit(ctx context.Context, id uuid.UUID) (*EditSession, error) {
	s, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return c.NewEditSession(s), nil
}

// Snapshot returns the last saved state.
func (e *EditSession) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshot
}

// Save sends the difference between form and the snapshot together with the
// snapshot version. When nothing differs it returns NoChanges without any
// request. On success the snapshot is replaced by the returned aggregate.
func (e *EditSession) Save(ctx context.Context, form FormState, files []File) (SaveResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	changes := Diff(e.snapshot, form, files)
	if changes.IsEmpty() {
		return SaveResult{NoChanges: true}, nil
	}

	s, err := e.client.update(ctx, e.snapshot.ID, e.snapshot.Version, changes, files)
	if err != nil {
		return SaveResult{}, errors.Wrapf(err, "save specialist %s", e.snapshot.ID)
	}
	e.snapshot = SnapshotOf(s)

	return SaveResult{Specialist: s}, nil
}
