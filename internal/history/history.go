// Package history persists solve attempts so a caller can look one up by id
// or browse recent runs, independent of the stateless solver core.
package history

import (
	"context"
	"errors"
	"time"

	"qless/internal/domain"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("history: record not found")

// Filter narrows a List query.
type Filter struct {
	Success *bool
	Limit   int
}

// SolveRun is one persisted solver invocation: the request that came in and
// the result that went out.
type SolveRun struct {
	ID            string
	Tiles         string // the input letters, lowercase, in request order
	DeadlineMS    int64
	Seed          int64
	Success       bool
	RemovedLetter *byte
	Placements    []domain.TilePlacement
	Stats         domain.Stats
	CreatedAt     time.Time
}

// Repository stores and retrieves SolveRuns.
type Repository interface {
	Store(ctx context.Context, run *SolveRun) error
	Get(ctx context.Context, id string) (*SolveRun, error)
	List(ctx context.Context, filter Filter) ([]*SolveRun, error)
	Migrate(ctx context.Context) error
	Close() error
}
