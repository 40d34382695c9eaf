package store

import (
	"context"
	"time"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
)

// Run is a persisted simulation of one algorithm over one process set.
type Run struct {
	ID          string
	Algorithm   string
	TimeQuantum int
	Processes   []core.Process
	Result      responses.ScheduleResponse
	CreatedAt   time.Time
}

// Store persists simulation runs.
type Store interface {
	CreateRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	Migrate(ctx context.Context) error
	Close() error
}
