package store

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleRun(id string, created time.Time) *Run {
	return &Run{
		ID:          id,
		Algorithm:   "rr",
		TimeQuantum: 2,
		Processes: []core.Process{
			{PID: 1, ArrivalTime: 0, BurstTime: 5},
			{PID: 2, ArrivalTime: 0, BurstTime: 5},
		},
		Result: responses.ScheduleResponse{
			Algorithm:          "rr",
			TotalTime:          10,
			AverageWaitingTime: 4.5,
			Details: []responses.ProcessResponse{
				{ProcessId: 1, CompletionTime: 9, TurnAroundTime: 9, WaitingTime: 4},
				{ProcessId: 2, CompletionTime: 10, TurnAroundTime: 10, WaitingTime: 5},
			},
		},
		CreatedAt: created,
	}
}

func TestCreateGetRun(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	if err := st.CreateRun(ctx, sampleRun("run_1", now)); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	got, err := st.GetRun(ctx, "run_1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got == nil {
		t.Fatal("GetRun returned nil")
	}
	if got.Algorithm != "rr" || got.TimeQuantum != 2 {
		t.Errorf("algorithm/quantum = %s/%d, want rr/2", got.Algorithm, got.TimeQuantum)
	}
	if len(got.Processes) != 2 || got.Processes[1].BurstTime != 5 {
		t.Errorf("processes = %+v", got.Processes)
	}
	if got.Result.AverageWaitingTime != 4.5 || len(got.Result.Details) != 2 {
		t.Errorf("result = %+v", got.Result)
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, now)
	}
}

func TestGetRun_NotFound(t *testing.T) {
	st := testStore(t)
	got, err := st.GetRun(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil run, got %+v", got)
	}
}

func TestCreateRun_DuplicateID(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	run := sampleRun("run_dup", time.Now())
	if err := st.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := st.CreateRun(ctx, run); err == nil {
		t.Error("expected primary key violation")
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if err := st.CreateRun(ctx, sampleRun(fmt.Sprintf("run_%d", i), base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("CreateRun: %v", err)
		}
	}

	runs, err := st.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len = %d, want 2", len(runs))
	}
	if runs[0].ID != "run_2" || runs[1].ID != "run_1" {
		t.Errorf("order = %s, %s; want run_2, run_1", runs[0].ID, runs[1].ID)
	}
}

func TestListRuns_SubSecondOrder(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := st.CreateRun(ctx, sampleRun("run_older", base.Add(100*time.Millisecond))); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := st.CreateRun(ctx, sampleRun("run_newer", base.Add(150*time.Millisecond))); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	runs, err := st.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "run_newer" || runs[1].ID != "run_older" {
		t.Fatalf("order = %v, want run_newer, run_older", runIDs(runs))
	}
	if !runs[1].CreatedAt.Equal(base.Add(100 * time.Millisecond)) {
		t.Errorf("CreatedAt = %v, want %v", runs[1].CreatedAt, base.Add(100*time.Millisecond))
	}
}

func TestGetRun_BadTimestamp(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()
	_, err := st.db.ExecContext(ctx,
		`INSERT INTO runs (id, algorithm, time_quantum, processes, result, created_at)
		 VALUES ('run_bad', 'fifo', 0, '[]', '{}', 'yesterday')`)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := st.GetRun(ctx, "run_bad"); err == nil {
		t.Error("expected error for unparseable created_at")
	}
}

func runIDs(runs []*Run) []string {
	ids := make([]string, len(runs))
	for i, r := range runs {
		ids[i] = r.ID
	}
	return ids
}
