package schedulers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"cpu-scheduler-sim/internal/core"
)

// Simulation is the complete outcome of one policy over one process set.
type Simulation struct {
	Algorithm Algorithm
	Options   Options
	Processes []core.Process
	Records   []core.CompletionRecord
	Steps     []core.Step
	Timeline  []core.Slice
	CPU       core.CpuMetric
}

// Simulate runs alg to completion and keeps every emitted step.
func Simulate(ctx context.Context, alg Algorithm, opts Options, processes []core.Process, logger *slog.Logger) (Simulation, error) {
	engine, err := NewEngine(alg, opts, logger)
	if err != nil {
		return Simulation{}, err
	}
	if err := engine.Start(processes); err != nil {
		return Simulation{}, err
	}

	var steps []core.Step
	for {
		if err := ctx.Err(); err != nil {
			return Simulation{}, err
		}
		step, err := engine.Next()
		if err != nil {
			return Simulation{}, err
		}
		steps = append(steps, step)
		if step.Finished {
			break
		}
	}

	return Simulation{
		Algorithm: alg,
		Options:   opts,
		Processes: append([]core.Process(nil), processes...),
		Records:   engine.Results(),
		Steps:     steps,
		Timeline:  engine.Timeline(),
		CPU:       engine.CPU(),
	}, nil
}

// SimulateAll runs every algorithm concurrently, one engine per goroutine.
func SimulateAll(ctx context.Context, opts Options, processes []core.Process, logger *slog.Logger) (map[Algorithm]Simulation, error) {
	sims := make([]Simulation, len(Algorithms))
	errs := make([]error, len(Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, alg := range Algorithms {
		go func(i int, alg Algorithm) {
			defer wg.Done()
			sims[i], errs[i] = Simulate(ctx, alg, opts, processes, logger)
		}(i, alg)
	}
	wg.Wait()

	out := make(map[Algorithm]Simulation, len(Algorithms))
	for i, alg := range Algorithms {
		if errs[i] != nil {
			return nil, fmt.Errorf("%s: %w", alg, errs[i])
		}
		out[alg] = sims[i]
	}
	return out, nil
}
