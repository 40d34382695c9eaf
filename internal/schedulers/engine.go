package schedulers

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"cpu-scheduler-sim/internal/core"
)

// State is the lifecycle position of an Engine.
type State int

const (
	StateUnstarted State = iota
	StateReadyToStart
	StateRunning
	StateStepEmitted
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "UNSTARTED"
	case StateReadyToStart:
		return "READY_TO_START"
	case StateRunning:
		return "RUNNING"
	case StateStepEmitted:
		return "STEP_EMITTED"
	case StateTerminated:
		return "TERMINATED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Engine advances one policy over one process set a step at a time. It is not
// safe for concurrent use; run one engine per goroutine instead.
type Engine struct {
	algorithm     Algorithm
	newDiscipline func() Discipline
	logger        *slog.Logger

	discipline Discipline
	arrivals   []*core.Process // sorted by arrival, admitted up to next
	next       int
	now        int
	result     []core.CompletionRecord
	timeline   []core.Slice
	cpu        core.CpuMetric
	state      State
}

// NewEngine builds an engine for alg. A nil logger discards output.
func NewEngine(alg Algorithm, opts Options, logger *slog.Logger) (*Engine, error) {
	factory, err := newDisciplineFactory(alg, opts)
	if err != nil {
		return nil, err
	}
	return NewEngineWithDiscipline(alg, factory, logger), nil
}

// NewEngineWithDiscipline builds an engine around a custom ready-queue
// discipline. factory is called once per Start.
func NewEngineWithDiscipline(alg Algorithm, factory func() Discipline, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		algorithm:     alg,
		newDiscipline: factory,
		logger:        logger.With("component", "engine", "algorithm", string(alg)),
	}
}

func (e *Engine) Algorithm() Algorithm { return e.algorithm }

func (e *Engine) State() State { return e.state }

// Now is the current simulated time.
func (e *Engine) Now() int { return e.now }

// Start validates processes and prepares a fresh run over private copies of
// them. Nothing from a previous run survives.
func (e *Engine) Start(processes []core.Process) error {
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.PID]; dup {
			return fmt.Errorf("%w: %d", core.ErrDuplicateProcessID, p.PID)
		}
		seen[p.PID] = struct{}{}
	}

	arrivals := make([]*core.Process, len(processes))
	for i := range processes {
		p := processes[i]
		arrivals[i] = &p
	}
	sort.SliceStable(arrivals, func(i, j int) bool {
		return arrivals[i].ArrivalTime < arrivals[j].ArrivalTime
	})
	for i, p := range arrivals {
		p.Reset(i)
	}

	e.discipline = e.newDiscipline()
	e.arrivals = arrivals
	e.next = 0
	e.now = 0
	e.result = make([]core.CompletionRecord, 0, len(processes))
	e.timeline = nil
	e.cpu = core.CpuMetric{}
	e.state = StateReadyToStart
	e.logger.Debug("start", "processes", len(processes))
	return nil
}

// Next performs one scheduling decision and returns the resulting step. The
// step with Finished set is returned exactly once; later calls fail with
// ErrAlreadyTerminated.
func (e *Engine) Next() (core.Step, error) {
	switch e.state {
	case StateUnstarted:
		return core.Step{}, ErrNotStarted
	case StateTerminated:
		return core.Step{}, ErrAlreadyTerminated
	}
	e.state = StateRunning
	e.admit()

	if e.discipline.Len() == 0 {
		if e.next == len(e.arrivals) {
			e.state = StateTerminated
			e.logger.Debug("finished", "time", e.now, "completed", len(e.result))
			return core.Step{Result: slices.Clone(e.result), CurrentTime: e.now, Finished: true}, nil
		}
		arrival := e.arrivals[e.next].ArrivalTime
		e.logger.Debug("idle", "from", e.now, "to", arrival)
		core.CpuIdle(arrival-e.now, &e.cpu)
		e.now = arrival
		return e.emit(), nil
	}

	nextArrival, hasArrival := e.nextArrival()
	d := e.discipline.Select(e.now, nextArrival, hasArrival)
	if d.Process == nil || d.Slice <= 0 || d.Slice > d.Process.Remaining {
		e.state = StateTerminated
		return core.Step{}, fmt.Errorf("%w: slice %d at time %d", ErrInvalidDispatch, d.Slice, e.now)
	}

	p := d.Process
	s := core.CpuExecute(p, e.now, d.Slice, &e.cpu)
	s.Level = d.Level
	e.timeline = append(e.timeline, s)
	e.now = s.Stop

	// arrivals during the slice queue up ahead of the preempted process
	e.admit()

	if p.Finished() {
		rec := p.Complete(e.now)
		e.result = append(e.result, rec)
		e.logger.Debug("completed", "pid", p.PID, "completion", rec.CompletionTime, "waiting", rec.WaitingTime)
	} else {
		e.discipline.Requeue(p)
	}
	e.logSlice(s, p.Remaining)
	return e.emit(), nil
}

// Run drains the engine and returns the terminal step. It stops early when
// ctx is cancelled.
func (e *Engine) Run(ctx context.Context) (core.Step, error) {
	for {
		if err := ctx.Err(); err != nil {
			return core.Step{}, err
		}
		step, err := e.Next()
		if err != nil {
			return core.Step{}, err
		}
		if step.Finished {
			return step, nil
		}
	}
}

// Results returns the completion records so far, in completion order.
func (e *Engine) Results() []core.CompletionRecord {
	return slices.Clone(e.result)
}

// Timeline returns every slice executed so far.
func (e *Engine) Timeline() []core.Slice {
	return slices.Clone(e.timeline)
}

// CPU returns busy and idle tick counts so far.
func (e *Engine) CPU() core.CpuMetric {
	return e.cpu
}

// leveledDiscipline is implemented by disciplines with several ready queues.
type leveledDiscipline interface {
	Queued() []int
}

func (e *Engine) logSlice(s core.Slice, remaining int) {
	attrs := []any{"pid", s.PID, "start", s.Start, "stop", s.Stop, "level", s.Level, "remaining", remaining}
	if ld, ok := e.discipline.(leveledDiscipline); ok {
		attrs = append(attrs, "queued", ld.Queued())
	}
	e.logger.Debug("slice", attrs...)
}

func (e *Engine) admit() {
	for e.next < len(e.arrivals) && e.arrivals[e.next].ArrivalTime <= e.now {
		p := e.arrivals[e.next]
		e.discipline.Admit(p)
		e.next++
		e.logger.Debug("admitted", "pid", p.PID, "time", e.now)
	}
}

func (e *Engine) nextArrival() (int, bool) {
	if e.next < len(e.arrivals) {
		return e.arrivals[e.next].ArrivalTime, true
	}
	return 0, false
}

func (e *Engine) emit() core.Step {
	e.state = StateStepEmitted
	return core.Step{Result: slices.Clone(e.result), CurrentTime: e.now}
}
