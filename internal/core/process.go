package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProcess     = errors.New("invalid process")
	ErrDuplicateProcessID = errors.New("duplicate process id")
)

// Process is one schedulable job. PID, ArrivalTime and BurstTime are the
// caller's input and never change; the remaining fields belong to the engine
// that owns this copy.
type Process struct {
	PID         int `json:"pid" yaml:"pid"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`

	Remaining int `json:"-" yaml:"-"`
	// Seq is the position in arrival order, ties broken by input order.
	Seq int `json:"-" yaml:"-"`
	// FirstRun is the time the process was first dispatched, -1 before that.
	FirstRun int `json:"-" yaml:"-"`
}

// Validate reports whether the input fields describe a runnable process.
func (p Process) Validate() error {
	switch {
	case p.PID <= 0:
		return fmt.Errorf("%w: pid %d must be positive", ErrInvalidProcess, p.PID)
	case p.ArrivalTime < 0:
		return fmt.Errorf("%w: pid %d has negative arrival time %d", ErrInvalidProcess, p.PID, p.ArrivalTime)
	case p.BurstTime <= 0:
		return fmt.Errorf("%w: pid %d has non-positive burst time %d", ErrInvalidProcess, p.PID, p.BurstTime)
	}
	return nil
}

// Reset clears simulation state so the copy can start a fresh run.
func (p *Process) Reset(seq int) {
	p.Remaining = p.BurstTime
	p.Seq = seq
	p.FirstRun = -1
}

func (p *Process) Finished() bool {
	return p.Remaining == 0
}

// Complete builds the completion record for a process that finished at now.
// Waiting time is derived from the original burst, never the remaining time.
func (p *Process) Complete(now int) CompletionRecord {
	turnaround := now - p.ArrivalTime
	response := 0
	if p.FirstRun >= 0 {
		response = p.FirstRun - p.ArrivalTime
	}
	return CompletionRecord{
		PID:            p.PID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		CompletionTime: now,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.BurstTime,
		ResponseTime:   response,
	}
}

// CompletionRecord holds the metrics of one finished process.
type CompletionRecord struct {
	PID            int `json:"pid"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	CompletionTime int `json:"completion_time"`
	TurnaroundTime int `json:"turnaround_time"`
	WaitingTime    int `json:"waiting_time"`
	ResponseTime   int `json:"response_time"`
}

// Step is the snapshot emitted after every scheduling decision. Result is in
// completion order. CurrentTime is meaningless once Finished is set.
type Step struct {
	Result      []CompletionRecord
	CurrentTime int
	Finished    bool
}

// Slice is one contiguous stretch of CPU time granted to a process.
type Slice struct {
	PID   int `json:"pid"`
	Start int `json:"start"`
	Stop  int `json:"stop"`
	Level int `json:"level,omitempty"`
}
