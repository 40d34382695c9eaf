package schedulers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownAlgorithm   = errors.New("unknown scheduling algorithm")
	ErrInvalidTimeQuantum = errors.New("invalid time quantum")
	ErrNotStarted         = errors.New("engine not started")
	ErrAlreadyTerminated  = errors.New("engine already terminated")
	ErrInvalidDispatch    = errors.New("invalid dispatch")
)

// Algorithm names a scheduling policy.
type Algorithm string

const (
	FirstInFirstOut          Algorithm = "fifo"
	ShortestJobFirst         Algorithm = "sjf"
	ShortestTimeToCompletion Algorithm = "stcf"
	RoundRobin               Algorithm = "rr"
	MultilevelFeedbackQueue  Algorithm = "mlfq"
)

// Algorithms lists every supported policy in presentation order.
var Algorithms = []Algorithm{
	FirstInFirstOut,
	ShortestJobFirst,
	ShortestTimeToCompletion,
	RoundRobin,
	MultilevelFeedbackQueue,
}

// ParseAlgorithm accepts the short names above; "fcfs" is an alias for fifo.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "fcfs" {
		return FirstInFirstOut, nil
	}
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Title is the human readable policy name.
func (a Algorithm) Title() string {
	switch a {
	case FirstInFirstOut:
		return "First In First Out"
	case ShortestJobFirst:
		return "Shortest Job First"
	case ShortestTimeToCompletion:
		return "Shortest Time to Completion First"
	case RoundRobin:
		return "Round Robin"
	case MultilevelFeedbackQueue:
		return "Multilevel Feedback Queue"
	}
	return string(a)
}

// Options carries the tunable parameters of the policies.
type Options struct {
	// TimeQuantum is the round robin slice; required to be positive for rr.
	TimeQuantum int
	// LevelQuanta are the MLFQ level quanta from highest priority down.
	// A quantum <= 0 lets a process run to completion on that level.
	LevelQuanta []int
}

// DefaultOptions returns quantum 2 for rr and the 4/8/unbounded MLFQ levels.
func DefaultOptions() Options {
	return Options{
		TimeQuantum: 2,
		LevelQuanta: []int{4, 8, 0},
	}
}

func newDisciplineFactory(alg Algorithm, opts Options) (func() Discipline, error) {
	switch alg {
	case FirstInFirstOut:
		return func() Discipline { return &fifoQueue{} }, nil
	case ShortestJobFirst:
		return func() Discipline { return &sjfQueue{} }, nil
	case ShortestTimeToCompletion:
		return func() Discipline { return &stcfQueue{} }, nil
	case RoundRobin:
		if opts.TimeQuantum <= 0 {
			return nil, fmt.Errorf("%w: round robin needs a positive quantum, got %d", ErrInvalidTimeQuantum, opts.TimeQuantum)
		}
		quantum := opts.TimeQuantum
		return func() Discipline { return newRoundRobinQueue(quantum) }, nil
	case MultilevelFeedbackQueue:
		quanta := opts.LevelQuanta
		if len(quanta) == 0 {
			quanta = DefaultOptions().LevelQuanta
		}
		quanta = append([]int(nil), quanta...)
		return func() Discipline { return newMultilevelQueue(quanta) }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
}
