package schedulers

import "cpu-scheduler-sim/internal/core"

// Dispatch is a discipline's decision: run Process for Slice ticks.
type Dispatch struct {
	Process *core.Process
	Slice   int
	Level   int
}

// Discipline orders the ready queue of one engine run.
//
// Select is only called when Len() > 0. nextArrival is the arrival time of the
// next process not yet admitted, valid when hasArrival is true; it is always
// later than now. The returned slice must be within [1, Remaining].
//
// Requeue is called for a dispatched process that did not finish, after any
// processes that arrived during its slice have been admitted.
type Discipline interface {
	Admit(p *core.Process)
	Select(now, nextArrival int, hasArrival bool) Dispatch
	Requeue(p *core.Process)
	Len() int
}

// takeShortest removes and returns the queued process with the smallest key,
// preferring the earlier arrival on ties.
func takeShortest(queue []*core.Process, key func(*core.Process) int) (*core.Process, []*core.Process) {
	best := 0
	for i := 1; i < len(queue); i++ {
		ki, kb := key(queue[i]), key(queue[best])
		if ki < kb || (ki == kb && queue[i].Seq < queue[best].Seq) {
			best = i
		}
	}
	p := queue[best]
	queue = append(queue[:best], queue[best+1:]...)
	return p, queue
}
