package schedulers

import "cpu-scheduler-sim/internal/core"

// stcfQueue reselects by remaining time and never lets a slice cross the next
// arrival, so a shorter newcomer preempts at the instant it arrives.
type stcfQueue struct {
	queue []*core.Process
}

func (q *stcfQueue) Admit(p *core.Process) {
	q.queue = append(q.queue, p)
}

func (q *stcfQueue) Select(now, nextArrival int, hasArrival bool) Dispatch {
	var p *core.Process
	p, q.queue = takeShortest(q.queue, func(p *core.Process) int { return p.Remaining })
	slice := p.Remaining
	if hasArrival && nextArrival-now < slice {
		slice = nextArrival - now
	}
	return Dispatch{Process: p, Slice: slice}
}

func (q *stcfQueue) Requeue(p *core.Process) {
	q.queue = append(q.queue, p)
}

func (q *stcfQueue) Len() int {
	return len(q.queue)
}
