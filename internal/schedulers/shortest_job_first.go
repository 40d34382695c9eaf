package schedulers

import "cpu-scheduler-sim/internal/core"

// sjfQueue is non-preemptive: the shortest original burst is picked and then
// runs to completion even if a shorter job shows up meanwhile.
type sjfQueue struct {
	queue []*core.Process
}

func (q *sjfQueue) Admit(p *core.Process) {
	q.queue = append(q.queue, p)
}

func (q *sjfQueue) Select(now, nextArrival int, hasArrival bool) Dispatch {
	var p *core.Process
	p, q.queue = takeShortest(q.queue, func(p *core.Process) int { return p.BurstTime })
	return Dispatch{Process: p, Slice: p.Remaining}
}

func (q *sjfQueue) Requeue(p *core.Process) {
	q.queue = append(q.queue, p)
}

func (q *sjfQueue) Len() int {
	return len(q.queue)
}
