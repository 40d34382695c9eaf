package schedulers

import "cpu-scheduler-sim/internal/core"

// fifoQueue runs processes to completion in arrival order.
type fifoQueue struct {
	queue []*core.Process
}

func (q *fifoQueue) Admit(p *core.Process) {
	q.queue = append(q.queue, p)
}

func (q *fifoQueue) Select(now, nextArrival int, hasArrival bool) Dispatch {
	p := q.queue[0]
	q.queue = q.queue[1:]
	return Dispatch{Process: p, Slice: p.Remaining}
}

func (q *fifoQueue) Requeue(p *core.Process) {
	q.queue = append(q.queue, p)
}

func (q *fifoQueue) Len() int {
	return len(q.queue)
}
