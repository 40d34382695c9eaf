package schedulers

import "cpu-scheduler-sim/internal/core"

// roundRobinQueue dequeues from the head and grants at most quantum ticks.
// Unfinished processes go back to the tail behind anything that arrived
// during their slice.
type roundRobinQueue struct {
	quantum int
	queue   []*core.Process
}

func newRoundRobinQueue(quantum int) *roundRobinQueue {
	return &roundRobinQueue{quantum: quantum}
}

func (q *roundRobinQueue) Admit(p *core.Process) {
	q.queue = append(q.queue, p)
}

func (q *roundRobinQueue) Select(now, nextArrival int, hasArrival bool) Dispatch {
	p := q.queue[0]
	q.queue = q.queue[1:]
	return Dispatch{Process: p, Slice: min(p.Remaining, q.quantum)}
}

func (q *roundRobinQueue) Requeue(p *core.Process) {
	q.queue = append(q.queue, p)
}

func (q *roundRobinQueue) Len() int {
	return len(q.queue)
}
