package schedulers

import "cpu-scheduler-sim/internal/core"

type level struct {
	quantum int
	queue   []*core.Process
}

// multilevelQueue keeps one FIFO per priority level. Arrivals enter level 0,
// a process that is preempted without finishing drops one level, and the last
// level keeps whatever reaches it. A slice never crosses the next arrival, so
// a newcomer on level 0 gets the CPU at the instant it arrives.
type multilevelQueue struct {
	levels []level
	// levelOf maps pid to the level the process was last dispatched from.
	levelOf map[int]int
}

func newMultilevelQueue(quanta []int) *multilevelQueue {
	levels := make([]level, len(quanta))
	for i, q := range quanta {
		levels[i].quantum = q
	}
	return &multilevelQueue{levels: levels, levelOf: make(map[int]int)}
}

func (m *multilevelQueue) Admit(p *core.Process) {
	m.levelOf[p.PID] = 0
	m.levels[0].queue = append(m.levels[0].queue, p)
}

func (m *multilevelQueue) Select(now, nextArrival int, hasArrival bool) Dispatch {
	for i := range m.levels {
		lv := &m.levels[i]
		if len(lv.queue) == 0 {
			continue
		}
		p := lv.queue[0]
		lv.queue = lv.queue[1:]
		m.levelOf[p.PID] = i

		slice := p.Remaining
		if lv.quantum > 0 && lv.quantum < slice {
			slice = lv.quantum
		}
		if hasArrival && nextArrival-now < slice {
			slice = nextArrival - now
		}
		return Dispatch{Process: p, Slice: slice, Level: i}
	}
	return Dispatch{}
}

func (m *multilevelQueue) Requeue(p *core.Process) {
	next := m.levelOf[p.PID] + 1
	if next >= len(m.levels) {
		next = len(m.levels) - 1
	}
	m.levelOf[p.PID] = next
	m.levels[next].queue = append(m.levels[next].queue, p)
}

func (m *multilevelQueue) Len() int {
	n := 0
	for _, lv := range m.levels {
		n += len(lv.queue)
	}
	return n
}

// Queued returns the number of processes waiting on each level.
func (m *multilevelQueue) Queued() []int {
	out := make([]int, len(m.levels))
	for i, lv := range m.levels {
		out[i] = len(lv.queue)
	}
	return out
}
