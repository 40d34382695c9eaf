package core

// CpuMetric accumulates simulated ticks spent running and idling.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is the busy share of the total time, 0 when nothing ran.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per tick.
func (m CpuMetric) Throughput(completed int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(completed) / float64(m.TotalTime)
}

// CpuExecute runs p for slice ticks starting at now and returns the
// slice it occupied. slice must be within [1, Remaining].
func CpuExecute(p *Process, now, slice int, metric *CpuMetric) Slice {
	if p.FirstRun < 0 {
		p.FirstRun = now
	}
	p.Remaining -= slice
	metric.UtilizationTime += slice
	metric.TotalTime += slice
	return Slice{PID: p.PID, Start: now, Stop: now + slice}
}

// CpuIdle records ticks with nothing ready to run.
func CpuIdle(ticks int, metric *CpuMetric) {
	metric.IdleTime += ticks
	metric.TotalTime += ticks
}
