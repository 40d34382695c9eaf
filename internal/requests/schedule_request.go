package requests

import "cpu-scheduler-sim/internal/core"

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum overrides the configured round robin quantum when set.
	TimeQuantum *int `json:"time_quantum,omitempty"`
	// Steps asks for the full step trace in the response.
	Steps bool `json:"steps,omitempty"`
}

// RunRequest asks the server to simulate and persist one algorithm.
type RunRequest struct {
	Algorithm string `json:"algorithm"`
	ScheduleRequests
}

func (r ScheduleRequests) Processes() []core.Process {
	out := make([]core.Process, len(r.Jobs))
	for i, j := range r.Jobs {
		out[i] = core.Process{PID: j.ProcessId, ArrivalTime: j.ArrivalTime, BurstTime: j.BurstTime}
	}
	return out
}
