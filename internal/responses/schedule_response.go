package responses

import "cpu-scheduler-sim/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	CompletionTime int `json:"completion_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
	ResponseTime   int `json:"response_time"`
}

// StepResponse is one animation frame. CurrentTime is null on the final frame.
type StepResponse struct {
	Result      []ProcessResponse `json:"result"`
	CurrentTime *int              `json:"current_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []core.Slice      `json:"timeline"`
	Steps                 []StepResponse    `json:"steps,omitempty"`
}

// RunResponse is a persisted simulation.
type RunResponse struct {
	ID        string           `json:"id"`
	CreatedAt string           `json:"created_at"`
	Jobs      []core.Process   `json:"jobs"`
	Result    ScheduleResponse `json:"result"`
}
