package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/util"
)

// GenerateResponse summarizes a finished simulation. The step trace is only
// included when withSteps is set.
func GenerateResponse(sim Simulation, withSteps bool) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(sim.Records)

	response := responses.ScheduleResponse{
		Algorithm:             string(sim.Algorithm),
		TotalTime:             sim.CPU.TotalTime,
		IdleTime:              sim.CPU.IdleTime,
		CpuUtilization:        sim.CPU.Utilization(),
		CpuThroughput:         sim.CPU.Throughput(len(sim.Records)),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               generateProcessDetails(sim.Records),
		Timeline:              sim.Timeline,
	}
	if response.Timeline == nil {
		response.Timeline = []core.Slice{}
	}
	if withSteps {
		response.Steps = GenerateSteps(sim.Steps)
	}
	return response
}

// GenerateSteps converts engine steps to the wire form, where the finished
// step carries a null current_time.
func GenerateSteps(steps []core.Step) []responses.StepResponse {
	out := make([]responses.StepResponse, len(steps))
	for i, s := range steps {
		out[i].Result = generateProcessDetails(s.Result)
		if !s.Finished {
			t := s.CurrentTime
			out[i].CurrentTime = &t
		}
	}
	return out
}

func generateProcessDetails(records []core.CompletionRecord) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, len(records))
	for i, r := range records {
		details[i] = responses.ProcessResponse{
			ProcessId:      r.PID,
			ArrivalTime:    r.ArrivalTime,
			BurstTime:      r.BurstTime,
			CompletionTime: r.CompletionTime,
			TurnAroundTime: r.TurnaroundTime,
			WaitingTime:    r.WaitingTime,
			ResponseTime:   r.ResponseTime,
		}
	}
	return details
}
