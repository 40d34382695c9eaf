package util

import "cpu-scheduler-sim/internal/core"

func average(records []core.CompletionRecord, field func(core.CompletionRecord) int) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum int
	for _, r := range records {
		sum += field(r)
	}
	return float64(sum) / float64(len(records))
}

// AverageWaitingTime is the mean waiting time of records, 0 when empty.
func AverageWaitingTime(records []core.CompletionRecord) float64 {
	return average(records, func(r core.CompletionRecord) int { return r.WaitingTime })
}

// CalculateAverage returns the mean waiting, response and turnaround times.
func CalculateAverage(records []core.CompletionRecord) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	averageWaitingTime = AverageWaitingTime(records)
	averageResponseTime = average(records, func(r core.CompletionRecord) int { return r.ResponseTime })
	averageTurnAroundTime = average(records, func(r core.CompletionRecord) int { return r.TurnaroundTime })
	return
}
