// Package report renders simulation results as text tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/util"
)

// Title writes a framed heading.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
	_, _ = fmt.Fprintln(w, " ", title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
}

// Results writes one row per completed process in completion order, with
// averages in the footer.
func Results(w io.Writer, sim schedulers.Simulation) {
	rows := make([][]string, 0, len(sim.Records))
	for _, r := range sim.Records {
		rows = append(rows, []string{
			strconv.Itoa(r.PID),
			strconv.Itoa(r.ArrivalTime),
			strconv.Itoa(r.BurstTime),
			strconv.Itoa(r.CompletionTime),
			strconv.Itoa(r.TurnaroundTime),
			strconv.Itoa(r.WaitingTime),
			strconv.Itoa(r.ResponseTime),
		})
	}
	wait, response, turnaround := util.CalculateAverage(sim.Records)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Completion", "Turnaround", "Waiting", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Util %.0f%%", sim.CPU.Utilization()*100),
		fmt.Sprintf("Avg %.2f", turnaround),
		fmt.Sprintf("Avg %.2f", wait),
		fmt.Sprintf("Avg %.2f", response)})
	table.Render()
}

// Gantt writes the execution timeline, one column per slice.
func Gantt(w io.Writer, timeline []core.Slice) {
	if len(timeline) == 0 {
		_, _ = fmt.Fprintln(w, "(empty timeline)")
		return
	}
	header := make([]string, len(timeline))
	span := make([]string, len(timeline))
	for i, s := range timeline {
		header[i] = "P" + strconv.Itoa(s.PID)
		span[i] = fmt.Sprintf("%d-%d", s.Start, s.Stop)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.Append(span)
	table.Render()
}

// Steps writes the step trace: time after each decision and the pids
// completed so far.
func Steps(w io.Writer, steps []core.Step) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "Time", "Completed"})
	for i, s := range steps {
		t := strconv.Itoa(s.CurrentTime)
		if s.Finished {
			t = "done"
		}
		pids := make([]string, len(s.Result))
		for j, r := range s.Result {
			pids[j] = strconv.Itoa(r.PID)
		}
		table.Append([]string{strconv.Itoa(i + 1), t, strings.Join(pids, " ")})
	}
	table.Render()
}

// Comparison writes one row per algorithm with its averages.
func Comparison(w io.Writer, sims map[schedulers.Algorithm]schedulers.Simulation) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Waiting", "Avg Turnaround", "Avg Response", "Total Time"})
	for _, alg := range schedulers.Algorithms {
		sim, ok := sims[alg]
		if !ok {
			continue
		}
		wait, response, turnaround := util.CalculateAverage(sim.Records)
		table.Append([]string{
			alg.Title(),
			fmt.Sprintf("%.2f", wait),
			fmt.Sprintf("%.2f", turnaround),
			fmt.Sprintf("%.2f", response),
			strconv.Itoa(sim.CPU.TotalTime),
		})
	}
	table.Render()
}
