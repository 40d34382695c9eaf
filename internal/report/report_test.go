package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/schedulers"
)

func simulate(t *testing.T, alg schedulers.Algorithm) schedulers.Simulation {
	t.Helper()
	processes := []core.Process{
		{PID: 1, ArrivalTime: 0, BurstTime: 5},
		{PID: 2, ArrivalTime: 1, BurstTime: 3},
	}
	sim, err := schedulers.Simulate(context.Background(), alg, schedulers.DefaultOptions(), processes, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	return sim
}

func TestResults(t *testing.T) {
	var buf bytes.Buffer
	Results(&buf, simulate(t, schedulers.FirstInFirstOut))

	// headers and footers are upper-cased by the table writer
	out := strings.ToUpper(buf.String())
	for _, want := range []string{"COMPLETION", "AVG 2.00", "AVG 6.00", "UTIL 100%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGantt(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, simulate(t, schedulers.FirstInFirstOut).Timeline)

	out := buf.String()
	for _, want := range []string{"P1", "P2", "0-5", "5-8"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	Gantt(&buf, nil)
	if !strings.Contains(buf.String(), "empty") {
		t.Errorf("expected empty marker, got %q", buf.String())
	}
}

func TestSteps(t *testing.T) {
	var buf bytes.Buffer
	Steps(&buf, simulate(t, schedulers.RoundRobin).Steps)
	if !strings.Contains(buf.String(), "done") {
		t.Errorf("final step not marked done:\n%s", buf.String())
	}
}

func TestComparison(t *testing.T) {
	sims, err := schedulers.SimulateAll(context.Background(), schedulers.DefaultOptions(),
		[]core.Process{{PID: 1, ArrivalTime: 0, BurstTime: 4}}, nil)
	if err != nil {
		t.Fatalf("SimulateAll: %v", err)
	}
	var buf bytes.Buffer
	Comparison(&buf, sims)
	for _, alg := range schedulers.Algorithms {
		if !strings.Contains(buf.String(), alg.Title()) {
			t.Errorf("missing row for %s", alg)
		}
	}
}
