// Package workload reads, writes and generates process sets.
package workload

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"cpu-scheduler-sim/internal/core"
)

var ErrUnknownFormat = errors.New("unknown workload format")

type Format string

const (
	CSV  Format = "csv"
	YAML Format = "yaml"
	JSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "csv":
		return CSV, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// document is the YAML/JSON shape of a workload file.
type document struct {
	Processes []core.Process `json:"processes" yaml:"processes"`
}

// LoadFile reads a workload, picking the format from the file extension.
func LoadFile(path string) ([]core.Process, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()
	return Load(f, format)
}

// Load parses processes from r. Validation is left to the engine.
func Load(r io.Reader, format Format) ([]core.Process, error) {
	switch format {
	case CSV:
		return loadCSV(r)
	case YAML:
		var doc document
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return doc.Processes, nil
	case JSON:
		var doc document
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return doc.Processes, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// csvHeaders are the first-column names that mark a header row.
var csvHeaders = map[string]bool{"pid": true, "process_id": true, "id": true}

// loadCSV reads "pid,arrival,burst" rows, with an optional header row.
func loadCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	line := 1
	if len(rows) > 0 && csvHeaders[strings.ToLower(strings.TrimSpace(rows[0][0]))] {
		rows = rows[1:]
		line++
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		var vals [3]int
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("csv line %d column %d: %w", line+i, j+1, err)
			}
			vals[j] = v
		}
		processes = append(processes, core.Process{PID: vals[0], ArrivalTime: vals[1], BurstTime: vals[2]})
	}
	return processes, nil
}

// Write encodes processes to w in format.
func Write(w io.Writer, processes []core.Process, format Format) error {
	switch format {
	case CSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"pid", "arrival_time", "burst_time"}); err != nil {
			return err
		}
		for _, p := range processes {
			row := []string{strconv.Itoa(p.PID), strconv.Itoa(p.ArrivalTime), strconv.Itoa(p.BurstTime)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Processes: processes}); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document{Processes: processes})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// Generate returns count processes with pids 1..count, arrival times in
// [0, 10) and bursts in [1, 15], sorted by arrival. The same seed always
// yields the same set.
func Generate(count int, seed uint64) []core.Process {
	rng := rand.New(rand.NewSource(seed))
	processes := make([]core.Process, count)
	for i := range processes {
		processes[i] = core.Process{
			PID:         i + 1,
			ArrivalTime: rng.Intn(10),
			BurstTime:   rng.Intn(15) + 1,
		}
	}
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})
	return processes
}
