package cmd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"os-simulator/internal/requests"
)

// LoadJobs reads a job file, choosing the format by extension.
func LoadJobs(path string) (*requests.ScheduleRequests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSVJobs(bytes.NewReader(data))
	case ".yaml", ".yml":
		return parseYAMLJobs(data)
	default:
		return nil, fmt.Errorf("unsupported job file %q; use .csv, .yaml or .yml", path)
	}
}

// parseYAMLJobs uses strict parsing: unrecognized keys (typos) are rejected.
func parseYAMLJobs(data []byte) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&request); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing jobs: %w", err)
	}
	return &request, nil
}

// parseCSVJobs reads rows of id,arrival,burst[,priority]. A first row whose
// arrival column is not a number is treated as a header.
func parseCSVJobs(r io.Reader) (*requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing jobs: %w", err)
	}

	request := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(rows))}
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("row %d: want 3 or 4 columns, got %d", i+1, len(row))
		}
		if i == 0 {
			if _, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64); err != nil {
				continue
			}
		}
		job := requests.Job{ProcessId: strings.TrimSpace(row[0])}
		fields := []*int64{&job.ArrivalTime, &job.BurstTime, &job.Priority}
		for col := 1; col < len(row); col++ {
			v, err := strconv.ParseInt(strings.TrimSpace(row[col]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i+1, col+1, err)
			}
			*fields[col-1] = v
		}
		request.Jobs = append(request.Jobs, job)
	}
	return request, nil
}
