package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-simulator/internal/requests"
)

func TestParseCSVJobs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []requests.Job
	}{
		{
			name:  "with header and priorities",
			input: "id,arrival,burst,priority\nP1, 0, 6, 5\nP2, 3, 2, 1\n",
			want: []requests.Job{
				{ProcessId: "P1", ArrivalTime: 0, BurstTime: 6, Priority: 5},
				{ProcessId: "P2", ArrivalTime: 3, BurstTime: 2, Priority: 1},
			},
		},
		{
			name:  "without header or priorities",
			input: "A,0,7\nB,1,4\n",
			want: []requests.Job{
				{ProcessId: "A", ArrivalTime: 0, BurstTime: 7},
				{ProcessId: "B", ArrivalTime: 1, BurstTime: 4},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCSVJobs(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Jobs)
		})
	}
}

func TestParseCSVJobs_Errors(t *testing.T) {
	_, err := parseCSVJobs(strings.NewReader("P1,0\n"))
	assert.ErrorContains(t, err, "want 3 or 4 columns")

	_, err = parseCSVJobs(strings.NewReader("P1,0,1\nP2,x,1\n"))
	assert.ErrorContains(t, err, "row 2 column 2")
}

func TestParseYAMLJobs_Strict(t *testing.T) {
	got, err := parseYAMLJobs([]byte(`
time_quantum: 3
jobs:
  - process_id: P1
    arrival_time: 0
    burst_time: 5
  - process_id: P2
    arrival_time: 0
    burst_time: 3
    priority: 2
`))
	require.NoError(t, err)
	require.NotNil(t, got.TimeQuantum)
	assert.Equal(t, int64(3), *got.TimeQuantum)
	require.Len(t, got.Jobs, 2)
	assert.Equal(t, int64(2), got.Jobs[1].Priority)

	_, err = parseYAMLJobs([]byte("jobs:\n  - process_id: P1\n    burst: 5\n"))
	assert.ErrorContains(t, err, "burst")
}

func TestLoadJobs_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.txt")
	require.NoError(t, os.WriteFile(path, []byte("P1,0,1\n"), 0o644))
	_, err := LoadJobs(path)
	assert.ErrorContains(t, err, "unsupported job file")
}
