package requests

import "os-simulator/internal/core"

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int64  `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int64  `json:"burst_time" yaml:"burst_time"`
	Priority    int64  `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job   `json:"jobs" yaml:"jobs"`
	TimeQuantum *int64  `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"` // nil means the configured default
	Levels      []int64 `json:"levels_time_quantum,omitempty" yaml:"levels_time_quantum,omitempty"`
}

// Processes converts the request jobs into engine processes, labelling
// jobs without a process id as P1, P2, ... by position.
func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		id := job.ProcessId
		if id == "" {
			id = core.Label(i)
		}
		processes[i] = core.Process{
			ID:          id,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		}
	}
	return processes
}
