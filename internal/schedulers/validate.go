package schedulers

import (
	"errors"
	"fmt"
	"math"

	"os-simulator/internal/core"
)

var (
	// ErrInvalidInput is wrapped by every rejection of caller-supplied processes or parameters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownAlgorithm is returned for an unrecognized algorithm tag.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// ValidateProcesses checks that every process can be simulated.
// An empty slice is valid. The latest arrival plus the total burst bounds
// the simulation clock and must fit in an int64.
func ValidateProcesses(processes []core.Process) error {
	seen := make(map[string]int, len(processes))
	var latestArrival, totalBurst int64
	for i, p := range processes {
		prefix := fmt.Sprintf("process[%d]", i)
		if p.ID == "" {
			return fmt.Errorf("%s: empty id: %w", prefix, ErrInvalidInput)
		}
		if p.ID == core.IdleJob {
			return fmt.Errorf("%s: id %q is reserved: %w", prefix, p.ID, ErrInvalidInput)
		}
		if j, ok := seen[p.ID]; ok {
			return fmt.Errorf("%s: id %q duplicates process[%d]: %w", prefix, p.ID, j, ErrInvalidInput)
		}
		seen[p.ID] = i
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%s (%s): arrival time must be non-negative, got %d: %w", prefix, p.ID, p.ArrivalTime, ErrInvalidInput)
		}
		if p.BurstTime < 1 {
			return fmt.Errorf("%s (%s): burst time must be at least 1, got %d: %w", prefix, p.ID, p.BurstTime, ErrInvalidInput)
		}
		if math.MaxInt64-totalBurst < p.BurstTime {
			return fmt.Errorf("%s (%s): total burst time overflows: %w", prefix, p.ID, ErrInvalidInput)
		}
		totalBurst += p.BurstTime
		latestArrival = max(latestArrival, p.ArrivalTime)
		if math.MaxInt64-latestArrival < totalBurst {
			return fmt.Errorf("%s (%s): schedule would end past tick %d: %w", prefix, p.ID, int64(math.MaxInt64), ErrInvalidInput)
		}
	}
	return nil
}

func validateTimeQuantum(quantum int64) error {
	if quantum < 1 {
		return fmt.Errorf("time quantum must be at least 1, got %d: %w", quantum, ErrInvalidInput)
	}
	return nil
}

func validateLevelsTimeQuantum(levels []int64) error {
	if len(levels) == 0 {
		return fmt.Errorf("at least one feedback queue level required: %w", ErrInvalidInput)
	}
	last := len(levels) - 1
	for i, q := range levels {
		if i == last && q == 0 {
			continue
		}
		if q < 1 {
			return fmt.Errorf("level[%d]: time quantum must be at least 1, got %d: %w", i, q, ErrInvalidInput)
		}
	}
	return nil
}

// processesFromSlices builds labelled processes from parallel attribute
// slices. priorities may be nil, in which case every priority is 0.
func processesFromSlices(arrivals, bursts, priorities []int64) ([]core.Process, error) {
	if len(arrivals) != len(bursts) {
		return nil, fmt.Errorf("got %d arrival times and %d burst times: %w", len(arrivals), len(bursts), ErrInvalidInput)
	}
	if priorities != nil && len(priorities) != len(arrivals) {
		return nil, fmt.Errorf("got %d arrival times and %d priorities: %w", len(arrivals), len(priorities), ErrInvalidInput)
	}
	processes := make([]core.Process, len(arrivals))
	for i := range arrivals {
		processes[i] = core.Process{
			ID:          core.Label(i),
			ArrivalTime: arrivals[i],
			BurstTime:   bursts[i],
		}
		if priorities != nil {
			processes[i].Priority = priorities[i]
		}
	}
	return processes, nil
}
