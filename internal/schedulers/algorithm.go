package schedulers

import (
	"fmt"

	"os-simulator/internal/core"
	"os-simulator/internal/responses"
)

// Algorithm names a scheduling strategy.
type Algorithm string

const (
	ShortestJobFirst        Algorithm = "sjf"
	PriorityPreemptive      Algorithm = "pp"
	RoundRobin              Algorithm = "rr"
	FirstComeFirstServe     Algorithm = "fcfs"
	MultilevelFeedbackQueue Algorithm = "mlfq"
)

// algorithms lists every strategy in presentation order.
var algorithms = []Algorithm{
	RoundRobin,
	PriorityPreemptive,
	ShortestJobFirst,
	FirstComeFirstServe,
	MultilevelFeedbackQueue,
}

// Algorithms returns every supported strategy in a fixed order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// IsValidAlgorithm reports whether name is a recognized algorithm tag.
func IsValidAlgorithm(name string) bool {
	for _, a := range algorithms {
		if string(a) == name {
			return true
		}
	}
	return false
}

// ParseAlgorithm converts a tag such as "rr" into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	if !IsValidAlgorithm(name) {
		return "", fmt.Errorf("%q: %w; valid: rr, pp, sjf, fcfs, mlfq", name, ErrUnknownAlgorithm)
	}
	return Algorithm(name), nil
}

// Options carries the strategy-specific parameters. Fields not used by the
// selected algorithm are ignored.
type Options struct {
	TimeQuantum       int64   `json:"time_quantum"`        // round robin slice length
	LevelsTimeQuantum []int64 `json:"levels_time_quantum"` // mlfq slice length per level, 0 on the last level means run to completion
}

// DefaultOptions returns the parameters used when the caller supplies none.
func DefaultOptions() Options {
	return Options{
		TimeQuantum:       2,
		LevelsTimeQuantum: []int64{2, 4, 0},
	}
}

// Schedule runs the selected algorithm over processes.
func Schedule(alg Algorithm, processes []core.Process, opts Options) (responses.ScheduleResponse, error) {
	switch alg {
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case PriorityPreemptive:
		return SchedulePriorityPreemptive(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, opts.TimeQuantum)
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case MultilevelFeedbackQueue:
		return ScheduleMultilevelFeedbackQueue(processes, opts.LevelsTimeQuantum)
	default:
		return responses.ScheduleResponse{}, fmt.Errorf("%q: %w", alg, ErrUnknownAlgorithm)
	}
}
