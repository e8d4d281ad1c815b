package core

import (
	"fmt"
	"sort"
)

// Process is the static description of one schedulable job.
// Lower Priority values are more urgent.
type Process struct {
	ID          string
	ArrivalTime int64
	BurstTime   int64
	Priority    int64
}

// Label returns the default label for the process at input index i.
func Label(i int) string {
	return fmt.Sprintf("P%d", i+1)
}

// ProcessState is the per-run bookkeeping for a Process. It is owned by a
// single scheduler run and discarded once the run produces its response.
type ProcessState struct {
	Process        Process
	Index          int   // position in the caller's input, used for tie-breaking
	Remaining      int64 // ticks left to run
	FirstStart     int64 // tick of first dispatch, -1 until dispatched
	CompletionTime int64 // tick at which Remaining reached 0, -1 until then
}

// NewProcessState creates the bookkeeping for the process at input index.
func NewProcessState(index int, p Process) *ProcessState {
	return &ProcessState{
		Process:        p,
		Index:          index,
		Remaining:      p.BurstTime,
		FirstStart:     -1,
		CompletionTime: -1,
	}
}

// NewProcessStates wraps every process in a fresh ProcessState, preserving input order.
func NewProcessStates(processes []Process) []*ProcessState {
	states := make([]*ProcessState, len(processes))
	for i, p := range processes {
		states[i] = NewProcessState(i, p)
	}
	return states
}

// Finished reports whether the process has consumed its whole burst.
func (s *ProcessState) Finished() bool {
	return s.Remaining == 0
}

// Arrived reports whether the process is eligible to run at clock.
func (s *ProcessState) Arrived(clock int64) bool {
	return s.Process.ArrivalTime <= clock
}

func (s *ProcessState) String() string {
	return fmt.Sprintf("%s{arrival=%d burst=%d remaining=%d}",
		s.Process.ID, s.Process.ArrivalTime, s.Process.BurstTime, s.Remaining)
}

// ArrivalOrder returns the states sorted by arrival time, then by input index.
// The input slice is not modified.
func ArrivalOrder(states []*ProcessState) []*ProcessState {
	ordered := make([]*ProcessState, len(states))
	copy(ordered, states)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Process.ArrivalTime != ordered[j].Process.ArrivalTime {
			return ordered[i].Process.ArrivalTime < ordered[j].Process.ArrivalTime
		}
		return ordered[i].Index < ordered[j].Index
	})
	return ordered
}

// NextArrival returns the earliest arrival among unfinished processes that
// have not arrived by clock. ok is false when there is none.
func NextArrival(states []*ProcessState, clock int64) (next int64, ok bool) {
	for _, s := range states {
		if s.Finished() || s.Arrived(clock) {
			continue
		}
		if !ok || s.Process.ArrivalTime < next {
			next = s.Process.ArrivalTime
			ok = true
		}
	}
	return next, ok
}
