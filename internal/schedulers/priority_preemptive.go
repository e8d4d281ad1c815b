package schedulers

import (
	"sort"

	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
	"os-simulator/internal/responses"
)

// PP runs preemptive priority scheduling over parallel arrival, burst and
// priority slices, labelling process i as "P<i+1>".
func PP(arrivals, bursts, priorities []int64) (responses.ScheduleResponse, error) {
	if priorities == nil {
		priorities = []int64{}
	}
	processes, err := processesFromSlices(arrivals, bursts, priorities)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return SchedulePriorityPreemptive(processes)
}

// SchedulePriorityPreemptive re-evaluates the ready set at every tick and
// gives the tick to the process with the lowest priority value, so a more
// urgent arrival evicts the running process on the tick it arrives.
func SchedulePriorityPreemptive(processes []core.Process) (responses.ScheduleResponse, error) {
	if err := ValidateProcesses(processes); err != nil {
		return responses.ScheduleResponse{}, err
	}
	logrus.Debugf("running preemptive priority algorithm over %d processes", len(processes))

	states := core.NewProcessStates(processes)
	cpu := core.NewCPU()

	completed := 0
	var running *core.ProcessState
	for completed < len(states) {
		readyQueue := sortByPriority(readyProcesses(states, cpu.Clock()))
		if len(readyQueue) == 0 {
			next, _ := core.NextArrival(states, cpu.Clock())
			cpu.IdleUntil(next)
			running = nil
			continue
		}
		selected := readyQueue[0]
		if running != nil && running != selected && !running.Finished() {
			logrus.Debugf("pid: %s preempted by %s at %d", running.Process.ID, selected.Process.ID, cpu.Clock())
		}
		running = selected
		cpu.Execute(selected, 1)
		if selected.Finished() {
			completed++
		}
	}

	return generateResponse(PriorityPreemptive, states, cpu), nil
}

func sortByPriority(processes []*core.ProcessState) []*core.ProcessState {
	sort.SliceStable(processes, func(i, j int) bool {
		if processes[i].Process.Priority != processes[j].Process.Priority {
			return processes[i].Process.Priority < processes[j].Process.Priority
		}
		return processes[i].Index < processes[j].Index
	})
	return processes
}
