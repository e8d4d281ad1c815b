package schedulers

import (
	"sort"

	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
	"os-simulator/internal/responses"
)

// SJF runs non-preemptive shortest-job-first over parallel arrival and burst
// slices, labelling process i as "P<i+1>".
func SJF(arrivals, bursts []int64) (responses.ScheduleResponse, error) {
	processes, err := processesFromSlices(arrivals, bursts, nil)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return ScheduleShortestJobFirst(processes)
}

// ScheduleShortestJobFirst dispatches, each time the CPU frees up, the
// arrived process with the smallest burst and runs it to completion.
// A shorter job arriving mid-burst waits.
func ScheduleShortestJobFirst(processes []core.Process) (responses.ScheduleResponse, error) {
	if err := ValidateProcesses(processes); err != nil {
		return responses.ScheduleResponse{}, err
	}
	logrus.Debugf("running sjf algorithm over %d processes", len(processes))

	states := core.NewProcessStates(processes)
	cpu := core.NewCPU()

	for completed := 0; completed < len(states); completed++ {
		readyQueue := sortShortestJob(readyProcesses(states, cpu.Clock()))
		if len(readyQueue) == 0 {
			next, _ := core.NextArrival(states, cpu.Clock())
			cpu.IdleUntil(next)
			readyQueue = sortShortestJob(readyProcesses(states, cpu.Clock()))
		}
		shortestJob := readyQueue[0]
		logrus.Debugf("pid: %s dispatched at %d", shortestJob.Process.ID, cpu.Clock())
		cpu.Execute(shortestJob, shortestJob.Remaining)
	}

	return generateResponse(ShortestJobFirst, states, cpu), nil
}

// readyProcesses returns the arrived, unfinished processes in input order.
func readyProcesses(states []*core.ProcessState, clock int64) []*core.ProcessState {
	ready := make([]*core.ProcessState, 0, len(states))
	for _, s := range states {
		if !s.Finished() && s.Arrived(clock) {
			ready = append(ready, s)
		}
	}
	return ready
}

func sortShortestJob(processes []*core.ProcessState) []*core.ProcessState {
	sort.SliceStable(processes, func(i, j int) bool {
		if processes[i].Process.BurstTime != processes[j].Process.BurstTime {
			return processes[i].Process.BurstTime < processes[j].Process.BurstTime
		}
		return processes[i].Index < processes[j].Index
	})
	return processes
}
