package schedulers

import (
	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
	"os-simulator/internal/responses"
)

// RR runs round robin with the given quantum over parallel arrival and burst
// slices, labelling process i as "P<i+1>".
func RR(arrivals, bursts []int64, quantum int64) (responses.ScheduleResponse, error) {
	processes, err := processesFromSlices(arrivals, bursts, nil)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return ScheduleRoundRobin(processes, quantum)
}

// ScheduleRoundRobin serves a FIFO ready queue, giving the head at most
// timeQuantum ticks per dispatch. Processes that arrive while a slice runs
// (including at its last tick) join the queue before the preempted process
// is put back, so a process only runs twice in a row when it is alone.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int64) (responses.ScheduleResponse, error) {
	if err := ValidateProcesses(processes); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := validateTimeQuantum(timeQuantum); err != nil {
		return responses.ScheduleResponse{}, err
	}
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d", timeQuantum)

	states := core.NewProcessStates(processes)
	cpu := core.NewCPU()
	admitter := core.NewAdmitter(states)
	var roundRobinQueue core.ReadyQueue

	admitter.AdmitUntil(cpu.Clock(), &roundRobinQueue)
	for completed := 0; completed < len(states); {
		if roundRobinQueue.Len() == 0 {
			next, _ := admitter.NextArrival()
			cpu.IdleUntil(next)
			admitter.AdmitUntil(cpu.Clock(), &roundRobinQueue)
			continue
		}

		process := roundRobinQueue.Dequeue()
		ticks := process.Remaining
		if ticks > timeQuantum {
			ticks = timeQuantum
		}
		cpu.Execute(process, ticks)
		admitter.AdmitUntil(cpu.Clock(), &roundRobinQueue)

		if process.Finished() {
			completed++
			continue
		}
		logrus.Debugf("pid: %s context switch at %d, queue %s", process.Process.ID, cpu.Clock(), roundRobinQueue.String())
		roundRobinQueue.Enqueue(process)
	}

	return generateResponse(RoundRobin, states, cpu), nil
}
