package schedulers

import (
	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
	"os-simulator/internal/responses"
)

// ScheduleMultilevelFeedbackQueue serves the highest non-empty level first.
// Arrivals enter level 0; a process that exhausts its level's quantum moves
// down one level. A zero quantum on the last level runs its head to completion.
// Slices are never cut short by arrivals: new work is admitted at slice
// boundaries and picked up by the next dispatch.
func ScheduleMultilevelFeedbackQueue(processes []core.Process, timeQuantumList []int64) (responses.ScheduleResponse, error) {
	if err := ValidateProcesses(processes); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := validateLevelsTimeQuantum(timeQuantumList); err != nil {
		return responses.ScheduleResponse{}, err
	}
	logrus.Debugf("running mlfq algorithm with timeQuantum = %v", timeQuantumList)

	states := core.NewProcessStates(processes)
	cpu := core.NewCPU()
	admitter := core.NewAdmitter(states)
	levels := make([]core.ReadyQueue, len(timeQuantumList))

	admitter.AdmitUntil(cpu.Clock(), &levels[0])
	for completed := 0; completed < len(states); {
		level := highestNonEmptyLevel(levels)
		if level < 0 {
			next, _ := admitter.NextArrival()
			cpu.IdleUntil(next)
			admitter.AdmitUntil(cpu.Clock(), &levels[0])
			continue
		}

		process := levels[level].Dequeue()
		ticks := process.Remaining
		if q := timeQuantumList[level]; q > 0 && ticks > q {
			ticks = q
		}
		cpu.Execute(process, ticks)
		admitter.AdmitUntil(cpu.Clock(), &levels[0])

		if process.Finished() {
			completed++
			continue
		}
		nextLevel := getNextLevel(level, len(levels))
		logrus.Debugf("pid: %s used its quantum at level %d, moved to level %d", process.Process.ID, level, nextLevel)
		levels[nextLevel].Enqueue(process)
	}

	return generateResponse(MultilevelFeedbackQueue, states, cpu), nil
}

func highestNonEmptyLevel(levels []core.ReadyQueue) int {
	for i := range levels {
		if levels[i].Len() > 0 {
			return i
		}
	}
	return -1
}

// getNextLevel returns the level below current; the last level keeps its processes.
func getNextLevel(current, levelCount int) int {
	if current < levelCount-1 {
		return current + 1
	}
	return current
}
