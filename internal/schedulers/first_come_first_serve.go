package schedulers

import (
	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
	"os-simulator/internal/responses"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order,
// breaking arrival ties by input position.
func ScheduleFirstComeFirstServe(processes []core.Process) (responses.ScheduleResponse, error) {
	if err := ValidateProcesses(processes); err != nil {
		return responses.ScheduleResponse{}, err
	}
	logrus.Debugf("running fcfs algorithm over %d processes", len(processes))

	states := core.NewProcessStates(processes)
	cpu := core.NewCPU()

	// sort jobs by arrival time
	for _, process := range core.ArrivalOrder(states) {
		cpu.IdleUntil(process.Process.ArrivalTime)
		logrus.Debugf("pid: %s dispatched at %d", process.Process.ID, cpu.Clock())
		cpu.Execute(process, process.Remaining)
	}

	return generateResponse(FirstComeFirstServe, states, cpu), nil
}
