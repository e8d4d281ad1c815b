package schedulers

import (
	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
	"os-simulator/internal/responses"
	"os-simulator/internal/util"
)

func generateResponse(alg Algorithm, states []*core.ProcessState, cpu *core.CPU) responses.ScheduleResponse {
	processDetails := make([]responses.ProcessResponse, 0, len(states))
	for _, s := range states {
		processDetails = append(processDetails, generateProcessDetails(s))
	}
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)

	metric := cpu.Metric()
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = 1 - float64(metric.IdleTime)/float64(metric.TotalTime)
		throughput = float64(len(states)) / float64(metric.TotalTime)
	}

	response := responses.ScheduleResponse{
		Algorithm:             string(alg),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               processDetails,
		Gantt:                 BuildGantt(cpu.ScheduleTimes()),
	}
	logrus.WithFields(logrus.Fields{
		"algorithm": alg,
		"processes": len(states),
		"makespan":  metric.TotalTime,
		"idle":      metric.IdleTime,
	}).Debug("simulation complete")
	return response
}

func generateProcessDetails(s *core.ProcessState) responses.ProcessResponse {
	turnAroundTime := s.CompletionTime - s.Process.ArrivalTime
	return responses.ProcessResponse{
		Job:            s.Process.ID,
		ArrivalTime:    s.Process.ArrivalTime,
		BurstTime:      s.Process.BurstTime,
		Priority:       s.Process.Priority,
		CompletionTime: s.CompletionTime,
		TurnAroundTime: turnAroundTime,
		WaitingTime:    turnAroundTime - s.Process.BurstTime,
		ResponseTime:   s.FirstStart - s.Process.ArrivalTime,
	}
}

// BuildGantt coalesces a chronological execution log into maximal segments:
// adjacent entries of the same job that touch are merged, empty entries dropped.
func BuildGantt(times []core.ScheduleTime) []responses.GanttSegment {
	gantt := make([]responses.GanttSegment, 0, len(times))
	for _, t := range times {
		if t.Length() <= 0 {
			continue
		}
		if n := len(gantt); n > 0 && gantt[n-1].Job == t.Job && gantt[n-1].Stop == t.Start {
			gantt[n-1].Stop = t.Stop
			continue
		}
		gantt = append(gantt, responses.GanttSegment{Job: t.Job, Start: t.Start, Stop: t.Stop})
	}
	return gantt
}
