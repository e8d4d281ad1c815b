package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// IdleJob is the job label of spans during which no process was ready.
const IdleJob = "idle"

// ScheduleTime is one uninterrupted span of CPU occupation.
type ScheduleTime struct {
	Job   string
	Start int64
	Stop  int64
}

// Length returns the number of ticks covered by the span.
func (s ScheduleTime) Length() int64 {
	return s.Stop - s.Start
}

type CpuMetric struct {
	TotalTime       int64
	UtilizationTime int64
	IdleTime        int64
}

// CPU is a single simulated core. It owns the simulation clock and records
// every dispatch and idle span in the order they happen.
type CPU struct {
	clock  int64
	log    []ScheduleTime
	metric CpuMetric
}

// NewCPU returns a CPU with its clock at tick 0.
func NewCPU() *CPU {
	return &CPU{log: make([]ScheduleTime, 0)}
}

// Clock returns the current tick.
func (c *CPU) Clock() int64 {
	return c.clock
}

// Execute runs the process for the given number of ticks starting at the
// current clock. It records the first dispatch and the completion time on
// the process state and advances the clock.
func (c *CPU) Execute(s *ProcessState, ticks int64) {
	if ticks <= 0 || ticks > s.Remaining {
		panic(fmt.Sprintf("Execute: %s cannot run %d ticks with %d remaining", s.Process.ID, ticks, s.Remaining))
	}
	if s.Process.ArrivalTime > c.clock {
		panic(fmt.Sprintf("Execute: %s dispatched at %d before its arrival at %d", s.Process.ID, c.clock, s.Process.ArrivalTime))
	}
	if s.FirstStart < 0 {
		s.FirstStart = c.clock
	}
	start := c.clock
	c.clock += ticks
	s.Remaining -= ticks
	if s.Remaining == 0 {
		s.CompletionTime = c.clock
	}
	c.log = append(c.log, ScheduleTime{Job: s.Process.ID, Start: start, Stop: c.clock})
	c.metric.UtilizationTime += ticks
	c.metric.TotalTime = c.clock

	logrus.WithFields(logrus.Fields{
		"pid":       s.Process.ID,
		"start":     start,
		"stop":      c.clock,
		"remaining": s.Remaining,
	}).Trace("cpu slice")
}

// IdleUntil advances the clock to tick, recording an idle span.
// It is a no-op if tick is not in the future.
func (c *CPU) IdleUntil(tick int64) {
	if tick <= c.clock {
		return
	}
	c.log = append(c.log, ScheduleTime{Job: IdleJob, Start: c.clock, Stop: tick})
	c.metric.IdleTime += tick - c.clock
	c.clock = tick
	c.metric.TotalTime = c.clock
}

// ScheduleTimes returns the raw execution log. Adjacent entries may belong
// to the same job; callers coalesce them when building a Gantt chart.
func (c *CPU) ScheduleTimes() []ScheduleTime {
	return c.log
}

// Metric returns the accumulated utilization figures.
func (c *CPU) Metric() CpuMetric {
	return c.metric
}
