package schedulers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"os-simulator/internal/core"
)

func TestValidateProcesses_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
	}{
		{"zero burst", []core.Process{{ID: "P1", BurstTime: 0}}},
		{"negative burst", []core.Process{{ID: "P1", BurstTime: -2}}},
		{"negative arrival", []core.Process{{ID: "P1", ArrivalTime: -1, BurstTime: 1}}},
		{"empty id", []core.Process{{BurstTime: 1}}},
		{"reserved id", []core.Process{{ID: core.IdleJob, BurstTime: 1}}},
		{"duplicate id", []core.Process{{ID: "P1", BurstTime: 1}, {ID: "P1", BurstTime: 2}}},
		{"clock overflow from arrival", []core.Process{{ID: "P1", ArrivalTime: math.MaxInt64, BurstTime: 1}}},
		{"total burst overflow", []core.Process{{ID: "P1", BurstTime: math.MaxInt64}, {ID: "P2", BurstTime: math.MaxInt64}}},
		{"late arrival plus earlier bursts overflow", []core.Process{{ID: "P1", BurstTime: 10}, {ID: "P2", ArrivalTime: math.MaxInt64 - 5, BurstTime: 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateProcesses(tc.processes), ErrInvalidInput)
			for _, alg := range Algorithms() {
				_, err := Schedule(alg, tc.processes, DefaultOptions())
				assert.ErrorIs(t, err, ErrInvalidInput, "algorithm %s", alg)
			}
		})
	}
}

func TestValidateProcesses_AcceptsLateArrivalsAndNegativePriority(t *testing.T) {
	assert.NoError(t, ValidateProcesses([]core.Process{
		{ID: "P1", ArrivalTime: 100, BurstTime: 1, Priority: -5},
	}))
	assert.NoError(t, ValidateProcesses(nil))
}

func TestValidateProcesses_AcceptsScheduleEndingAtMaxTick(t *testing.T) {
	assert.NoError(t, ValidateProcesses([]core.Process{
		{ID: "P1", ArrivalTime: math.MaxInt64 - 3, BurstTime: 2},
		{ID: "P2", ArrivalTime: 0, BurstTime: 1},
	}))
}

func TestEntryPoints_ClockOverflow_Rejected(t *testing.T) {
	_, err := SJF([]int64{math.MaxInt64}, []int64{1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = RR([]int64{0, 0}, []int64{math.MaxInt64, math.MaxInt64}, math.MaxInt64)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEntryPoints_LengthMismatch_Rejected(t *testing.T) {
	_, err := SJF([]int64{0, 1}, []int64{1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = RR([]int64{0}, []int64{1, 2}, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = PP([]int64{0}, []int64{1, 2}, []int64{0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidationError_NamesOffendingProcess(t *testing.T) {
	_, err := SJF([]int64{0, 0}, []int64{1, 0})
	assert.ErrorContains(t, err, "process[1] (P2)")
	assert.ErrorContains(t, err, "burst time must be at least 1, got 0")
}
