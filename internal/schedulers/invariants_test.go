package schedulers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-simulator/internal/core"
	"os-simulator/internal/responses"
)

// randomWorkload builds n processes with arrivals spread over a window wide
// enough to produce idle gaps.
func randomWorkload(rng *rand.Rand, n int) []core.Process {
	processes := make([]core.Process, n)
	for i := range processes {
		processes[i] = core.Process{
			ID:          core.Label(i),
			ArrivalTime: rng.Int63n(int64(4*n + 1)),
			BurstTime:   1 + rng.Int63n(9),
			Priority:    rng.Int63n(4),
		}
	}
	return processes
}

func checkInvariants(t *testing.T, alg Algorithm, processes []core.Process, got responses.ScheduleResponse) {
	t.Helper()

	require.Len(t, got.Details, len(processes))
	var totalBurst int64
	for i, p := range processes {
		d := got.Details[i]
		totalBurst += p.BurstTime
		assert.Equal(t, p.ID, d.Job, "%s: results keep input order", alg)
		assert.GreaterOrEqual(t, d.CompletionTime, p.ArrivalTime+p.BurstTime, "%s: %s finished too early", alg, p.ID)
		assert.Equal(t, d.CompletionTime-p.ArrivalTime, d.TurnAroundTime, "%s: %s turnaround", alg, p.ID)
		assert.Equal(t, d.TurnAroundTime-p.BurstTime, d.WaitingTime, "%s: %s waiting", alg, p.ID)
		assert.GreaterOrEqual(t, d.ResponseTime, int64(0), "%s: %s response", alg, p.ID)
		assert.LessOrEqual(t, d.ResponseTime, d.WaitingTime, "%s: %s response exceeds waiting", alg, p.ID)
	}

	// Segments tile [0, makespan) with no overlap, no gap and no repeated neighbour.
	var covered, idle int64
	perJob := make(map[string]int64)
	for i, s := range got.Gantt {
		assert.Less(t, s.Start, s.Stop, "%s: segment %d is empty", alg, i)
		if i == 0 {
			assert.Equal(t, int64(0), s.Start, "%s: timeline starts at 0", alg)
		} else {
			prev := got.Gantt[i-1]
			assert.Equal(t, prev.Stop, s.Start, "%s: segment %d does not follow %d", alg, i, i-1)
			assert.NotEqual(t, prev.Job, s.Job, "%s: segments %d and %d not merged", alg, i-1, i)
		}
		covered += s.Stop - s.Start
		if s.Job == core.IdleJob {
			idle += s.Stop - s.Start
		} else {
			perJob[s.Job] += s.Stop - s.Start
		}
	}
	assert.Equal(t, totalBurst+got.IdleTime, covered, "%s: CPU time created or lost", alg)
	assert.Equal(t, got.IdleTime, idle, "%s: idle accounting", alg)
	assert.Equal(t, got.TotalTime, covered, "%s: makespan", alg)
	for _, p := range processes {
		assert.Equal(t, p.BurstTime, perJob[p.ID], "%s: %s ran for the wrong number of ticks", alg, p.ID)
	}
	if n := len(got.Gantt); n > 0 {
		assert.Equal(t, got.TotalTime, got.Gantt[n-1].Stop)
	}
}

func TestAllAlgorithms_InvariantsHoldOnRandomWorkloads(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	opts := Options{TimeQuantum: 3, LevelsTimeQuantum: []int64{1, 3, 0}}
	for trial := 0; trial < 200; trial++ {
		processes := randomWorkload(rng, 1+rng.Intn(8))
		for _, alg := range Algorithms() {
			got, err := Schedule(alg, processes, opts)
			require.NoError(t, err)
			checkInvariants(t, alg, processes, got)
		}
	}
}

func TestAllAlgorithms_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	processes := randomWorkload(rng, 12)
	for _, alg := range Algorithms() {
		first, err := Schedule(alg, processes, DefaultOptions())
		require.NoError(t, err)
		second, err := Schedule(alg, processes, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, first, second, "algorithm %s", alg)
	}
}

func TestNonPreemptive_CompletionEqualsArrivalPlusBurstOnlyWithoutWaiting(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		processes := randomWorkload(rng, 6)
		for _, alg := range []Algorithm{ShortestJobFirst, FirstComeFirstServe} {
			got, err := Schedule(alg, processes, DefaultOptions())
			require.NoError(t, err)
			for i, d := range got.Details {
				p := processes[i]
				// non-preemptive: one segment per process, so waiting equals response
				assert.Equal(t, d.ResponseTime, d.WaitingTime, "%s: %s", alg, p.ID)
				assert.Equal(t, d.WaitingTime == 0, d.CompletionTime == p.ArrivalTime+p.BurstTime)
			}
		}
	}
}
