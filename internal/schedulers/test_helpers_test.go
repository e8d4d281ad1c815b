package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"os-simulator/internal/responses"
)

type want struct {
	ft, tat, wat, rt int64
}

func seg(job string, start, stop int64) responses.GanttSegment {
	return responses.GanttSegment{Job: job, Start: start, Stop: stop}
}

// assertResults compares per-process metrics in input order.
func assertResults(t *testing.T, got []responses.ProcessResponse, wants map[string]want, order ...string) {
	t.Helper()
	if !assert.Len(t, got, len(order)) {
		return
	}
	for i, job := range order {
		w := wants[job]
		p := got[i]
		assert.Equal(t, job, p.Job, "row %d", i)
		assert.Equal(t, w.ft, p.CompletionTime, "%s completion", job)
		assert.Equal(t, w.tat, p.TurnAroundTime, "%s turnaround", job)
		assert.Equal(t, w.wat, p.WaitingTime, "%s waiting", job)
		assert.Equal(t, w.rt, p.ResponseTime, "%s response", job)
	}
}
