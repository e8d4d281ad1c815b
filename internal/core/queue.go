package core

import "strings"

// ReadyQueue is a FIFO queue of processes waiting for the CPU.
type ReadyQueue struct {
	queue []*ProcessState
}

// Enqueue adds a process to the back of the queue.
func (rq *ReadyQueue) Enqueue(s *ProcessState) {
	rq.queue = append(rq.queue, s)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *ProcessState {
	if len(rq.queue) == 0 {
		return nil
	}
	head := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return head
}

// Len returns the number of queued processes.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, s := range rq.queue {
		sb.WriteString(s.Process.ID)
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Admitter feeds processes into a ready queue in arrival order as the clock advances.
type Admitter struct {
	pending []*ProcessState
}

// NewAdmitter returns an Admitter over states in arrival order (ties by input index).
func NewAdmitter(states []*ProcessState) *Admitter {
	return &Admitter{pending: ArrivalOrder(states)}
}

// AdmitUntil enqueues every pending process with arrival time <= clock and
// returns how many were admitted.
func (a *Admitter) AdmitUntil(clock int64, rq *ReadyQueue) int {
	n := 0
	for len(a.pending) > 0 && a.pending[0].Process.ArrivalTime <= clock {
		rq.Enqueue(a.pending[0])
		a.pending = a.pending[1:]
		n++
	}
	return n
}

// NextArrival returns the arrival time of the next pending process.
func (a *Admitter) NextArrival() (int64, bool) {
	if len(a.pending) == 0 {
		return 0, false
	}
	return a.pending[0].Process.ArrivalTime, true
}
