// Package store holds the application state around the scheduling engine:
// the process table, the fixed memory blocks processes are admitted into,
// the selected algorithm and the most recent simulation results.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
	"os-simulator/internal/responses"
	"os-simulator/internal/schedulers"
)

var (
	ErrDuplicateProcess = errors.New("process already exists")
	ErrProcessNotFound  = errors.New("process not found")
	ErrNoMemory         = errors.New("no free memory block large enough")
	ErrNoProcesses      = errors.New("no processes to schedule")
)

// ProcessState is the lifecycle state shown for a process in the table.
type ProcessState string

const (
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateTerminated ProcessState = "terminated"
)

// Process is a row of the process table.
type Process struct {
	ID             string       `json:"id"`
	Priority       int64        `json:"priority"`
	State          ProcessState `json:"state"`
	ArrivalTime    int64        `json:"arrival_time"`
	BurstTime      int64        `json:"burst_time"`
	MemoryRequired int64        `json:"memory_required"`
	MemoryBlock    *int         `json:"memory_block,omitempty"`
}

// MemoryBlock is one equally sized slot of simulated memory.
type MemoryBlock struct {
	ID        int    `json:"id"`
	Size      int64  `json:"size"`
	Allocated bool   `json:"allocated"`
	ProcessID string `json:"process_id,omitempty"`
}

// Selection is the algorithm the next simulation will use.
type Selection struct {
	Algorithm schedulers.Algorithm `json:"algorithm"`
	Options   schedulers.Options   `json:"options"`
}

// Store is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	processes []Process
	memory    []MemoryBlock
	selection Selection
	results   *responses.ScheduleResponse
}

// New creates a store with blockCount free memory blocks of blockSize units.
func New(blockCount int, blockSize int64, selection Selection) *Store {
	memory := make([]MemoryBlock, blockCount)
	for i := range memory {
		memory[i] = MemoryBlock{ID: i, Size: blockSize}
	}
	return &Store{
		processes: make([]Process, 0),
		memory:    memory,
		selection: selection,
	}
}

// AddProcess allocates the first free block that fits the process and
// appends it to the table. Nothing changes if no block fits.
func (s *Store) AddProcess(p Process) (Process, error) {
	if err := validate(p); err != nil {
		return Process{}, err
	}
	if p.MemoryRequired < 0 {
		return Process{}, fmt.Errorf("memory required must be non-negative, got %d: %w", p.MemoryRequired, schedulers.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(p.ID) >= 0 {
		return Process{}, fmt.Errorf("%s: %w", p.ID, ErrDuplicateProcess)
	}
	block := s.allocate(p.ID, p.MemoryRequired)
	if block < 0 {
		logrus.Warnf("pid: %s rejected, no block of %d units free", p.ID, p.MemoryRequired)
		return Process{}, fmt.Errorf("%s needs %d: %w", p.ID, p.MemoryRequired, ErrNoMemory)
	}
	p.MemoryBlock = &block
	if p.State == "" {
		p.State = StateReady
	}
	s.processes = append(s.processes, p)
	logrus.Infof("pid: %s added in memory block %d", p.ID, block)
	return p, nil
}

// RemoveProcess frees the process's memory block and drops it from the table.
func (s *Store) RemoveProcess(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s: %w", id, ErrProcessNotFound)
	}
	s.deallocate(id)
	s.processes = append(s.processes[:i], s.processes[i+1:]...)
	logrus.Infof("pid: %s removed", id)
	return nil
}

// UpdateProcess replaces the scheduling attributes of an existing process.
// Its memory allocation is kept.
func (s *Store) UpdateProcess(p Process) (Process, error) {
	if err := validate(p); err != nil {
		return Process{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(p.ID)
	if i < 0 {
		return Process{}, fmt.Errorf("%s: %w", p.ID, ErrProcessNotFound)
	}
	current := s.processes[i]
	current.Priority = p.Priority
	current.ArrivalTime = p.ArrivalTime
	current.BurstTime = p.BurstTime
	if p.State != "" {
		current.State = p.State
	}
	s.processes[i] = current
	return current, nil
}

// Processes returns a copy of the process table in insertion order.
func (s *Store) Processes() []Process {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Process, len(s.processes))
	copy(out, s.processes)
	return out
}

// MemoryBlocks returns a copy of the memory blocks.
func (s *Store) MemoryBlocks() []MemoryBlock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MemoryBlock, len(s.memory))
	copy(out, s.memory)
	return out
}

// SetSelection changes the algorithm used by Simulate.
func (s *Store) SetSelection(sel Selection) error {
	if _, err := schedulers.ParseAlgorithm(string(sel.Algorithm)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = sel
	return nil
}

// Selection returns the current algorithm selection.
func (s *Store) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// Simulate runs the selected algorithm over the process table and keeps the
// response as the latest results.
func (s *Store) Simulate() (responses.ScheduleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.processes) == 0 {
		return responses.ScheduleResponse{}, ErrNoProcesses
	}
	processes := make([]core.Process, len(s.processes))
	for i, p := range s.processes {
		processes[i] = p.engineProcess()
	}
	response, err := schedulers.Schedule(s.selection.Algorithm, processes, s.selection.Options)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	s.results = &response
	return response, nil
}

// Results returns the latest simulation response, if any.
func (s *Store) Results() (responses.ScheduleResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.results == nil {
		return responses.ScheduleResponse{}, false
	}
	return *s.results, true
}

// validate applies the engine's per-process rules to a single row so bad
// rows are refused on entry instead of failing every later Simulate.
func validate(p Process) error {
	return schedulers.ValidateProcesses([]core.Process{p.engineProcess()})
}

func (p Process) engineProcess() core.Process {
	return core.Process{
		ID:          p.ID,
		ArrivalTime: p.ArrivalTime,
		BurstTime:   p.BurstTime,
		Priority:    p.Priority,
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.processes {
		if s.processes[i].ID == id {
			return i
		}
	}
	return -1
}

// allocate is a first-fit scan; it returns the block id or -1.
func (s *Store) allocate(id string, required int64) int {
	for i := range s.memory {
		if !s.memory[i].Allocated && s.memory[i].Size >= required {
			s.memory[i].Allocated = true
			s.memory[i].ProcessID = id
			return s.memory[i].ID
		}
	}
	return -1
}

func (s *Store) deallocate(id string) {
	for i := range s.memory {
		if s.memory[i].ProcessID == id {
			s.memory[i].Allocated = false
			s.memory[i].ProcessID = ""
		}
	}
}
