package core

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNegativeArrival  = errors.New("arrival time must not be negative")
	ErrNonPositiveBurst = errors.New("burst time must be positive")
	ErrDuplicatePID     = errors.New("duplicate process id")
)

// Process is one scheduling input. Lower Priority values run first under the
// priority scheduler; the other algorithms ignore it.
type Process struct {
	PID      int `json:"pid"`
	Arrival  int `json:"arrival"`
	Burst    int `json:"burst"`
	Priority int `json:"priority"`
}

func NewProcess(pid, arrival, burst, priority int) (Process, error) {
	if arrival < 0 {
		return Process{}, fmt.Errorf("%w: pid %d arrival %d", ErrNegativeArrival, pid, arrival)
	}
	if burst <= 0 {
		return Process{}, fmt.Errorf("%w: pid %d burst %d", ErrNonPositiveBurst, pid, burst)
	}
	return Process{PID: pid, Arrival: arrival, Burst: burst, Priority: priority}, nil
}

// ValidateProcesses checks every record and rejects repeated pids.
func ValidateProcesses(processes []Process) error {
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if _, err := NewProcess(p.PID, p.Arrival, p.Burst, p.Priority); err != nil {
			return err
		}
		if _, ok := seen[p.PID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicatePID, p.PID)
		}
		seen[p.PID] = struct{}{}
	}
	return nil
}

// SortByArrival returns a copy of processes ordered by arrival time. Equal
// arrivals keep their original relative order. The input is never modified.
func SortByArrival(processes []Process) []Process {
	jobs := make([]Process, len(processes))
	copy(jobs, processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Arrival < jobs[j].Arrival
	})
	return jobs
}
