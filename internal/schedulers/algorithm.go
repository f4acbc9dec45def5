package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

// Algorithm selects one of the supported scheduling strategies.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota + 1
	ShortestJobFirst
	RoundRobin
	Priority
)

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin, Priority}
}

func (a Algorithm) String() string {
	switch a {
	case FirstComeFirstServe:
		return "FCFS"
	case ShortestJobFirst:
		return "SJF"
	case RoundRobin:
		return "Round Robin"
	case Priority:
		return "Priority"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Slug is the short name used in URLs.
func (a Algorithm) Slug() string {
	switch a {
	case FirstComeFirstServe:
		return "fcfs"
	case ShortestJobFirst:
		return "sjf"
	case RoundRobin:
		return "rr"
	case Priority:
		return "priority"
	}
	return ""
}

func (a Algorithm) Valid() bool {
	return a >= FirstComeFirstServe && a <= Priority
}

// ParseAlgorithm accepts either the display label or the slug, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "fifo", "first come first serve":
		return FirstComeFirstServe, nil
	case "sjf", "shortest job first":
		return ShortestJobFirst, nil
	case "rr", "round robin", "round-robin", "roundrobin":
		return RoundRobin, nil
	case "priority":
		return Priority, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Schedule runs the algorithm over processes. timeQuantum is only read by
// RoundRobin.
func (a Algorithm) Schedule(processes []core.Process, timeQuantum int) (core.Timeline, error) {
	switch a {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes), nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes), nil
	case RoundRobin:
		return ScheduleRoundRobin(processes, timeQuantum), nil
	case Priority:
		return SchedulePriority(processes), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
}
