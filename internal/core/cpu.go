package core

import "fmt"

// Segment is one uninterrupted span [Start, End) during which PID held the CPU.
type Segment struct {
	PID   int `json:"pid"`
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

// Timeline is the chronological list of segments produced by one run.
type Timeline []Segment

// BusyTime is the total time the CPU spent executing any process.
func (t Timeline) BusyTime() int {
	busy := 0
	for _, s := range t {
		busy += s.Duration()
	}
	return busy
}

// Completion maps every pid in the timeline to the end of its last segment.
func (t Timeline) Completion() map[int]int {
	completion := make(map[int]int)
	for _, s := range t {
		if end, ok := completion[s.PID]; !ok || s.End > end {
			completion[s.PID] = s.End
		}
	}
	return completion
}

// FirstStart maps every pid in the timeline to the start of its first segment.
func (t Timeline) FirstStart() map[int]int {
	first := make(map[int]int)
	for _, s := range t {
		if _, ok := first[s.PID]; !ok {
			first[s.PID] = s.Start
		}
	}
	return first
}

// ContextSwitches counts adjacent segments that belong to different pids.
func (t Timeline) ContextSwitches() int {
	switches := 0
	for i := 1; i < len(t); i++ {
		if t[i].PID != t[i-1].PID {
			switches++
		}
	}
	return switches
}

// CPU is the single simulated processor of one run. It owns the clock and the
// timeline; a new CPU is created for every simulation.
type CPU struct {
	clock    int
	timeline Timeline
}

func NewCPU(start int) *CPU {
	return &CPU{
		clock:    start,
		timeline: make(Timeline, 0),
	}
}

func (c *CPU) Clock() int {
	return c.clock
}

// IdleUntil advances the clock to t. The clock never moves backwards.
func (c *CPU) IdleUntil(t int) {
	if t > c.clock {
		c.clock = t
	}
}

// Execute runs pid for duration time units starting at the current clock.
// It panics on a non-positive duration: processes are validated by NewProcess,
// so one reaching the CPU means the caller skipped validation.
func (c *CPU) Execute(pid, duration int) {
	if duration <= 0 {
		panic(fmt.Sprintf("core: pid %d executed for non-positive duration %d", pid, duration))
	}
	c.timeline = append(c.timeline, Segment{PID: pid, Start: c.clock, End: c.clock + duration})
	c.clock += duration
}

func (c *CPU) Timeline() Timeline {
	return c.timeline
}
