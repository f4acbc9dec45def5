package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

var ErrMissingField = errors.New("missing field")

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`

	// missing lists required JSON fields that were absent or null.
	missing []string
}

// UnmarshalJSON requires process_id, arrival_time and burst_time; priority
// defaults to 0.
func (j *Job) UnmarshalJSON(data []byte) error {
	var raw struct {
		ProcessId   *int `json:"process_id"`
		ArrivalTime *int `json:"arrival_time"`
		BurstTime   *int `json:"burst_time"`
		Priority    int  `json:"priority"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*j = Job{Priority: raw.Priority}
	if raw.ProcessId == nil {
		j.missing = append(j.missing, "process_id")
	} else {
		j.ProcessId = *raw.ProcessId
	}
	if raw.ArrivalTime == nil {
		j.missing = append(j.missing, "arrival_time")
	} else {
		j.ArrivalTime = *raw.ArrivalTime
	}
	if raw.BurstTime == nil {
		j.missing = append(j.missing, "burst_time")
	} else {
		j.BurstTime = *raw.BurstTime
	}
	return nil
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty"`
}

// Processes converts the jobs into validated process records, preserving
// their order.
func (r ScheduleRequests) Processes() ([]core.Process, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		if len(job.missing) > 0 {
			return nil, fmt.Errorf("job %d: %w: %s", i, ErrMissingField, strings.Join(job.missing, ", "))
		}
		p, err := core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		processes = append(processes, p)
	}
	if err := core.ValidateProcesses(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

func JobsFromProcesses(processes []core.Process) []Job {
	jobs := make([]Job, len(processes))
	for i, p := range processes {
		jobs[i] = Job{ProcessId: p.PID, ArrivalTime: p.Arrival, BurstTime: p.Burst, Priority: p.Priority}
	}
	return jobs
}
