package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// Simulate schedules processes with the given algorithm and computes the
// metrics for the resulting timeline.
func Simulate(algorithm Algorithm, processes []core.Process, timeQuantum int) (responses.ScheduleResponse, error) {
	timeline, err := algorithm.Schedule(processes, timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	response := responses.ScheduleResponse{
		Algorithm:     algorithm.String(),
		Timeline:      timeline,
		MetricsReport: GenerateMetrics(timeline, processes),
	}
	if algorithm == RoundRobin {
		if timeQuantum <= 0 {
			timeQuantum = DefaultTimeQuantum
		}
		response.TimeQuantum = timeQuantum
	}
	return response, nil
}
