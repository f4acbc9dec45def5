package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateMetrics derives per-process and aggregate figures from a finished
// timeline. Pids in the timeline that are not in processes get no detail row
// but still count towards busy time and the span.
func GenerateMetrics(timeline core.Timeline, processes []core.Process) responses.MetricsReport {
	byPID := make(map[int]core.Process, len(processes))
	for _, p := range processes {
		byPID[p.PID] = p
	}

	completion := timeline.Completion()
	firstStart := timeline.FirstStart()

	proccessDetails := make([]responses.ProcessResponse, 0, len(completion))
	lastCompletion := 0
	for pid, completionTime := range completion {
		if completionTime > lastCompletion {
			lastCompletion = completionTime
		}
		process, ok := byPID[pid]
		if !ok {
			continue
		}
		proccessDetails = append(proccessDetails, generateProcessDetails(process, completionTime, firstStart[pid]))
	}
	sort.Slice(proccessDetails, func(i, j int) bool {
		return proccessDetails[i].ProcessId < proccessDetails[j].ProcessId
	})

	return generateResponse(proccessDetails, timeline, totalSpan(lastCompletion, processes))
}

func generateProcessDetails(process core.Process, completionTime, firstStart int) responses.ProcessResponse {
	turnAroundTime := completionTime - process.Arrival
	return responses.ProcessResponse{
		ProcessId:      process.PID,
		ArrivalTime:    process.Arrival,
		BurstTime:      process.Burst,
		Priority:       process.Priority,
		CompletionTime: completionTime,
		ResponseTime:   firstStart - process.Arrival,
		TurnAroundTime: turnAroundTime,
		WaitingTime:    turnAroundTime - process.Burst,
	}
}

func generateResponse(proccessDetails []responses.ProcessResponse, timeline core.Timeline, span int) responses.MetricsReport {
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	busyTime := timeline.BusyTime()
	report := responses.MetricsReport{
		BusyTime:              busyTime,
		ContextSwitches:       timeline.ContextSwitches(),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
	}
	if span > 0 {
		report.TotalTime = span
		report.IdleTime = span - busyTime
		report.CpuUtilization = float64(busyTime) / float64(span) * 100
		report.CpuThroughput = float64(len(proccessDetails)) / float64(span)
	}
	return report
}

// totalSpan is the observed window from the first arrival of any input process
// to the last completion.
func totalSpan(lastCompletion int, processes []core.Process) int {
	if len(processes) == 0 {
		return 0
	}
	firstArrival := processes[0].Arrival
	for _, p := range processes[1:] {
		if p.Arrival < firstArrival {
			firstArrival = p.Arrival
		}
	}
	return lastCompletion - firstArrival
}
