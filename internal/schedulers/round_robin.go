package schedulers

import "cpu-scheduler/internal/core"

const DefaultTimeQuantum = 2

// ScheduleRoundRobin gives each ready process at most timeQuantum units before
// moving it to the back of the queue. Processes that arrive while a slice is
// running are queued ahead of the preempted process. A non-positive quantum
// falls back to DefaultTimeQuantum.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) core.Timeline {
	if timeQuantum <= 0 {
		timeQuantum = DefaultTimeQuantum
	}

	jobs := core.SortByArrival(processes)
	if len(jobs) == 0 {
		return core.Timeline{}
	}

	remaining := make(map[int]int, len(jobs))
	for _, job := range jobs {
		remaining[job.PID] = job.Burst
	}

	cpu := core.NewCPU(jobs[0].Arrival)
	readyQueue := make([]core.Process, 0, len(jobs))
	next := 0

	// admit queues every job that arrived at or before t.
	admit := func(t int) {
		for next < len(jobs) && jobs[next].Arrival <= t {
			readyQueue = append(readyQueue, jobs[next])
			next++
		}
	}

	for unfinished := len(jobs); unfinished > 0; {
		admit(cpu.Clock())

		if len(readyQueue) == 0 {
			cpu.IdleUntil(jobs[next].Arrival)
			continue
		}

		job := readyQueue[0]
		readyQueue = readyQueue[1:]

		slice := min(timeQuantum, remaining[job.PID])
		cpu.Execute(job.PID, slice)
		remaining[job.PID] -= slice

		if remaining[job.PID] == 0 {
			unfinished--
			continue
		}

		// arrivals inside [start, end) of the slice go before the preempted job
		admit(cpu.Clock() - 1)
		readyQueue = append(readyQueue, job)
	}
	return cpu.Timeline()
}
