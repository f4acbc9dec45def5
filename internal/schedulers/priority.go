package schedulers

import "cpu-scheduler/internal/core"

// SchedulePriority is non-preemptive static priority scheduling. The arrived
// job with the lowest priority number runs to completion; ties go to whichever
// job comes first in arrival order.
func SchedulePriority(processes []core.Process) core.Timeline {
	jobs := core.SortByArrival(processes)
	if len(jobs) == 0 {
		return core.Timeline{}
	}

	cpu := core.NewCPU(jobs[0].Arrival)
	completed := make([]bool, len(jobs))

	for done := 0; done < len(jobs); {
		selected := -1
		earliest := -1
		for i, job := range jobs {
			if completed[i] {
				continue
			}
			if earliest == -1 {
				earliest = job.Arrival
			}
			if job.Arrival > cpu.Clock() {
				continue
			}
			if selected == -1 || job.Priority < jobs[selected].Priority {
				selected = i
			}
		}

		if selected == -1 {
			cpu.IdleUntil(earliest)
			continue
		}

		job := jobs[selected]
		cpu.Execute(job.PID, job.Burst)
		completed[selected] = true
		done++
	}
	return cpu.Timeline()
}
