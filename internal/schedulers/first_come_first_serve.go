package schedulers

import "cpu-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Equal arrivals keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) core.Timeline {
	jobs := core.SortByArrival(processes)

	cpu := core.NewCPU(0)
	for _, job := range jobs {
		cpu.IdleUntil(job.Arrival)
		cpu.Execute(job.PID, job.Burst)
	}
	return cpu.Timeline()
}
