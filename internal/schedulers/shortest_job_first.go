package schedulers

import (
	"container/heap"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive SJF: whenever the CPU frees up,
// the ready job with the smallest burst runs to completion. Ties go to the
// earlier arrival, then to the lower pid.
func ScheduleShortestJobFirst(processes []core.Process) core.Timeline {
	jobs := core.SortByArrival(processes)
	if len(jobs) == 0 {
		return core.Timeline{}
	}

	cpu := core.NewCPU(jobs[0].Arrival)
	readyQueue := &shortestJobQueue{}
	next := 0

	for next < len(jobs) || readyQueue.Len() > 0 {
		for next < len(jobs) && jobs[next].Arrival <= cpu.Clock() {
			heap.Push(readyQueue, jobs[next])
			next++
		}

		if readyQueue.Len() == 0 {
			cpu.IdleUntil(jobs[next].Arrival)
			continue
		}

		shortestJob := heap.Pop(readyQueue).(core.Process)
		cpu.Execute(shortestJob.PID, shortestJob.Burst)
	}
	return cpu.Timeline()
}

type shortestJobQueue []core.Process

func (q shortestJobQueue) Len() int { return len(q) }

func (q shortestJobQueue) Less(i, j int) bool {
	if q[i].Burst != q[j].Burst {
		return q[i].Burst < q[j].Burst
	}
	if q[i].Arrival != q[j].Arrival {
		return q[i].Arrival < q[j].Arrival
	}
	return q[i].PID < q[j].PID
}

func (q shortestJobQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *shortestJobQueue) Push(x any) {
	*q = append(*q, x.(core.Process))
}

func (q *shortestJobQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[0 : n-1]
	return x
}
