package responses

import "cpu-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type MetricsReport struct {
	TotalTime             int               `json:"total_time"`
	BusyTime              int               `json:"busy_time"`
	IdleTime              int               `json:"idle_time"`
	ContextSwitches       int               `json:"context_switches"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
}

type ScheduleResponse struct {
	Algorithm   string        `json:"algorithm"`
	TimeQuantum int           `json:"time_quantum,omitempty"`
	Timeline    core.Timeline `json:"timeline"`
	MetricsReport
}
