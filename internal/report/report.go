package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// Render writes a title, a Gantt line and the per-process table for one run.
func Render(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	outputTitle(w, title)
	outputGantt(w, response.Timeline)
	outputSchedule(w, response.MetricsReport)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt draws the timeline from time 0; gaps, including one before the
// first segment, are shown as idle cells.
func outputGantt(w io.Writer, timeline core.Timeline) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	_, _ = fmt.Fprint(w, "|")
	previousEnd := 0
	for _, s := range timeline {
		if previousEnd < s.Start {
			_, _ = fmt.Fprint(w, cell("idle"), "|")
		}
		_, _ = fmt.Fprint(w, cell(fmt.Sprint(s.PID)), "|")
		previousEnd = s.End
	}
	_, _ = fmt.Fprintln(w)

	previousEnd = 0
	for _, s := range timeline {
		if previousEnd < s.Start {
			_, _ = fmt.Fprint(w, fmt.Sprint(previousEnd), "\t")
		}
		_, _ = fmt.Fprint(w, fmt.Sprint(s.Start), "\t")
		previousEnd = s.End
	}
	_, _ = fmt.Fprint(w, fmt.Sprint(timeline[len(timeline)-1].End))
	_, _ = fmt.Fprintf(w, "\n\n")
}

func cell(label string) string {
	padding := strings.Repeat(" ", max(0, (8-len(label))/2))
	return padding + label + padding
}

func outputSchedule(w io.Writer, metrics responses.MetricsReport) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	for _, d := range metrics.Details {
		table.Append([]string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Utilization\n%.2f%%", metrics.CpuUtilization),
		fmt.Sprintf("Average\n%.2f", metrics.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", metrics.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", metrics.CpuThroughput)})
	table.Render()
}
