package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

func TestRender(t *testing.T) {
	processes := []core.Process{
		{PID: 1, Arrival: 0, Burst: 5},
		{PID: 2, Arrival: 1, Burst: 3},
	}
	response, err := schedulers.Simulate(schedulers.RoundRobin, processes, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	Render(&buf, response)
	out := buf.String()

	assert.Contains(t, out, "Round Robin (quantum 2)")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "0\t2\t4\t6\t7\t8")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "3.00")
	assert.Contains(t, out, "100.00%")
	// footers are upper-cased by the table writer
	assert.Contains(t, strings.ToLower(out), "0.25/t")
}

func TestOutputGantt_Idle(t *testing.T) {
	var buf bytes.Buffer
	outputGantt(&buf, core.Timeline{{PID: 1, Start: 0, End: 2}, {PID: 2, Start: 5, End: 6}})

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[1], "idle")
	assert.Equal(t, "0\t2\t5\t6", lines[2])
}

func TestOutputGantt_LeadingIdle(t *testing.T) {
	var buf bytes.Buffer
	outputGantt(&buf, core.Timeline{{PID: 1, Start: 3, End: 5}, {PID: 2, Start: 5, End: 6}})

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "|"+cell("idle")+"|"+cell("1")+"|"+cell("2")+"|", lines[1])
	assert.Equal(t, "0\t3\t5\t6", lines[2])
}

func TestOutputGantt_Empty(t *testing.T) {
	var buf bytes.Buffer
	outputGantt(&buf, core.Timeline{})
	assert.Contains(t, buf.String(), "(empty)")
}
