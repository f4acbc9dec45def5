package main

import (
	"bytes"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

func writeJobs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testSetup() (*config.SchedulerConfig, *slog.Logger) {
	return &config.SchedulerConfig{RoundRobinTimeQuantum: 2}, slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_Simulate(t *testing.T) {
	cfg, logger := testSetup()
	path := writeJobs(t, "pid,arrival,burst,priority\n1,0,5,3\n2,1,3,1\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"simulate", "all", path}, cfg, logger, &out))

	for _, algorithm := range schedulers.Algorithms() {
		assert.Contains(t, out.String(), algorithm.String())
	}
	assert.Contains(t, out.String(), "Round Robin (quantum 2)")
}

func TestRun_SimulateQuantum(t *testing.T) {
	cfg, logger := testSetup()
	path := writeJobs(t, "1,0,5\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"simulate", "rr", path, "3"}, cfg, logger, &out))
	assert.Contains(t, out.String(), "Round Robin (quantum 3)")
	assert.Contains(t, out.String(), "0\t3\t5")
}

func TestRun_Errors(t *testing.T) {
	cfg, logger := testSetup()
	path := writeJobs(t, "1,0,5\n")
	badPath := writeJobs(t, "1,0,0\n")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown command", args: []string{"plot"}, wantErr: ErrInvalidArgs},
		{name: "missing file", args: []string{"simulate", "fcfs"}, wantErr: ErrInvalidArgs},
		{name: "bad quantum", args: []string{"simulate", "rr", path, "zero"}, wantErr: ErrInvalidArgs},
		{name: "unknown algorithm", args: []string{"simulate", "lottery", path}, wantErr: schedulers.ErrUnknownAlgorithm},
		{name: "invalid job", args: []string{"simulate", "fcfs", badPath}},
		{name: "no such file", args: []string{"simulate", "fcfs", filepath.Join(t.TempDir(), "missing.csv")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, cfg, logger, io.Discard)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRun_Remote(t *testing.T) {
	cfg, logger := testSetup()
	app := api.NewApp(cfg, logger)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln)
	}()
	defer func() {
		_ = app.Shutdown()
	}()

	path := writeJobs(t, "1,0,5,3\n2,0,3,1\n")

	var remoteOut, localOut bytes.Buffer
	require.NoError(t, run([]string{"remote", "http://" + ln.Addr().String(), "priority", path}, cfg, logger, &remoteOut))
	require.NoError(t, run([]string{"simulate", "priority", path}, cfg, logger, &localOut))
	assert.Equal(t, localOut.String(), remoteOut.String())
}

func TestLoadRequest(t *testing.T) {
	cfg, _ := testSetup()
	path := writeJobs(t, "4,2,6,1\n")

	request, err := loadRequest(path, nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, requests.ScheduleRequests{
		Jobs:        []requests.Job{{ProcessId: 4, ArrivalTime: 2, BurstTime: 6, Priority: 1}},
		TimeQuantum: 2,
	}, request)
}
