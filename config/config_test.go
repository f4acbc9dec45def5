package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoadSchedulerConfig(t *testing.T) {
	dir := writeConfig(t, `
port: 8080
log_level: debug
scheduler:
  round_robin:
    time_quantum: 4
`)

	cfg, err := LoadSchedulerConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, &SchedulerConfig{Port: 8080, RoundRobinTimeQuantum: 4, LogLevel: "debug"}, cfg)
}

func TestLoadSchedulerConfig_Defaults(t *testing.T) {
	cfg, err := LoadSchedulerConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &SchedulerConfig{Port: 9095, RoundRobinTimeQuantum: 2, LogLevel: "info"}, cfg)
}

func TestLoadSchedulerConfig_Env(t *testing.T) {
	dir := writeConfig(t, "port: 8080\n")
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "5")
	t.Setenv("SCHEDULER_PORT", "7000")

	cfg, err := LoadSchedulerConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, 5, cfg.RoundRobinTimeQuantum)
}

func TestLoadSchedulerConfig_Malformed(t *testing.T) {
	dir := writeConfig(t, "port: [unterminated\n")

	_, err := LoadSchedulerConfig(dir)
	assert.Error(t, err)
}
