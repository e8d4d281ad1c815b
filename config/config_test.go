package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-simulator/internal/schedulers"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSchedulerConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadSchedulerConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, string(schedulers.RoundRobin), cfg.DefaultAlgorithm)
	assert.Equal(t, schedulers.DefaultOptions(), cfg.Options())
	assert.Equal(t, 10, cfg.MemoryBlockCount)
	assert.Equal(t, int64(128), cfg.MemoryBlockSize)
	assert.Equal(t, int64(1<<20), cfg.CacheMaxCost)
}

func TestLoadSchedulerConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
port: 8080
log_level: debug
scheduler:
  default_algorithm: sjf
  round_robin:
    time_quantum: 5
  multilevel_feedback_queue:
    levels_time_quantum: [1, 2, 3]
memory:
  block_count: 4
  block_size: 64
`)
	cfg, err := LoadSchedulerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "sjf", cfg.DefaultAlgorithm)
	assert.Equal(t, int64(5), cfg.RoundRobinTimeQuantum)
	assert.Equal(t, []int64{1, 2, 3}, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	assert.Equal(t, 4, cfg.MemoryBlockCount)
	assert.Equal(t, int64(64), cfg.MemoryBlockSize)
	assert.Equal(t, int64(1<<20), cfg.CacheMaxCost, "unset keys keep their defaults")
}

func TestLoadSchedulerConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "port: 8080\n")
	t.Setenv("OSSIM_PORT", "7000")
	t.Setenv("OSSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "9")

	cfg, err := LoadSchedulerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, int64(9), cfg.RoundRobinTimeQuantum)
}

func TestLoadSchedulerConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero quantum", "scheduler:\n  round_robin:\n    time_quantum: 0\n"},
		{"unknown algorithm", "scheduler:\n  default_algorithm: lottery\n"},
		{"bad log level", "log_level: loud\n"},
		{"bad port", "port: 70000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSchedulerConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadSchedulerConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadSchedulerConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestOptions_ReturnsCopyOfLevels(t *testing.T) {
	cfg, err := LoadSchedulerConfig("")
	require.NoError(t, err)
	opts := cfg.Options()
	opts.LevelsTimeQuantum[0] = 99
	assert.Equal(t, int64(2), cfg.MultilevelFeedbackQueueLevelsTimeQuantum[0])
}

func TestGetSchedulerConfig_LoadsOnce(t *testing.T) {
	first, err := GetSchedulerConfig()
	require.NoError(t, err)
	second, err := GetSchedulerConfig()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 9095, first.Port)
}
