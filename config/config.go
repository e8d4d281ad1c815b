package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"os-simulator/internal/schedulers"
)

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	DefaultAlgorithm                         string
	RoundRobinTimeQuantum                    int64
	MultilevelFeedbackQueueLevelsTimeQuantum []int64
	MemoryBlockCount                         int
	MemoryBlockSize                          int64
	CacheMaxCost                             int64
}

// envPrefix namespaces environment overrides, e.g. OSSIM_PORT or
// OSSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
const envPrefix = "OSSIM"

var (
	once      sync.Once
	config    *SchedulerConfig
	configErr error
)

// GetSchedulerConfig loads ./config.yaml once and returns the shared config.
// A missing file falls back to defaults; the first load error is returned to
// every caller.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = LoadSchedulerConfig("")
		if configErr != nil {
			logrus.Errorf("loading scheduler config: %v", configErr)
		}
	})

	return config, configErr
}

// LoadSchedulerConfig reads the yaml file at path. An empty path searches
// for config.yaml in the working directory and tolerates its absence.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
			logrus.Debug("no config.yaml found, using defaults")
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.default_algorithm", string(schedulers.RoundRobin))
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{2, 4, 0})
	v.SetDefault("memory.block_count", 10)
	v.SetDefault("memory.block_size", 128)
	v.SetDefault("cache.max_cost", 1<<20)
	return v
}

func fromViper(v *viper.Viper) *SchedulerConfig {
	cfg := &SchedulerConfig{}
	cfg.Port = v.GetInt("port")
	cfg.LogLevel = v.GetString("log_level")
	cfg.DefaultAlgorithm = v.GetString("scheduler.default_algorithm")
	cfg.RoundRobinTimeQuantum = v.GetInt64("scheduler.round_robin.time_quantum")
	for _, q := range v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum") {
		cfg.MultilevelFeedbackQueueLevelsTimeQuantum = append(cfg.MultilevelFeedbackQueueLevelsTimeQuantum, int64(q))
	}
	cfg.MemoryBlockCount = v.GetInt("memory.block_count")
	cfg.MemoryBlockSize = v.GetInt64("memory.block_size")
	cfg.CacheMaxCost = v.GetInt64("cache.max_cost")
	return cfg
}

// Validate rejects values the simulator cannot run with.
func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in [1, 65535], got %d", c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := schedulers.ParseAlgorithm(c.DefaultAlgorithm); err != nil {
		return fmt.Errorf("scheduler.default_algorithm: %w", err)
	}
	if c.RoundRobinTimeQuantum < 1 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be at least 1, got %d", c.RoundRobinTimeQuantum)
	}
	if len(c.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return fmt.Errorf("scheduler.multilevel_feedback_queue.levels_time_quantum must not be empty")
	}
	if c.MemoryBlockCount < 0 || c.MemoryBlockSize < 0 {
		return fmt.Errorf("memory block count and size must be non-negative")
	}
	if c.CacheMaxCost <= 0 {
		return fmt.Errorf("cache.max_cost must be positive, got %d", c.CacheMaxCost)
	}
	return nil
}

// Options returns the scheduler options described by the config.
func (c *SchedulerConfig) Options() schedulers.Options {
	return schedulers.Options{
		TimeQuantum:       c.RoundRobinTimeQuantum,
		LevelsTimeQuantum: append([]int64(nil), c.MultilevelFeedbackQueueLevelsTimeQuantum...),
	}
}
