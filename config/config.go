package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"cpu-scheduler-sim/internal/schedulers"
)

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	LogFormat                                string
	DBPath                                   string
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
}

// DefaultSchedulerConfig mirrors the built-in policy defaults.
func DefaultSchedulerConfig() SchedulerConfig {
	opts := schedulers.DefaultOptions()
	return SchedulerConfig{
		Port:                                     9095,
		LogLevel:                                 "info",
		LogFormat:                                "text",
		DBPath:                                   "schedsim.db",
		RoundRobinTimeQuantum:                    opts.TimeQuantum,
		MultilevelFeedbackQueueLevelsTimeQuantum: opts.LevelQuanta,
	}
}

// Options converts the scheduler section to engine options.
func (c *SchedulerConfig) Options() schedulers.Options {
	return schedulers.Options{
		TimeQuantum: c.RoundRobinTimeQuantum,
		LevelQuanta: append([]int(nil), c.MultilevelFeedbackQueueLevelsTimeQuantum...),
	}
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("%w: scheduler.round_robin.time_quantum must be positive, got %d",
			schedulers.ErrInvalidTimeQuantum, c.RoundRobinTimeQuantum)
	}
	if len(c.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return errors.New("scheduler.multilevel_feedback_queue.levels_time_quantum needs at least one level")
	}
	return nil
}

func newViper() *viper.Viper {
	def := DefaultSchedulerConfig()
	v := viper.New()
	v.SetDefault("port", def.Port)
	v.SetDefault("log.level", def.LogLevel)
	v.SetDefault("log.format", def.LogFormat)
	v.SetDefault("db.path", def.DBPath)
	v.SetDefault("scheduler.round_robin.time_quantum", def.RoundRobinTimeQuantum)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", def.MultilevelFeedbackQueueLevelsTimeQuantum)

	v.SetEnvPrefix("SCHEDSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path, or from ./config.yaml when path is
// empty. A missing default file is not an error.
func Load(path string) (*SchedulerConfig, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		LogLevel:                                 v.GetString("log.level"),
		LogFormat:                                v.GetString("log.format"),
		DBPath:                                   v.GetString("db.path"),
		RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
