package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	LogLevel              string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once and
// returns the shared result.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = LoadSchedulerConfig("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// LoadSchedulerConfig reads config.yaml from dir. A missing file leaves the
// defaults in place; SCHEDULER_* environment variables override both.
func LoadSchedulerConfig(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading scheduler config: %w", err)
		}
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		LogLevel:              v.GetString("log_level"),
	}, nil
}
