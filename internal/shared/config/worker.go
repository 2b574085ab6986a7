package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// WorkerConfig contains all configuration for one worker replica.
type WorkerConfig struct {
	Replica    ReplicaConfig    `mapstructure:"replica"`
	Paths      PathsConfig      `mapstructure:"paths"`
	Input      InputConfig      `mapstructure:"input"`
	Processing ProcessingConfig `mapstructure:"processing"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ReplicaConfig identifies this replica within the batch. ID and Count
// are injected by the orchestrator and fixed for the process lifetime.
type ReplicaConfig struct {
	ID    int `mapstructure:"id"`
	Count int `mapstructure:"count"`
}

// PathsConfig contains the shared input directory and the output
// directory the replica writes its artifact to.
type PathsConfig struct {
	InputDir  string `mapstructure:"input_dir"`
	OutputDir string `mapstructure:"output_dir"`
}

// InputConfig controls which directory entries count as processable.
type InputConfig struct {
	Extension string `mapstructure:"extension"`
}

// ProcessingConfig contains in-replica throughput tuning.
type ProcessingConfig struct {
	Parallelism int `mapstructure:"parallelism"`
}

// LoadWorker loads the worker configuration from the given path.
// If configPath is empty, it looks for worker.yaml in the config/ directory.
// Environment variables with DPP_WORKER_ prefix override config file values.
func LoadWorker(configPath string) (*WorkerConfig, error) {
	v := viper.New()

	v.SetDefault("replica.id", 0)
	v.SetDefault("replica.count", 1)
	v.SetDefault("paths.input_dir", "/app/data")
	v.SetDefault("paths.output_dir", "/app/output")
	v.SetDefault("input.extension", ".txt")
	v.SetDefault("processing.parallelism", 4)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("worker")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("DPP_WORKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg WorkerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects configurations the worker must not run with.
// Replica bounds are checked before any I/O happens so a bad identity
// never produces a partial or colliding artifact.
func (c *WorkerConfig) Validate() error {
	if c.Replica.Count < 1 {
		return fmt.Errorf("invalid configuration: replica.count must be >= 1, got %d", c.Replica.Count)
	}
	if c.Replica.ID < 0 || c.Replica.ID >= c.Replica.Count {
		return fmt.Errorf(
			"invalid configuration: replica.id must be in [0, %d), got %d",
			c.Replica.Count, c.Replica.ID,
		)
	}
	if c.Paths.InputDir == "" {
		return fmt.Errorf("invalid configuration: paths.input_dir must not be empty")
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("invalid configuration: paths.output_dir must not be empty")
	}
	if c.Processing.Parallelism < 1 {
		return fmt.Errorf("invalid configuration: processing.parallelism must be >= 1, got %d", c.Processing.Parallelism)
	}
	return nil
}
