package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

var (
	once sync.Once
	cfg  *Config
)

// GetConfig loads and validates the engine configuration from
// ./config.yaml, as a process-wide singleton (grounded on the teacher's
// internal/config.GetConfig).
func GetConfig() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("logging.level", "info")
	v.SetDefault("sim.world_capacity", 4096)
	v.SetDefault("telemetry.addr", ":8080")

	if err := v.ReadInConfig(); err != nil {
		cfg = nil
		return nil, fmt.Errorf("config: read config file: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		cfg = nil
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg == nil {
		return nil, errors.New("config: failed to load configuration")
	}

	if err := cfg.Validate(); err != nil {
		cfg = nil
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return cfg, nil
}

// Reset clears the configuration singleton; used by tests only.
func Reset() {
	cfg = nil
}

// Validate enforces the required fields of Config.
func (cfg *Config) Validate() error {
	if cfg.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if cfg.App.Version == "" {
		return fmt.Errorf("app.version is required")
	}
	if cfg.Logging.Level == "" {
		return fmt.Errorf("logging.level is required")
	}
	if cfg.Sim.WorldCapacity <= 0 {
		return fmt.Errorf("sim.world_capacity must be > 0")
	}
	return nil
}
