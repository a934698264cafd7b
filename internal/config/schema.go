// Package config loads the engine's process configuration (app identity,
// logging level, telemetry server, and action bindings) via spf13/viper,
// grounded on the teacher's internal/config package (same viper singleton
// pattern, same mapstructure schema/Validate split).
package config

// Config is the top-level engine configuration record.
type Config struct {
	App struct {
		Name    string `mapstructure:"name"`
		Version string `mapstructure:"version"`
	} `mapstructure:"app"`

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`

	Telemetry struct {
		Enabled bool   `mapstructure:"enabled"`
		Addr    string `mapstructure:"addr"`
	} `mapstructure:"telemetry"`

	Sim struct {
		WorldCapacity int `mapstructure:"world_capacity"`
	} `mapstructure:"sim"`

	// Bindings is spec.md §6.4's persisted binding configuration: "keyed
	// table of context -> list of {device, input locator, action, scale,
	// dead-zone}."
	Bindings map[string][]BindingEntry `mapstructure:"bindings"`
}

// BindingEntry is one row of the on-disk binding table (spec.md §6.4).
type BindingEntry struct {
	Device    string  `mapstructure:"device"` // "keyboard" or "gamepad"
	KeyCode   uint16  `mapstructure:"key_code"`
	GamepadID uint8   `mapstructure:"gamepad_id"`
	Index     uint8   `mapstructure:"index"`
	IsAxis    bool    `mapstructure:"is_axis"`
	Modifiers uint8   `mapstructure:"modifiers"`
	Action    string  `mapstructure:"action"`
	Scale     float64 `mapstructure:"scale"`
	DeadZone  float64 `mapstructure:"dead_zone"`
}
