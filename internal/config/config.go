// Package config loads padlink settings from defaults, an optional file,
// PADLINK_* environment variables and command-line flags, in that order.
package config

import "time"

type Config struct {
	Control   ControlConfig   `mapstructure:"control" yaml:"control"`
	Gamepad   GamepadConfig   `mapstructure:"gamepad" yaml:"gamepad"`
	Transport TransportConfig `mapstructure:"transport" yaml:"transport"`
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// ---- CONTROL ----

type ControlConfig struct {
	Tick               time.Duration `mapstructure:"tick" yaml:"tick"`
	DeadZone           float64       `mapstructure:"dead_zone" yaml:"dead_zone"`
	StepGain           float64       `mapstructure:"step_gain" yaml:"step_gain"`
	CommandMax         int           `mapstructure:"command_max" yaml:"command_max"`
	OverrideValue      int           `mapstructure:"override_value" yaml:"override_value"`
	DecrementStep      int           `mapstructure:"decrement_step" yaml:"decrement_step"`
	VibrationThreshold int           `mapstructure:"vibration_threshold" yaml:"vibration_threshold"`
	ReprobeInterval    time.Duration `mapstructure:"reprobe_interval" yaml:"reprobe_interval"`
}

// ---- GAMEPAD ----

// GamepadConfig names the controls by logical name ("left_y", "lb", ...).
type GamepadConfig struct {
	Axis      string `mapstructure:"axis" yaml:"axis"`
	Override  string `mapstructure:"override" yaml:"override"`
	Reset     string `mapstructure:"reset" yaml:"reset"`
	Decrement string `mapstructure:"decrement" yaml:"decrement"`
	Toggle    string `mapstructure:"toggle" yaml:"toggle"`
}

// ---- TRANSPORT ----

type TransportConfig struct {
	Kind     string        `mapstructure:"kind" yaml:"kind"`
	Endpoint string        `mapstructure:"endpoint" yaml:"endpoint"`
	BaudRate int           `mapstructure:"baud_rate" yaml:"baud_rate"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Policy   string        `mapstructure:"policy" yaml:"policy"`
}

// ---- SERVER ----

type ServerConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Addr    string `mapstructure:"addr" yaml:"addr"`
}

// ---- LOG ----

type LogConfig struct {
	Debug bool   `mapstructure:"debug" yaml:"debug"`
	File  string `mapstructure:"file" yaml:"file"`
}
