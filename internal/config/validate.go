package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/soar/padlink/internal/gamepad"
)

// Validate checks configuration correctness.
// It performs declarative validation only and never mutates cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}

	// ------------------------------------------------------------
	// CONTROL
	// ------------------------------------------------------------

	c := cfg.Control
	if c.Tick <= 0 {
		return fmt.Errorf("control.tick must be > 0, got %s", c.Tick)
	}
	if c.Tick > time.Second {
		return fmt.Errorf("control.tick %s is too slow for manual control (max 1s)", c.Tick)
	}
	if c.DeadZone < 0 || c.DeadZone >= 1 {
		return fmt.Errorf("control.dead_zone must be in [0, 1), got %v", c.DeadZone)
	}
	if c.StepGain <= 0 {
		return fmt.Errorf("control.step_gain must be > 0, got %v", c.StepGain)
	}
	if c.CommandMax <= 0 {
		return fmt.Errorf("control.command_max must be > 0, got %d", c.CommandMax)
	}
	if c.OverrideValue < 0 {
		return fmt.Errorf("control.override_value must be >= 0, got %d", c.OverrideValue)
	}
	if c.DecrementStep < 0 {
		return fmt.Errorf("control.decrement_step must be >= 0, got %d", c.DecrementStep)
	}
	if c.VibrationThreshold < 0 {
		return fmt.Errorf("control.vibration_threshold must be >= 0, got %d", c.VibrationThreshold)
	}
	if c.ReprobeInterval <= 0 {
		return fmt.Errorf("control.reprobe_interval must be > 0, got %s", c.ReprobeInterval)
	}

	// ------------------------------------------------------------
	// GAMEPAD BINDINGS
	// ------------------------------------------------------------

	if _, err := gamepad.AxisIndex(cfg.Gamepad.Axis); err != nil {
		return fmt.Errorf("gamepad.axis: %w", err)
	}

	owner := make(map[int]string)
	for _, b := range []struct{ role, name string }{
		{"override", cfg.Gamepad.Override},
		{"reset", cfg.Gamepad.Reset},
		{"decrement", cfg.Gamepad.Decrement},
		{"toggle", cfg.Gamepad.Toggle},
	} {
		idx, err := gamepad.ButtonIndex(b.name)
		if err != nil {
			return fmt.Errorf("gamepad.%s: %w", b.role, err)
		}
		if prev, exists := owner[idx]; exists {
			return fmt.Errorf("gamepad.%s: button %q already bound to %s", b.role, b.name, prev)
		}
		owner[idx] = b.role
	}

	// ------------------------------------------------------------
	// TRANSPORT
	// ------------------------------------------------------------

	t := cfg.Transport
	switch t.Kind {
	case "serial":
		if t.BaudRate <= 0 {
			return fmt.Errorf("transport.baud_rate must be > 0 for serial, got %d", t.BaudRate)
		}
	case "tcp", "ws":
	case "noop":
	default:
		return fmt.Errorf("transport.kind %q is not one of serial|tcp|ws|noop", t.Kind)
	}
	if t.Kind != "noop" && t.Endpoint == "" {
		return fmt.Errorf("transport.endpoint is required for %s", t.Kind)
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("transport.timeout must be > 0, got %s", t.Timeout)
	}
	if t.Policy != "" && t.Policy != "per-send" && t.Policy != "persistent" {
		return fmt.Errorf("transport.policy %q is not one of per-send|persistent", t.Policy)
	}

	// ------------------------------------------------------------
	// SERVER
	// ------------------------------------------------------------

	if cfg.Server.Enabled && cfg.Server.Addr == "" {
		return errors.New("server.addr is required when server.enabled is set")
	}

	return nil
}
