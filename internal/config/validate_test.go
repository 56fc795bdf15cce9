package config

import (
	"strings"
	"testing"
	"time"
)

// helper to build a config that passes validation
func validConfig() *Config {
	return &Config{
		Control: ControlConfig{
			Tick:               20 * time.Millisecond,
			DeadZone:           0.3,
			StepGain:           5,
			CommandMax:         255,
			OverrideValue:      30,
			DecrementStep:      5,
			VibrationThreshold: 200,
			ReprobeInterval:    time.Second,
		},
		Gamepad: GamepadConfig{
			Axis:      "left_y",
			Override:  "lb",
			Reset:     "b",
			Decrement: "x",
			Toggle:    "y",
		},
		Transport: TransportConfig{
			Kind:     "serial",
			Endpoint: "COM4",
			BaudRate: 9600,
			Timeout:  300 * time.Millisecond,
			Policy:   "per-send",
		},
		Server: ServerConfig{Enabled: true, Addr: ":8080"},
	}
}

// ---- tests ----

func TestValidate_Valid(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Nil(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero tick", func(c *Config) { c.Control.Tick = 0 }, "control.tick"},
		{"slow tick", func(c *Config) { c.Control.Tick = 2 * time.Second }, "control.tick"},
		{"dead zone one", func(c *Config) { c.Control.DeadZone = 1 }, "control.dead_zone"},
		{"zero gain", func(c *Config) { c.Control.StepGain = 0 }, "control.step_gain"},
		{"zero max", func(c *Config) { c.Control.CommandMax = 0 }, "control.command_max"},
		{"negative override", func(c *Config) { c.Control.OverrideValue = -1 }, "control.override_value"},
		{"negative decrement", func(c *Config) { c.Control.DecrementStep = -1 }, "control.decrement_step"},
		{"negative threshold", func(c *Config) { c.Control.VibrationThreshold = -1 }, "control.vibration_threshold"},
		{"zero reprobe", func(c *Config) { c.Control.ReprobeInterval = 0 }, "control.reprobe_interval"},
		{"unknown axis", func(c *Config) { c.Gamepad.Axis = "throttle" }, "gamepad.axis"},
		{"unknown button", func(c *Config) { c.Gamepad.Toggle = "turbo" }, "gamepad.toggle"},
		{"button bound twice", func(c *Config) { c.Gamepad.Reset = "lb" }, "already bound to override"},
		{"unknown kind", func(c *Config) { c.Transport.Kind = "can" }, "transport.kind"},
		{"serial without baud", func(c *Config) { c.Transport.BaudRate = 0 }, "transport.baud_rate"},
		{"tcp without endpoint", func(c *Config) { c.Transport.Kind, c.Transport.Endpoint = "tcp", "" }, "transport.endpoint"},
		{"zero timeout", func(c *Config) { c.Transport.Timeout = 0 }, "transport.timeout"},
		{"unknown policy", func(c *Config) { c.Transport.Policy = "pooled" }, "transport.policy"},
		{"server without addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidate_NoopNeedsNoEndpoint(t *testing.T) {
	cfg := validConfig()
	cfg.Transport.Kind = "noop"
	cfg.Transport.Endpoint = ""
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DisabledServerNeedsNoAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Server = ServerConfig{}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	cfg := validConfig()
	cfg.Gamepad.Override = " LB "
	cfg.Control.CommandMax = 20
	cfg.Transport.Policy = ""

	Normalize(cfg)

	if cfg.Gamepad.Override != "lb" {
		t.Errorf("override=%q, want lb", cfg.Gamepad.Override)
	}
	if cfg.Control.OverrideValue != 20 || cfg.Control.VibrationThreshold != 20 {
		t.Errorf("override=%d threshold=%d, want both capped at 20",
			cfg.Control.OverrideValue, cfg.Control.VibrationThreshold)
	}
	if cfg.Transport.Policy != "per-send" {
		t.Errorf("policy=%q, want per-send", cfg.Transport.Policy)
	}
}
