package config

import "time"

// Defaults mirror the bench setup: an Arduino on a serial line dimming an LED.
var defaults = map[string]any{
	"control.tick":                20 * time.Millisecond,
	"control.dead_zone":           0.3,
	"control.step_gain":           5.0,
	"control.command_max":         255,
	"control.override_value":      30,
	"control.decrement_step":      5,
	"control.vibration_threshold": 200,
	"control.reprobe_interval":    time.Second,

	"gamepad.axis":      "left_y",
	"gamepad.override":  "lb",
	"gamepad.reset":     "b",
	"gamepad.decrement": "x",
	"gamepad.toggle":    "y",

	"transport.kind":      "serial",
	"transport.endpoint":  "COM4",
	"transport.baud_rate": 9600,
	"transport.timeout":   300 * time.Millisecond,
	"transport.policy":    "per-send",

	"server.enabled": true,
	"server.addr":    ":8080",

	"log.debug": false,
	"log.file":  "",
}
