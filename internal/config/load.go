package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Options are the flags that steer loading rather than configure the loop.
type Options struct {
	File        string
	PrintConfig bool
}

// flagKeys binds each command-line flag to its config key.
var flagKeys = map[string]string{
	"tick":                "control.tick",
	"dead-zone":           "control.dead_zone",
	"step-gain":           "control.step_gain",
	"command-max":         "control.command_max",
	"override-value":      "control.override_value",
	"decrement-step":      "control.decrement_step",
	"vibration-threshold": "control.vibration_threshold",
	"reprobe-interval":    "control.reprobe_interval",
	"axis":                "gamepad.axis",
	"override-button":     "gamepad.override",
	"reset-button":        "gamepad.reset",
	"decrement-button":    "gamepad.decrement",
	"toggle-button":       "gamepad.toggle",
	"transport":           "transport.kind",
	"endpoint":            "transport.endpoint",
	"baud":                "transport.baud_rate",
	"timeout":             "transport.timeout",
	"policy":              "transport.policy",
	"http":                "server.enabled",
	"addr":                "server.addr",
	"debug":               "log.debug",
	"log-file":            "log.file",
}

// NewFlagSet declares every flag Load understands.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.String("config", "", "Config file (yaml, toml or json)")
	fs.Bool("print-config", false, "Print the effective config as YAML and exit")

	fs.Duration("tick", defaults["control.tick"].(time.Duration), "Control loop period")
	fs.Float64("dead-zone", defaults["control.dead_zone"].(float64), "Axis magnitude treated as noise (0..1)")
	fs.Float64("step-gain", defaults["control.step_gain"].(float64), "Command change per tick at full deflection")
	fs.Int("command-max", defaults["control.command_max"].(int), "Upper bound of the command")
	fs.Int("override-value", defaults["control.override_value"].(int), "Command while the override button is held")
	fs.Int("decrement-step", defaults["control.decrement_step"].(int), "Command decrease per tick while decrement is held")
	fs.Int("vibration-threshold", defaults["control.vibration_threshold"].(int), "Command at which rumble feedback starts")
	fs.Duration("reprobe-interval", defaults["control.reprobe_interval"].(time.Duration), "Controller re-probe interval while absent")

	fs.String("axis", defaults["gamepad.axis"].(string), "Axis driving the command (left_y, right_y, ...)")
	fs.String("override-button", defaults["gamepad.override"].(string), "Momentary override button")
	fs.String("reset-button", defaults["gamepad.reset"].(string), "Reset-to-zero button")
	fs.String("decrement-button", defaults["gamepad.decrement"].(string), "Decrement button (repeats while held)")
	fs.String("toggle-button", defaults["gamepad.toggle"].(string), "Vibration feedback toggle button")

	fs.String("transport", defaults["transport.kind"].(string), "Transport kind: serial|tcp|ws|noop")
	fs.String("endpoint", defaults["transport.endpoint"].(string), "Serial port, host:port or ws:// URL")
	fs.Int("baud", defaults["transport.baud_rate"].(int), "Serial baud rate")
	fs.Duration("timeout", defaults["transport.timeout"].(time.Duration), "Per-send connect and write timeout")
	fs.String("policy", defaults["transport.policy"].(string), "Connection policy: per-send|persistent")

	fs.Bool("http", defaults["server.enabled"].(bool), "Serve the status page")
	fs.String("addr", defaults["server.addr"].(string), "Status page listen address")

	fs.Bool("debug", defaults["log.debug"].(bool), "Verbose logging")
	fs.String("log-file", defaults["log.file"].(string), "Also append logs to this file")

	return fs
}

// Load parses args and merges defaults, the config file, PADLINK_* env vars
// and flags. The result is not validated.
func Load(args []string) (*Config, Options, error) {
	var opts Options

	fs := NewFlagSet("padlink")
	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}
	opts.File, _ = fs.GetString("config")
	opts.PrintConfig, _ = fs.GetBool("print-config")

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, opts, fmt.Errorf("config: bind flag %s: %w", name, err)
		}
	}
	v.SetEnvPrefix("PADLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, opts, fmt.Errorf("config: read %s: %w", opts.File, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, opts, fmt.Errorf("config: decode: %w", err)
	}
	return &cfg, opts, nil
}

// Dump writes cfg as YAML.
func Dump(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
