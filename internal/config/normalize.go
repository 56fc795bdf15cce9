package config

import "strings"

// Normalize applies post-validation normalization.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	g := &cfg.Gamepad
	for _, s := range []*string{&g.Axis, &g.Override, &g.Reset, &g.Decrement, &g.Toggle} {
		*s = strings.ToLower(strings.TrimSpace(*s))
	}

	// Fixed command values live inside the command range.
	c := &cfg.Control
	c.OverrideValue = min(c.OverrideValue, c.CommandMax)
	c.VibrationThreshold = min(c.VibrationThreshold, c.CommandMax)

	if cfg.Transport.Policy == "" {
		cfg.Transport.Policy = "per-send"
	}
}
