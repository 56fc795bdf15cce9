package control

import (
	"log"
	"math"
	"time"
)

// Rumbler is the haptic part of the controller.
type Rumbler interface {
	Rumble(low, high uint16, d time.Duration) error
}

// Feedback maps the current command to a self-expiring rumble.
type Feedback struct {
	Threshold int
	Max       int
	Period    time.Duration
	Debug     bool

	failing bool
}

// Intensity returns the rumble strength in [0, 1] for command, or 0 when disabled
// or below the threshold.
func (f *Feedback) Intensity(command int, enabled bool) float64 {
	if !enabled || command < f.Threshold {
		return 0
	}
	span := f.Max - f.Threshold
	if span <= 0 {
		return 1
	}
	v := float64(command-f.Threshold) / float64(span)
	return math.Max(0, math.Min(1, v))
}

// Apply drives r for one tick. A zero intensity explicitly cancels any running rumble.
// Errors are never returned: feedback is cosmetic.
func (f *Feedback) Apply(r Rumbler, command int, enabled bool) {
	var err error
	if i := f.Intensity(command, enabled); enabled && command >= f.Threshold {
		level := uint16(math.Round(i * math.MaxUint16))
		err = r.Rumble(level, level, f.Period)
	} else {
		err = r.Rumble(0, 0, 0)
	}

	if err != nil {
		if !f.failing && f.Debug {
			log.Printf("[DEBUG] Rumble unavailable: %v", err)
		}
		f.failing = true
		return
	}
	f.failing = false
}
