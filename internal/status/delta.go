package status

import "math"

// Delta holds only the fields that changed between two snapshots.
type Delta struct {
	Axis       *float64 `json:"axis,omitempty"`
	Command    *int     `json:"command,omitempty"`
	Max        *int     `json:"max,omitempty"`
	Mode       *string  `json:"mode,omitempty"`
	Connected  *bool    `json:"connected,omitempty"`
	Present    *bool    `json:"present,omitempty"`
	Controller *string  `json:"controller,omitempty"`
	Vibration  *bool    `json:"vibration,omitempty"`
	SendRate   *float64 `json:"sendRate,omitempty"`
}

func (d *Delta) IsEmpty() bool {
	return d.Axis == nil &&
		d.Command == nil &&
		d.Max == nil &&
		d.Mode == nil &&
		d.Connected == nil &&
		d.Present == nil &&
		d.Controller == nil &&
		d.Vibration == nil &&
		d.SendRate == nil
}

const (
	axisThreshold = 0.01
	rateThreshold = 0.5
)

func ComputeDelta(old, new_ Snapshot) *Delta {
	d := &Delta{}

	if math.Abs(old.Axis-new_.Axis) >= axisThreshold {
		d.Axis = &new_.Axis
	}
	if old.Command != new_.Command {
		d.Command = &new_.Command
	}
	if old.Max != new_.Max {
		d.Max = &new_.Max
	}
	if old.Mode != new_.Mode {
		d.Mode = &new_.Mode
	}
	if old.Connected != new_.Connected {
		d.Connected = &new_.Connected
	}
	if old.Present != new_.Present {
		d.Present = &new_.Present
	}
	if old.Controller != new_.Controller {
		d.Controller = &new_.Controller
	}
	if old.Vibration != new_.Vibration {
		d.Vibration = &new_.Vibration
	}
	if math.Abs(old.SendRate-new_.SendRate) >= rateThreshold {
		d.SendRate = &new_.SendRate
	}

	return d
}
