package control

import "errors"

// Mode is the arbitration state between manual control and the override.
type Mode int

const (
	ModeNormal Mode = iota
	ModeOverridden
)

func (m Mode) String() string {
	if m == ModeOverridden {
		return "overridden"
	}
	return "normal"
}

// MachineConfig holds the command bounds and the fixed values used by the machine.
type MachineConfig struct {
	Max           int
	DeadZone      float64
	StepGain      float64
	OverrideValue int
	DecrementStep int
}

// Input is everything the machine reads in one tick.
type Input struct {
	Axis  float64
	Edges Edges
}

// Result describes what one Step did.
// Sends lists the command values to transmit, in order.
type Result struct {
	Sends           []int
	Reset           bool
	ToggledFeedback bool
}

// Machine owns Command, Mode, SavedCommand and the vibration toggle.
// It performs no I/O; the loop transmits whatever Result.Sends asks for.
type Machine struct {
	cfg       MachineConfig
	command   int
	saved     int
	mode      Mode
	vibration bool
}

// NewMachine validates cfg and returns a machine at Command 0 in ModeNormal.
func NewMachine(cfg MachineConfig) (*Machine, error) {
	if cfg.Max <= 0 {
		return nil, errors.New("control: command max must be > 0")
	}
	if cfg.DeadZone < 0 || cfg.DeadZone >= 1 {
		return nil, errors.New("control: dead zone must be in [0, 1)")
	}
	if cfg.DecrementStep < 0 {
		return nil, errors.New("control: decrement step must be >= 0")
	}
	return &Machine{cfg: cfg}, nil
}

func (m *Machine) Command() int    { return m.command }
func (m *Machine) Mode() Mode      { return m.mode }
func (m *Machine) Vibration() bool { return m.vibration }
func (m *Machine) Max() int        { return m.cfg.Max }

// Saved returns the pre-override command and whether one is held.
func (m *Machine) Saved() (int, bool) {
	return m.saved, m.mode == ModeOverridden
}

// Step applies one tick of input in priority order:
// toggle, reset, override press, override release, axis, decrement.
func (m *Machine) Step(in Input) Result {
	var res Result
	e := in.Edges

	if e.Rising[ButtonToggle] {
		m.vibration = !m.vibration
		res.ToggledFeedback = true
	}

	// Reset wins over everything else in the same tick.
	if e.Rising[ButtonReset] {
		m.mode = ModeNormal
		m.saved = 0
		m.set(0)
		res.Reset = true
		res.Sends = append(res.Sends, m.command)
		return res
	}

	switch {
	case e.Rising[ButtonOverride] && m.mode == ModeNormal:
		m.saved = m.command
		m.mode = ModeOverridden
		m.set(m.cfg.OverrideValue)
		res.Sends = append(res.Sends, m.command)
	case e.Falling[ButtonOverride] && m.mode == ModeOverridden:
		m.set(m.saved)
		m.saved = 0
		m.mode = ModeNormal
		res.Sends = append(res.Sends, m.command)
	}

	if m.mode != ModeNormal {
		return res
	}

	if !e.Held[ButtonReset] {
		m.set(m.command + MapAxis(in.Axis, m.cfg.DeadZone, m.cfg.StepGain))
		if Active(in.Axis, m.cfg.DeadZone) {
			res.Sends = append(res.Sends, m.command)
		}
	}

	// Level-triggered: repeats every tick while held.
	if e.Held[ButtonDecrement] && m.command > 0 {
		m.set(m.command - m.cfg.DecrementStep)
		res.Sends = append(res.Sends, m.command)
	}

	return res
}

// ForceZero is the fail-safe for lost input: Command 0, ModeNormal, no saved command.
// The vibration toggle is left as is.
func (m *Machine) ForceZero() {
	m.mode = ModeNormal
	m.saved = 0
	m.set(0)
}

func (m *Machine) set(v int) {
	m.command = Clamp(v, 0, m.cfg.Max)
}
