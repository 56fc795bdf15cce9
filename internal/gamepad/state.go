package gamepad

// State is one sample of the active controller in logical layout.
// Sticks are normalized to -1..1 with forward positive, triggers to 0..1.
type State struct {
	Connected bool
	Name      string
	Type      string
	Axes      [NumAxes]float64
	Buttons   [NumButtons]bool
}

// ButtonChanges lists the logical buttons whose level differs between two samples.
func ButtonChanges(old, new_ State) []int {
	var out []int
	for i := range new_.Buttons {
		if old.Buttons[i] != new_.Buttons[i] {
			out = append(out, i)
		}
	}
	return out
}

// ButtonName returns the config name of a logical button.
func ButtonName(i int) string {
	if i < 0 || i >= NumButtons {
		return "unknown"
	}
	return buttonNames[i]
}
