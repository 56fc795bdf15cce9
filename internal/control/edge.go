package control

// Button identifies one of the tracked logical buttons.
// The order is also the order edges are evaluated in within a tick.
type Button int

const (
	ButtonOverride Button = iota
	ButtonReset
	ButtonDecrement
	ButtonToggle

	NumButtons
)

func (b Button) String() string {
	switch b {
	case ButtonOverride:
		return "override"
	case ButtonReset:
		return "reset"
	case ButtonDecrement:
		return "decrement"
	case ButtonToggle:
		return "toggle"
	}
	return "unknown"
}

// Levels is the sampled pressed state of every tracked button for one tick.
type Levels [NumButtons]bool

// Edges holds the transitions derived for one tick.
type Edges struct {
	Rising  [NumButtons]bool
	Falling [NumButtons]bool
	Held    Levels
}

// EdgeDetector keeps the previous tick's levels and turns fresh levels into edges.
type EdgeDetector struct {
	prev Levels
}

// Update derives edges for every button and stores cur as the new previous state.
// It must be called exactly once per tick.
func (d *EdgeDetector) Update(cur Levels) Edges {
	e := Edges{Held: cur}
	for b := Button(0); b < NumButtons; b++ {
		e.Rising[b] = cur[b] && !d.prev[b]
		e.Falling[b] = !cur[b] && d.prev[b]
	}
	d.prev = cur
	return e
}

// Prime replaces the previous state without emitting edges.
func (d *EdgeDetector) Prime(cur Levels) {
	d.prev = cur
}

// Previous returns the levels stored by the last Update or Prime.
func (d *EdgeDetector) Previous() Levels {
	return d.prev
}
