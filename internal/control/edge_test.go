package control

import "testing"

func TestEdgeDetector_RisingAndFalling(t *testing.T) {
	var d EdgeDetector

	e := d.Update(Levels{ButtonOverride: true})
	if !e.Rising[ButtonOverride] || e.Falling[ButtonOverride] {
		t.Fatalf("press: got rising=%v falling=%v", e.Rising[ButtonOverride], e.Falling[ButtonOverride])
	}
	if !e.Held[ButtonOverride] {
		t.Fatal("press: override should be held")
	}

	e = d.Update(Levels{ButtonOverride: true})
	if e.Rising[ButtonOverride] || e.Falling[ButtonOverride] {
		t.Fatal("hold: no edge expected")
	}

	e = d.Update(Levels{})
	if e.Rising[ButtonOverride] || !e.Falling[ButtonOverride] {
		t.Fatalf("release: got rising=%v falling=%v", e.Rising[ButtonOverride], e.Falling[ButtonOverride])
	}
	if e.Held[ButtonOverride] {
		t.Fatal("release: override should not be held")
	}
}

func TestEdgeDetector_ButtonsIndependent(t *testing.T) {
	var d EdgeDetector
	d.Update(Levels{ButtonReset: true})

	e := d.Update(Levels{ButtonReset: true, ButtonToggle: true})
	if e.Rising[ButtonReset] {
		t.Fatal("reset is still held, no rising edge expected")
	}
	if !e.Rising[ButtonToggle] {
		t.Fatal("toggle pressed, rising edge expected")
	}
}

func TestEdgeDetector_PrimeSuppressesEdges(t *testing.T) {
	var d EdgeDetector
	held := Levels{ButtonOverride: true, ButtonDecrement: true}
	d.Prime(held)

	e := d.Update(held)
	for b := Button(0); b < NumButtons; b++ {
		if e.Rising[b] || e.Falling[b] {
			t.Fatalf("%s: unexpected edge after prime", b)
		}
	}
	if d.Previous() != held {
		t.Fatalf("Previous() = %v, want %v", d.Previous(), held)
	}
}

func TestButtonString(t *testing.T) {
	if ButtonDecrement.String() != "decrement" {
		t.Fatalf("got %q", ButtonDecrement.String())
	}
	if NumButtons.String() != "unknown" {
		t.Fatalf("got %q", NumButtons.String())
	}
}
