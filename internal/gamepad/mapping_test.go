package gamepad

import (
	"math"
	"slices"
	"testing"
)

func TestAxisIndex(t *testing.T) {
	i, err := AxisIndex(" Left_Y ")
	if err != nil || i != AxisLeftY {
		t.Fatalf("AxisIndex = %d, %v; want %d", i, err, AxisLeftY)
	}
	if _, err := AxisIndex("throttle"); err == nil {
		t.Fatal("expected error for unknown axis")
	}
}

func TestButtonIndex(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"a", ButtonA},
		{"lb", ButtonLB},
		{"dpad_right", ButtonDpadRight},
	}
	for _, tt := range tests {
		got, err := ButtonIndex(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ButtonIndex(%q) = %d, %v; want %d", tt.name, got, err, tt.want)
		}
	}
	if _, err := ButtonIndex("turbo"); err == nil {
		t.Fatal("expected error for unknown button")
	}
}

func TestNormalizeAxis(t *testing.T) {
	tests := []struct {
		raw  int16
		want float64
	}{
		{0, 0},
		{math.MaxInt16, 1},
		{math.MinInt16, -1},
	}
	for _, tt := range tests {
		if got := NormalizeAxis(tt.raw); got != tt.want {
			t.Errorf("NormalizeAxis(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeTrigger(t *testing.T) {
	tests := []struct {
		name        string
		raw, lo, hi int16
		want        float64
	}{
		{"full range released", -32768, -32768, 32767, 0},
		{"full range pressed", 32767, -32768, 32767, 1},
		{"half range pressed", 32767, 0, 32767, 1},
		{"below half range", -100, 0, 32767, 0},
		{"degenerate range", 5, 7, 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTrigger(tt.raw, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("NormalizeTrigger = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetMapping(t *testing.T) {
	if m := GetMapping(0x054C, 0x0CE6); m.Name != "playstation" {
		t.Fatalf("DualSense mapped to %q", m.Name)
	}
	if m := GetMapping(0x045E, 0x0B12); m.Name != "xbox" {
		t.Fatalf("Xbox Series mapped to %q", m.Name)
	}
	if m := GetMapping(0x1234, 0x5678); m.Name != "generic" {
		t.Fatalf("unknown device mapped to %q", m.Name)
	}
}

func TestStandardAxesInvertStickY(t *testing.T) {
	for _, a := range standardAxes {
		wantInvert := a.Axis == AxisLeftY || a.Axis == AxisRightY
		if a.Invert != wantInvert {
			t.Errorf("axis %s: invert=%v", axisNames[a.Axis], a.Invert)
		}
	}
}

func TestButtonChanges(t *testing.T) {
	var old, cur State
	old.Buttons[ButtonLB] = true
	cur.Buttons[ButtonB] = true

	got := ButtonChanges(old, cur)
	if !slices.Equal(got, []int{ButtonB, ButtonLB}) {
		t.Fatalf("ButtonChanges = %v", got)
	}
	if ButtonName(ButtonLB) != "lb" || ButtonName(-1) != "unknown" {
		t.Fatal("ButtonName mismatch")
	}
}
