package status

import (
	"encoding/json"
	"testing"
)

func TestComputeDelta_NoChange(t *testing.T) {
	s := Snapshot{Axis: 0.5, Command: 10, Max: 255, Mode: "normal", SendRate: 50}
	if d := ComputeDelta(s, s); !d.IsEmpty() {
		t.Fatalf("delta=%+v, want empty", d)
	}
}

func TestComputeDelta_Thresholds(t *testing.T) {
	old := Snapshot{Axis: 0.5, SendRate: 50}

	d := ComputeDelta(old, Snapshot{Axis: 0.505, SendRate: 50.2})
	if !d.IsEmpty() {
		t.Fatalf("sub-threshold jitter produced %+v", d)
	}

	d = ComputeDelta(old, Snapshot{Axis: 0.6, SendRate: 40})
	if d.Axis == nil || *d.Axis != 0.6 {
		t.Fatalf("axis change missing: %+v", d)
	}
	if d.SendRate == nil || *d.SendRate != 40 {
		t.Fatalf("rate change missing: %+v", d)
	}
}

func TestComputeDelta_ZeroValuesAreSent(t *testing.T) {
	old := Snapshot{Command: 30, Mode: "overridden", Connected: true}
	d := ComputeDelta(old, Snapshot{Command: 0, Mode: "normal"})

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"command", "mode", "connected"} {
		if _, ok := got[key]; !ok {
			t.Errorf("%s missing from %s", key, data)
		}
	}
	if _, ok := got["axis"]; ok {
		t.Errorf("unchanged axis present in %s", data)
	}
}
