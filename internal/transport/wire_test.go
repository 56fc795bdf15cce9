package transport

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		v    int
		want string
	}{
		{0, "0\n"},
		{7, "7\n"},
		{255, "255\n"},
	}
	for _, tt := range tests {
		if got := string(Encode(tt.v)); got != tt.want {
			t.Errorf("Encode(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
