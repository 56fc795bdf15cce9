package tray

import "testing"

func TestStatusURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":8080", "http://localhost:8080"},
		{"127.0.0.1:9000", "http://127.0.0.1:9000"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StatusURL(tt.addr); got != tt.want {
			t.Errorf("StatusURL(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestTooltip(t *testing.T) {
	if got := New("", nil).tooltip(); got != "padlink" {
		t.Errorf("tooltip without server = %q", got)
	}
	if got := New("http://localhost:8080", nil).tooltip(); got != "padlink - http://localhost:8080" {
		t.Errorf("tooltip with server = %q", got)
	}
}
