package status

import "time"

// RateMeter counts events in fixed windows and reports the rate of the last
// completed window. The caller supplies every timestamp.
type RateMeter struct {
	Window time.Duration

	count       int
	windowStart time.Time
	rate        float64
}

// Add records n events at now, closing the current window first if it has elapsed.
func (m *RateMeter) Add(now time.Time, n int) {
	m.roll(now)
	m.count += n
}

// Rate returns events per second over the last completed window.
func (m *RateMeter) Rate(now time.Time) float64 {
	m.roll(now)
	return m.rate
}

func (m *RateMeter) roll(now time.Time) {
	window := m.Window
	if window <= 0 {
		window = time.Second
	}
	if m.windowStart.IsZero() {
		m.windowStart = now
		return
	}
	elapsed := now.Sub(m.windowStart)
	if elapsed < window {
		return
	}
	m.rate = float64(m.count) / elapsed.Seconds()
	m.count = 0
	m.windowStart = now
}
