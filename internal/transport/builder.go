package transport

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownKind is returned by Build for an unsupported transport kind.
var ErrUnknownKind = errors.New("transport: unknown kind")

// Kinds accepted by Build.
const (
	KindSerial = "serial"
	KindTCP    = "tcp"
	KindWS     = "ws"
	KindNoop   = "noop"
)

// Config is the minimal runtime config a channel needs.
type Config struct {
	Kind     string
	Endpoint string
	BaudRate int
	Timeout  time.Duration
	Policy   Policy
	Debug    bool
}

// Build picks the dialer for cfg.Kind and wraps it in a Channel.
// Nothing is dialed here; the first Send makes the first attempt.
func Build(cfg Config) (*Channel, error) {
	var d Dialer
	switch cfg.Kind {
	case KindSerial:
		d = SerialDialer{Address: cfg.Endpoint, BaudRate: cfg.BaudRate, Timeout: cfg.Timeout}
	case KindTCP:
		d = TCPDialer{Endpoint: cfg.Endpoint}
	case KindWS:
		d = WSDialer{URL: cfg.Endpoint}
	case KindNoop:
		d = NoopDialer{Debug: cfg.Debug}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
	return NewChannel(d, cfg.Timeout, cfg.Policy)
}
