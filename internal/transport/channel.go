// Package transport delivers actuation commands to the remote actuator.
// Delivery is at-most-once and best-effort: a failed send is not queued,
// the next send carries a fresher command.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Status is the outcome of the most recent send attempt.
type Status int

const (
	Disconnected Status = iota
	Connected
)

func (s Status) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

// Policy decides what happens to a connection after a successful write.
type Policy string

const (
	// PolicyPerSend dials for every send and always closes afterwards.
	PolicyPerSend Policy = "per-send"
	// PolicyPersistent keeps the connection while writes succeed and
	// discards it on the first failure.
	PolicyPersistent Policy = "persistent"
)

// Dialer opens one connection to the actuator. It must honor ctx's deadline
// where the underlying device allows it.
type Dialer interface {
	Dial(ctx context.Context) (io.WriteCloser, error)
}

type deadlineWriter interface {
	SetWriteDeadline(t time.Time) error
}

// Channel sends commands through a Dialer using the configured Policy.
// It is not safe for concurrent use; the control loop is its only caller.
type Channel struct {
	dialer  Dialer
	timeout time.Duration
	policy  Policy

	conn   io.WriteCloser
	status Status
}

// NewChannel returns a channel that starts out Disconnected.
func NewChannel(d Dialer, timeout time.Duration, policy Policy) (*Channel, error) {
	if d == nil {
		return nil, errors.New("transport: dialer required")
	}
	if timeout <= 0 {
		return nil, errors.New("transport: timeout must be > 0")
	}
	switch policy {
	case "":
		policy = PolicyPerSend
	case PolicyPerSend, PolicyPersistent:
	default:
		return nil, fmt.Errorf("transport: unknown policy %q", policy)
	}
	return &Channel{dialer: d, timeout: timeout, policy: policy}, nil
}

// Status returns the outcome of the last Send.
func (c *Channel) Status() Status {
	return c.status
}

// Send makes one attempt to deliver v within the channel timeout.
// The returned error explains a Disconnected status and is nil otherwise.
func (c *Channel) Send(ctx context.Context, v int) (Status, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn := c.conn
	c.conn = nil
	if conn == nil {
		var err error
		conn, err = c.dialer.Dial(ctx)
		if err != nil {
			c.status = Disconnected
			return c.status, fmt.Errorf("transport: dial: %w", err)
		}
	}

	if dw, ok := conn.(deadlineWriter); ok {
		if deadline, ok := ctx.Deadline(); ok {
			_ = dw.SetWriteDeadline(deadline)
		}
	}

	if err := writeFull(conn, Encode(v)); err != nil {
		_ = conn.Close()
		c.status = Disconnected
		return c.status, fmt.Errorf("transport: write %d: %w", v, err)
	}

	if c.policy == PolicyPersistent {
		c.conn = conn
	} else {
		_ = conn.Close()
	}

	c.status = Connected
	return c.status, nil
}

// Close releases a held connection, if any.
func (c *Channel) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func writeFull(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return io.ErrShortWrite
	}
	return nil
}
