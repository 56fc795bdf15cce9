package transport

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/goburrow/serial"
)

// SerialDialer opens a point-to-point serial line, 8N1.
type SerialDialer struct {
	Address  string
	BaudRate int
	Timeout  time.Duration
}

func (d SerialDialer) Dial(ctx context.Context) (io.WriteCloser, error) {
	if d.Address == "" {
		return nil, errors.New("serial: address required")
	}
	// Opening a port cannot be interrupted; give up early if the budget is gone.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return serial.Open(&serial.Config{
		Address:  d.Address,
		BaudRate: d.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  d.Timeout,
	})
}
