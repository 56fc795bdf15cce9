package transport

import (
	"context"
	"errors"
	"io"
	"net"
)

// TCPDialer connects to a network actuator at Endpoint ("host:port").
type TCPDialer struct {
	Endpoint string
}

func (d TCPDialer) Dial(ctx context.Context) (io.WriteCloser, error) {
	if d.Endpoint == "" {
		return nil, errors.New("tcp: endpoint required")
	}
	var nd net.Dialer
	return nd.DialContext(ctx, "tcp", d.Endpoint)
}
