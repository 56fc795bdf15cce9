package transport

import (
	"context"
	"io"
	"log"
)

// NoopDialer accepts every command without a device attached (dry run).
type NoopDialer struct {
	Debug bool
}

func (d NoopDialer) Dial(context.Context) (io.WriteCloser, error) {
	return noopConn{debug: d.Debug}, nil
}

type noopConn struct {
	debug bool
}

func (c noopConn) Write(p []byte) (int, error) {
	if c.debug {
		log.Printf("[DEBUG] dry-run send: %q", p)
	}
	return len(p), nil
}

func (noopConn) Close() error { return nil }
