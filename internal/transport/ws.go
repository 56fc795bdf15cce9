package transport

import (
	"context"
	"errors"
	"io"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

// WSDialer connects to an actuator behind a websocket endpoint ("ws://host/path").
// Each command travels as one text frame carrying the usual wire format.
type WSDialer struct {
	URL string
}

func (d WSDialer) Dial(ctx context.Context) (io.WriteCloser, error) {
	if d.URL == "" {
		return nil, errors.New("ws: url required")
	}
	u, err := url.Parse(d.URL)
	if err != nil {
		return nil, err
	}

	var wd websocket.Dialer
	if deadline, ok := ctx.Deadline(); ok {
		wd.HandshakeTimeout = time.Until(deadline)
	}
	conn, _, err := wd.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, err
	}
	return &wsConn{conn: conn}, nil
}

type wsConn struct {
	conn *websocket.Conn
}

func (w *wsConn) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *wsConn) SetWriteDeadline(t time.Time) error {
	return w.conn.SetWriteDeadline(t)
}

func (w *wsConn) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = w.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return w.conn.Close()
}
