package hub

import (
	"github.com/lxzan/gws"
)

// Client represents a connected WebSocket client.
type Client struct {
	hub  *Hub
	conn *gws.Conn
	send chan []byte
}

// NewClient creates a new Client attached to the hub.
func NewClient(hub *Hub, conn *gws.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// WritePump sends messages from the send channel to the WebSocket connection.
// It returns when the hub closes the channel or a write fails.
func (c *Client) WritePump() {
	defer c.conn.WriteClose(1000, nil)

	for msg := range c.send {
		if err := c.conn.WriteMessage(gws.OpcodeText, msg); err != nil {
			return
		}
	}
}
