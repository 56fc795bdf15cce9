package hub

import (
	"time"

	"github.com/soar/padlink/internal/status"
)

// WSMessage represents a WebSocket message sent from server to client.
type WSMessage struct {
	Type      string           `json:"type"`              // Message type: "full" or "delta"
	Seq       int64            `json:"seq"`               // Sequence number for ordering
	Timestamp int64            `json:"timestamp"`         // Unix timestamp in milliseconds
	Data      *status.Snapshot `json:"data,omitempty"`    // Full snapshot for type "full"
	Changes   *status.Delta    `json:"changes,omitempty"` // Changed fields for type "delta"
}

// NewFullMessage creates a "full" type message containing the complete snapshot.
func NewFullMessage(seq int64, s *status.Snapshot) *WSMessage {
	return &WSMessage{
		Type:      "full",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      s,
	}
}

// NewDeltaMessage creates a "delta" type message containing only changed fields.
func NewDeltaMessage(seq int64, changes *status.Delta) *WSMessage {
	return &WSMessage{
		Type:      "delta",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Changes:   changes,
	}
}

// ClientMessage represents a message sent from the client to the server.
// The only type understood is "sync", which asks for a full snapshot.
type ClientMessage struct {
	Type string `json:"type"`
}
