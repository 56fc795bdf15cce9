package hub

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/soar/padlink/internal/status"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Broadcaster listens for loop snapshots and broadcasts the changes to the hub.
type Broadcaster struct {
	hub       *Hub
	snapshots <-chan status.Snapshot

	mu        sync.Mutex
	lastState status.Snapshot
	seq       int64
}

func NewBroadcaster(h *Hub, snapshots <-chan status.Snapshot) *Broadcaster {
	return &Broadcaster{
		hub:       h,
		snapshots: snapshots,
	}
}

// Run starts the broadcaster loop. Should be run in a goroutine.
// It returns once the snapshot channel is closed.
func (b *Broadcaster) Run() {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	var deltaCount int64

	for {
		select {
		case s, ok := <-b.snapshots:
			if !ok {
				return
			}

			b.mu.Lock()
			delta := status.ComputeDelta(b.lastState, s)
			if delta.IsEmpty() {
				b.mu.Unlock()
				continue
			}
			b.lastState = s
			b.seq++
			deltaCount++

			// Send full sync periodically
			var msg *WSMessage
			if deltaCount >= deltaCountSync {
				msg = NewFullMessage(b.seq, &s)
				deltaCount = 0
			} else {
				msg = NewDeltaMessage(b.seq, delta)
			}
			b.mu.Unlock()
			b.send(msg)

		case <-ticker.C:
			b.mu.Lock()
			b.seq++
			s := b.lastState
			msg := NewFullMessage(b.seq, &s)
			b.mu.Unlock()
			b.send(msg)
		}
	}
}

// SendInitialState sends the current full state to a single client.
func (b *Broadcaster) SendInitialState(c *Client) {
	b.mu.Lock()
	b.seq++
	s := b.lastState
	msg := NewFullMessage(b.seq, &s)
	b.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling initial state: %v", err)
		return
	}
	b.hub.SendTo(c, data)
}

func (b *Broadcaster) send(msg *WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling %s message: %v", msg.Type, err)
		return
	}
	b.hub.Broadcast(data)
}
