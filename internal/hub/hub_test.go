package hub

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/soar/padlink/internal/status"
)

func newTestClient(h *Hub) *Client {
	// WritePump is never started, so no connection is needed.
	return NewClient(h, nil)
}

func TestHub_RegisterBroadcastUnregister(t *testing.T) {
	h := NewHub()
	c := newTestClient(h)
	h.Register(c)
	if h.Len() != 1 {
		t.Fatalf("Len()=%d, want 1", h.Len())
	}

	h.Broadcast([]byte("hello"))
	if got := string(<-c.send); got != "hello" {
		t.Fatalf("got %q", got)
	}

	h.Unregister(c)
	h.Unregister(c)
	if _, ok := <-c.send; ok {
		t.Fatal("send channel should be closed")
	}
	if h.SendTo(c, []byte("late")) {
		t.Fatal("SendTo should refuse an unregistered client")
	}
}

func TestHub_SlowClientDropped(t *testing.T) {
	h := NewHub()
	c := newTestClient(h)
	h.Register(c)

	for range cap(c.send) + 1 {
		h.Broadcast([]byte("x"))
	}

	deadline := time.Now().Add(2 * time.Second)
	for h.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("slow client was not unregistered")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func readMessage(t *testing.T, c *Client) WSMessage {
	t.Helper()
	select {
	case data := <-c.send:
		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message")
	}
	return WSMessage{}
}

func TestBroadcaster_DeltasAndInitialState(t *testing.T) {
	h := NewHub()
	snapshots := make(chan status.Snapshot)
	b := NewBroadcaster(h, snapshots)

	c := newTestClient(h)
	h.Register(c)

	done := make(chan struct{})
	go func() {
		b.Run()
		close(done)
	}()

	snapshots <- status.Snapshot{Command: 42, Max: 255, Mode: "normal"}
	msg := readMessage(t, c)
	if msg.Type != "delta" || msg.Changes == nil || msg.Changes.Command == nil || *msg.Changes.Command != 42 {
		t.Fatalf("first message=%+v", msg)
	}

	// An identical snapshot produces nothing; the next change is a new delta.
	snapshots <- status.Snapshot{Command: 42, Max: 255, Mode: "normal"}
	snapshots <- status.Snapshot{Command: 42, Max: 255, Mode: "overridden"}
	msg = readMessage(t, c)
	if msg.Changes == nil || msg.Changes.Mode == nil || *msg.Changes.Mode != "overridden" {
		t.Fatalf("second message=%+v", msg)
	}
	if msg.Changes.Command != nil {
		t.Fatal("unchanged command should not be in the delta")
	}

	b.SendInitialState(c)
	msg = readMessage(t, c)
	if msg.Type != "full" || msg.Data == nil || msg.Data.Command != 42 || msg.Data.Mode != "overridden" {
		t.Fatalf("initial state=%+v", msg)
	}

	close(snapshots)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the channel closed")
	}
}
