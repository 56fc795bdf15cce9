package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lxzan/gws"

	"github.com/soar/padlink/internal/hub"
)

const clientKey = "client"

// wsHandler bridges gws connection events to the hub.
type wsHandler struct {
	gws.BuiltinEventHandler
	hub         *hub.Hub
	broadcaster *hub.Broadcaster
}

func (h *wsHandler) OnOpen(socket *gws.Conn) {
	client := hub.NewClient(h.hub, socket)
	socket.Session().Store(clientKey, client)
	h.hub.Register(client)

	// Send current state to the new client
	h.broadcaster.SendInitialState(client)

	go client.WritePump()
}

func (h *wsHandler) OnClose(socket *gws.Conn, err error) {
	if client, ok := clientOf(socket); ok {
		h.hub.Unregister(client)
	}
}

func (h *wsHandler) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()

	var msg hub.ClientMessage
	if err := json.Unmarshal(message.Bytes(), &msg); err != nil {
		log.Printf("Error parsing client message: %v", err)
		return
	}

	switch msg.Type {
	case "sync":
		if client, ok := clientOf(socket); ok {
			h.broadcaster.SendInitialState(client)
		}
	default:
		log.Printf("Ignoring client message of type %q", msg.Type)
	}
}

func clientOf(socket *gws.Conn) (*hub.Client, bool) {
	v, ok := socket.Session().Load(clientKey)
	if !ok {
		return nil, false
	}
	c, ok := v.(*hub.Client)
	return c, ok
}

func handleWebSocket(upgrader *gws.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socket, err := upgrader.Upgrade(w, r)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			return
		}
		go socket.ReadLoop()
	}
}
