package ws

import (
	"encoding/json"
	"sync"

	db2 "github.com/grantradar/grantradar-go/lib/models/db"
)

// Envelope is a routed outbound message. An empty Recipient goes to
// every connected client.
type Envelope struct {
	Recipient string
	Payload   []byte
}

// Hub maintains the set of active Clients and routes notification
// messages to them.
type Hub struct {
	// Registered Clients.
	Clients        map[*Client]bool
	ClientsRWMutex sync.RWMutex

	// Outbound messages.
	Broadcast chan Envelope

	// Register requests from the Clients.
	Register chan *Client

	// Unregister requests from Clients.
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan Envelope),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			if client == nil {
				continue
			}
			h.ClientsRWMutex.Lock()
			h.Clients[client] = true
			h.ClientsRWMutex.Unlock()
		case client := <-h.Unregister:
			if client == nil {
				continue
			}
			h.ClientsRWMutex.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
			h.ClientsRWMutex.Unlock()
		case envelope := <-h.Broadcast:
			h.ClientsRWMutex.Lock()
			for client := range h.Clients {
				if client == nil {
					continue
				}
				if envelope.Recipient != "" && client.Recipient != envelope.Recipient {
					continue
				}
				select {
				case client.Send <- envelope.Payload:
				default:
					// Channel is full, drop the client.
					delete(h.Clients, client)
					close(client.Send)
				}
			}
			h.ClientsRWMutex.Unlock()
		}
	}
}

// ClientCount reports the number of open notification streams.
func (h *Hub) ClientCount() int {
	h.ClientsRWMutex.RLock()
	defer h.ClientsRWMutex.RUnlock()
	return len(h.Clients)
}

type notificationMessage struct {
	Type string             `json:"type"`
	Data db2.NotificationDB `json:"data"`
}

// PublishNotification routes a stored notification to its recipient's
// open streams. Marshal failures are silently dropped, the notification
// is already persisted.
func (h *Hub) PublishNotification(notification db2.NotificationDB) {
	payload, err := json.Marshal(notificationMessage{
		Type: "notification",
		Data: notification,
	})
	if err != nil {
		return
	}
	h.Broadcast <- Envelope{
		Recipient: notification.Recipient,
		Payload:   payload,
	}
}
