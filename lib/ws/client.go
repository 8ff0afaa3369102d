package ws

import (
	"net/http"
	"time"

	"github.com/grantradar/grantradar-go/lib/settings"
	"go.uber.org/zap"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

const (
	writeWait    = 10 * time.Second
	maxFrameSize = 4096
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub
	// The websocket connection.
	Conn WebSocketConn
	// Buffered channel of outbound messages.
	Send chan []byte
	// Recipient the stream is scoped to. Only notifications addressed
	// to this recipient (or to everyone) reach the connection.
	Recipient string
}

// readPump pumps messages from the websocket connection to the Hub.
//
// The stream is one-way; inbound frames are drained only to detect the
// close handshake. The application runs readPump in a per-connection
// goroutine so there is at most one reader on a connection.
func (c *Client) readPump(logger *zap.SugaredLogger) {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxFrameSize)
	for {
		_, _, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Errorw("notification stream read error", "recipient", c.Recipient, "error", err)
			}
			break
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	defer c.Conn.Close()
	for message := range c.Send {
		c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) Leave() {
	c.Hub.Unregister <- c
}

// ServeNotifications handles websocket requests for the notification
// stream of a single recipient.
func ServeNotifications(w http.ResponseWriter, r *http.Request, hub *Hub,
	configSettings *settings.Settings, logger *zap.SugaredLogger, recipient string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", err)
		return
	}
	client := &Client{
		Hub:       hub,
		Conn:      NewWebSocketWrapper(conn),
		Send:      make(chan []byte, configSettings.Notifications.StreamBufferSize),
		Recipient: recipient,
	}
	client.Hub.Register <- client
	go client.writePump()
	client.readPump(logger)
}
