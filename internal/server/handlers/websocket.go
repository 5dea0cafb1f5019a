// internal/server/handlers/websocket.go

package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
)

// WebSocketClient represents a connected WebSocket client receiving the
// live stream of completed analyses.
type WebSocketClient struct {
	conn              *websocket.Conn
	send              chan []byte
	natsConn          *nats.Conn
	natsSubscriptions []*nats.Subscription
}

// WebSocketConfig contains configuration for WebSocket connections
type WebSocketConfig struct {
	// Time allowed to write a message to the peer
	WriteWait time.Duration

	// Time allowed to read the next pong message from the peer
	PongWait time.Duration

	// Send pings to peer with this period
	PingPeriod time.Duration

	// Maximum message size allowed from peer
	MaxMessageSize int64
}

// DefaultWebSocketConfig returns the default WebSocket configuration
func DefaultWebSocketConfig() WebSocketConfig {
	return WebSocketConfig{
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		PingPeriod:     (60 * time.Second * 9) / 10,
		MaxMessageSize: 4096,
	}
}

// WebSocketUpgrader is used to upgrade HTTP connections to WebSocket
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, this should be more restrictive
		return true
	},
}

// AnalysisWebSocketHandler streams completed analyses to clients as they
// are published on the events topic. The stream is one-way; client
// messages other than control frames are discarded.
func AnalysisWebSocketHandler(natsConn *nats.Conn, eventsTopic string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("Failed to upgrade to WebSocket: %v", err)
			return
		}

		client := &WebSocketClient{
			conn:     conn,
			send:     make(chan []byte, 256),
			natsConn: natsConn,
		}

		go client.writePump()
		go client.readPump()

		if err := client.subscribeToAnalyses(eventsTopic); err != nil {
			log.Printf("Failed to subscribe to analysis events: %v", err)
			client.closeConnection()
			return
		}

		welcomeMsg := map[string]interface{}{
			"type":  "welcome",
			"topic": eventsTopic,
			"time":  time.Now(),
		}

		welcomeJSON, _ := json.Marshal(welcomeMsg)
		client.send <- welcomeJSON

		log.Printf("New WebSocket connection for analysis stream from %s", r.RemoteAddr)
	}
}

// readPump drains the WebSocket connection so that control frames are
// processed; incoming data messages are ignored.
func (c *WebSocketClient) readPump() {
	config := DefaultWebSocketConfig()

	defer func() {
		c.closeConnection()
	}()

	c.conn.SetReadLimit(config.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(config.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(config.PongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps analysis events to the WebSocket connection
func (c *WebSocketClient) writePump() {
	config := DefaultWebSocketConfig()
	ticker := time.NewTicker(config.PingPeriod)
	defer func() {
		ticker.Stop()
		c.closeConnection()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued events to the current WebSocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// subscribeToAnalyses subscribes to completed-analysis events on NATS
func (c *WebSocketClient) subscribeToAnalyses(eventsTopic string) error {
	sub, err := c.natsConn.Subscribe(fmt.Sprintf("%s.completed", eventsTopic), func(msg *nats.Msg) {
		select {
		case c.send <- msg.Data:
		default:
			// Slow consumer; drop the event rather than block the bus
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to completed analyses: %w", err)
	}
	c.natsSubscriptions = append(c.natsSubscriptions, sub)

	return nil
}

// closeConnection closes the WebSocket connection and cleans up resources
func (c *WebSocketClient) closeConnection() {
	for _, sub := range c.natsSubscriptions {
		sub.Unsubscribe()
	}

	c.conn.Close()

	log.Printf("WebSocket connection closed")
}
