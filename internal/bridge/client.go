// internal/bridge/client.go
package bridge

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 64 * 1024
	sendBuffer     = 32
)

// client — одно websocket-подключение браузера.
type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

// readPump читает сэмплы трекера и складывает их в общий слот ввода.
func (s *Server) readPump(c *client) {
	defer func() {
		s.removeClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("bridge read error", "client", c.id, "error", err)
			}
			return
		}

		var msg HandMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Debug("bridge dropped malformed message", "client", c.id, "error", err)
			continue
		}
		if msg.Type != "" && msg.Type != MsgTypeHand {
			continue
		}
		s.latest.Store(msg.Sample(s.mapper), s.now())
	}
}

// writePump отправляет сообщения клиенту и держит соединение пингами.
func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
				slog.Warn("bridge write error", "client", c.id, "error", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
