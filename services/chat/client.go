package chat

import (
	"encoding/json"
	"time"

	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client is one websocket connection joined to a single room.
type Client struct {
	Conn   *websocket.Conn
	Send   chan []byte
	Room   string
	UserID string
	Role   string
}

// inboundPayload is what connected clients send.
type inboundPayload struct {
	Action  string `json:"action"`            // "chat" or "typing"
	Content string `json:"content,omitempty"` // chat text
}

// outboundPayload is what the hub broadcasts.
type outboundPayload struct {
	Action    string `json:"action"` // "chat", "typing", "notification"
	ID        string `json:"id,omitempty"`
	Room      string `json:"room,omitempty"`
	SenderID  string `json:"senderId,omitempty"`
	Content   string `json:"content,omitempty"`
	Unread    int64  `json:"unread,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

const maxMessageSize = 4 << 10

// WritePump drains the send channel onto the wire. One per connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// ReadPump consumes inbound frames until the connection drops, keeping
// the presence record fresh on every frame. Chat messages are persisted
// before they are broadcast.
func (c *Client) ReadPump(hub *Hub, svc *ChatService) {
	defer func() {
		hub.Unregister(c)
		c.Conn.Close()
		svc.Presence.SetOffline(c.Role, c.UserID)
	}()

	c.Conn.SetReadLimit(maxMessageSize)

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}
		svc.Presence.Refresh(c.Role, c.UserID)

		var in inboundPayload
		if err := json.Unmarshal(raw, &in); err != nil {
			utils.GetLogger().Debug("invalid chat payload", zap.Error(err))
			continue
		}

		switch in.Action {
		case "chat":
			if in.Content == "" {
				continue
			}
			msg := &models.ChatMessage{
				ID:        uuid.New().String(),
				Room:      c.Room,
				SenderID:  c.UserID,
				Content:   in.Content,
				CreatedAt: time.Now(),
			}
			if err := svc.Repo.SaveMessage(msg); err != nil {
				utils.GetLogger().Error("failed to persist chat message", zap.Error(err))
				continue
			}
			out := outboundPayload{
				Action:    "chat",
				ID:        msg.ID,
				Room:      msg.Room,
				SenderID:  msg.SenderID,
				Content:   msg.Content,
				Timestamp: msg.CreatedAt.Unix(),
			}
			if data, err := json.Marshal(out); err == nil {
				hub.Broadcast(c.Room, data)
			}

		case "typing":
			out := outboundPayload{
				Action:    "typing",
				Room:      c.Room,
				SenderID:  c.UserID,
				Timestamp: time.Now().Unix(),
			}
			if data, err := json.Marshal(out); err == nil {
				hub.Broadcast(c.Room, data)
			}

		default:
			utils.GetLogger().Debug("unknown chat action", zap.String("action", in.Action))
		}
	}
}
