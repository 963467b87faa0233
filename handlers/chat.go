package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"fixify/middleware"
	chatService "fixify/services/chat"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is enforced by the gin layer; the upgrade itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChatHandler exposes the websocket endpoint and the chat/notification
// REST surface.
type ChatHandler struct {
	Hub     *chatService.Hub
	Service *chatService.ChatService
}

func NewChatHandler(hub *chatService.Hub, svc *chatService.ChatService) *ChatHandler {
	return &ChatHandler{Hub: hub, Service: svc}
}

// roomAllowed checks that the principal is a member of the room it asks
// to join. Conversation rooms are "chat:<userID>:<providerID>"; private
// streams are "notify:<role>:<id>".
func roomAllowed(room, role, principalID string) bool {
	parts := strings.Split(room, ":")
	if len(parts) != 3 {
		return false
	}
	switch parts[0] {
	case "chat":
		switch role {
		case utils.RoleUser:
			return parts[1] == principalID
		case utils.RoleProvider:
			return parts[2] == principalID
		}
		return false
	case "notify":
		return parts[1] == role && parts[2] == principalID
	}
	return false
}

// Connect upgrades to a websocket and joins the requested room.
func (h *ChatHandler) Connect(c *gin.Context) {
	room := c.Query("room")
	role := c.GetString(middleware.CtxRole)
	principalID := middleware.PrincipalID(c)

	if room == "" || !roomAllowed(room, role, principalID) {
		utils.JSONError(c, http.StatusForbidden, "You are not a member of this room", "")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		getLogger(c).Error("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &chatService.Client{
		Conn:   conn,
		Send:   make(chan []byte, 256),
		Room:   room,
		UserID: principalID,
		Role:   role,
	}

	h.Service.Presence.SetOnline(role, principalID)
	h.Hub.Register(client)
	go client.WritePump()
	go client.ReadPump(h.Hub, h.Service)
}

// History returns the most recent messages of a conversation room.
func (h *ChatHandler) History(c *gin.Context) {
	room := c.Query("room")
	if room == "" || !roomAllowed(room, c.GetString(middleware.CtxRole), middleware.PrincipalID(c)) {
		utils.JSONError(c, http.StatusForbidden, "You are not a member of this room", "")
		return
	}

	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	msgs, err := h.Service.History(room, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// UnreadCount returns the caller's unread notification count.
func (h *ChatHandler) UnreadCount(c *gin.Context) {
	n, err := h.Service.UnreadCount(middleware.PrincipalID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": n})
}

// MarkAllRead clears the caller's unread notifications.
func (h *ChatHandler) MarkAllRead(c *gin.Context) {
	if err := h.Service.MarkAllRead(middleware.PrincipalID(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications marked read"})
}

// PeerOnline reports whether the other party of a conversation is online.
func (h *ChatHandler) PeerOnline(c *gin.Context) {
	role := c.Query("role")
	id := c.Query("id")
	if (role != utils.RoleUser && role != utils.RoleProvider) || id == "" {
		utils.JSONError(c, http.StatusBadRequest, "role and id query parameters are required", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"online": h.Service.Presence.IsOnline(role, id)})
}
