package chat

import (
	"encoding/json"
	"time"

	chatRepo "fixify/database/repository/chat"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoomFor names the single conversation room shared by a customer and a
// provider. The name is deterministic from either side.
func RoomFor(userID, providerID string) string {
	return "chat:" + userID + ":" + providerID
}

// notifyRoom is a principal's private notification stream.
func notifyRoom(role, id string) string {
	return "notify:" + role + ":" + id
}

// ChatService owns messaging and in-app notifications. It implements the
// booking service's Notifier port: a notification is persisted first, then
// pushed to the recipient's private room if they are connected.
type ChatService struct {
	Repo     chatRepo.ChatRepository
	Hub      *Hub
	Presence *PresenceStore
}

func NewChatService(repo chatRepo.ChatRepository, hub *Hub, presence *PresenceStore) *ChatService {
	return &ChatService{Repo: repo, Hub: hub, Presence: presence}
}

func (s *ChatService) NotifyUser(userID, eventType, message string) {
	s.notify(utils.RoleUser, userID, eventType, message)
}

func (s *ChatService) NotifyProvider(providerID, eventType, message string) {
	s.notify(utils.RoleProvider, providerID, eventType, message)
}

func (s *ChatService) notify(role, recipientID, eventType, message string) {
	n := &models.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		Type:        eventType,
		Message:     message,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.SaveNotification(n); err != nil {
		utils.GetLogger().Error("failed to persist notification",
			zap.String("recipientId", recipientID), zap.Error(err))
		return
	}

	unread, err := s.Repo.UnreadCount(recipientID)
	if err != nil {
		utils.GetLogger().Warn("failed to count unread notifications",
			zap.String("recipientId", recipientID), zap.Error(err))
	}

	out := outboundPayload{
		Action:    "notification",
		ID:        n.ID,
		SenderID:  n.Type,
		Content:   n.Message,
		Unread:    unread,
		Timestamp: n.CreatedAt.Unix(),
	}
	if data, err := json.Marshal(out); err == nil {
		s.Hub.Broadcast(notifyRoom(role, recipientID), data)
	}
}

// History returns the most recent messages of a room, oldest first.
func (s *ChatService) History(room string, limit int64) ([]models.ChatMessage, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	msgs, err := s.Repo.ListRecent(room, limit)
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load chat history", err)
	}
	return msgs, nil
}

func (s *ChatService) UnreadCount(recipientID string) (int64, error) {
	n, err := s.Repo.UnreadCount(recipientID)
	if err != nil {
		return 0, utils.WrapAppError(utils.KindInternal, "failed to count notifications", err)
	}
	return n, nil
}

func (s *ChatService) MarkAllRead(recipientID string) error {
	if err := s.Repo.MarkAllRead(recipientID); err != nil {
		return utils.WrapAppError(utils.KindInternal, "failed to mark notifications read", err)
	}
	return nil
}
