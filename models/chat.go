package models

import "time"

// ChatMessage is one message in a user<->provider room.
type ChatMessage struct {
	ID        string    `bson:"id" json:"id"`
	Room      string    `bson:"room" json:"room"`
	SenderID  string    `bson:"sender_id" json:"senderId"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Notification is a persisted in-app notification with an unread flag.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	RecipientID string    `bson:"recipient_id" json:"recipientId"`
	Type        string    `bson:"type" json:"type"`
	Message     string    `bson:"message" json:"message"`
	Read        bool      `bson:"read" json:"read"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
