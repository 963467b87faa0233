package models

import "time"

// Provider represents a technician account. A provider may only publish
// schedules once an admin has approved their application.
type Provider struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage string    `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	ServiceID    string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	IsBlocked    bool      `bson:"is_blocked" json:"is_blocked"`
	IsVerified   bool      `bson:"is_verified" json:"is_verified"`
	IsApproved   bool      `bson:"is_approved" json:"is_approved"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
