package models

import "time"

// User represents a customer account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage string    `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	IsBlocked    bool      `bson:"is_blocked" json:"is_blocked"`
	IsVerified   bool      `bson:"is_verified" json:"is_verified"`
	GoogleAuth   bool      `bson:"google_auth,omitempty" json:"google_auth,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
