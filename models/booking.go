package models

import "time"

// Booking statuses.
const (
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking is the materialized appointment created when a provider accepts
// a slot request. The user address is denormalized at acceptance time.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	ProviderID  string    `bson:"provider_id" json:"provider_id"`
	ServiceID   string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	ScheduleID  string    `bson:"schedule_id" json:"schedule_id"`
	RequestID   string    `bson:"request_id" json:"request_id"`
	UserAddress string    `bson:"user_address" json:"user_address"`
	Time        string    `bson:"time" json:"time"`
	Date        string    `bson:"date" json:"date"`
	Status      string    `bson:"status" json:"status"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	PaymentID   string    `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	ReviewID    string    `bson:"review_id,omitempty" json:"review_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
