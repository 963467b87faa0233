package models

import "time"

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment modes. "by cash" is the literal value the frontend sends.
const (
	PaymentModeCash   = "by cash"
	PaymentModeOnline = "online"
)

// Payment is attached to a booking once the work is done. Cash payments
// are completed immediately; online payments stay pending until the
// Stripe intent confirms.
type Payment struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"booking_id" json:"booking_id"`
	Amount    int64     `bson:"amount" json:"amount"`
	SiteFee   int64     `bson:"site_fee" json:"site_fee"`
	Status    string    `bson:"payment_status" json:"payment_status"`
	Mode      string    `bson:"payment_mode" json:"payment_mode"`
	IntentID  string    `bson:"intent_id,omitempty" json:"intent_id,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
