package models

import "time"

// Approval statuses.
const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
)

// Approval is a provider's application to become an active technician.
// At most one pending application per provider.
type Approval struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	ServiceID  string    `bson:"service_id" json:"service_id"`
	Experience string    `bson:"experience" json:"experience"`
	ImageURLs  []string  `bson:"image_urls,omitempty" json:"image_urls,omitempty"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
