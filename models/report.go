package models

import "time"

// Report reasons.
const (
	ReasonFraud            = "fraud"
	ReasonAbusiveBehaviour = "abusive_behaviour"
	ReasonPoorService      = "poor_service"
	ReasonSpam             = "spam"
	ReasonOther            = "other"
)

// ValidReportReason reports whether the reason is one of the known values.
func ValidReportReason(reason string) bool {
	switch reason {
	case ReasonFraud, ReasonAbusiveBehaviour, ReasonPoorService, ReasonSpam, ReasonOther:
		return true
	}
	return false
}

// Report is a complaint filed by one party against another. There is no
// workflow beyond listing plus a manual admin block.
type Report struct {
	ID           string    `bson:"id" json:"id"`
	ReporterID   string    `bson:"reporter_id" json:"reporter_id"`
	ReportedID   string    `bson:"reported_id" json:"reported_id"`
	ReportedRole string    `bson:"reported_role" json:"reported_role"` // "user" or "provider"
	Reason       string    `bson:"reason" json:"reason"`
	BookingID    string    `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
