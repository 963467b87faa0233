package models

import "time"

// Slot statuses.
const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
	SlotBlocked   = "blocked"
)

// Request statuses.
const (
	RequestPending   = "pending"
	RequestBooked    = "booked"
	RequestCancelled = "cancelled"
)

// DefaultSlotTimes is the fixed list of windows seeded into every new
// schedule. The two midday labels are malformed ("12:00am" without a
// space, "12:00 am -1:00 am" instead of pm) but are kept verbatim: the
// frontend matches slots by the literal label string.
var DefaultSlotTimes = []string{
	"8:00 am-9:00 am",
	"9:00 am-10:00 am",
	"10:00 am-11:00 am",
	"11:00 am-12:00am",
	"12:00 am -1:00 am",
	"1:00 pm-2:00 pm",
	"2:00 pm-3:00 pm",
	"3:00 pm-4:00 pm",
	"4:00 pm-5:00 pm",
	"5:00 pm-6:00 pm",
	"6:00 pm-7:00 pm",
}

// Slot is one fixed time window on a provider's daily schedule.
type Slot struct {
	Time   string `bson:"time" json:"time"`
	Status string `bson:"status" json:"status"`
}

// Request is a customer's pending claim on a slot, embedded in the schedule.
type Request struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Address     string    `bson:"address" json:"address"`
	Time        string    `bson:"time" json:"time"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Schedule is one document per provider per date. Version is bumped on
// every slot/request mutation and acts as the optimistic-lock guard.
type Schedule struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	Date       string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Location   string    `bson:"location" json:"location"`
	Slots      []Slot    `bson:"slots" json:"slots"`
	Requests   []Request `bson:"requests" json:"requests"`
	Version    int       `bson:"version" json:"version"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// NewSlots returns a freshly seeded slot list for a new schedule.
func NewSlots() []Slot {
	slots := make([]Slot, 0, len(DefaultSlotTimes))
	for _, t := range DefaultSlotTimes {
		slots = append(slots, Slot{Time: t, Status: SlotAvailable})
	}
	return slots
}

// FindRequest returns the embedded request with the given id, or nil.
func (s *Schedule) FindRequest(requestID string) *Request {
	for i := range s.Requests {
		if s.Requests[i].ID == requestID {
			return &s.Requests[i]
		}
	}
	return nil
}

// FindSlot returns the slot with the given literal time label, or nil.
func (s *Schedule) FindSlot(slotTime string) *Slot {
	for i := range s.Slots {
		if s.Slots[i].Time == slotTime {
			return &s.Slots[i]
		}
	}
	return nil
}
