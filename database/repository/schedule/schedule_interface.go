package scheduleRepo

import (
	"context"
	"errors"

	"fixify/models"
)

var (
	// ErrNotFound distinguishes a missing schedule from a database failure.
	ErrNotFound = errors.New("schedule not found")
	// ErrDuplicateSchedule is returned when a provider already has a
	// schedule for the date (unique provider+date index).
	ErrDuplicateSchedule = errors.New("schedule already exists for this date")
	// ErrSlotUnavailable is returned when the guarded write matched no
	// document because the slot is no longer available.
	ErrSlotUnavailable = errors.New("slot is not available")
	// ErrRequestNotPending is returned when a request has already left
	// the pending state; a request transitions out of pending exactly once.
	ErrRequestNotPending = errors.New("booking request is not pending")
)

// ScheduleRepository defines data access for per-provider, per-day schedules.
type ScheduleRepository interface {
	Create(schedule *models.Schedule) error
	GetByID(id string) (*models.Schedule, error)
	// GetByRequestID finds the schedule embedding the given request.
	GetByRequestID(requestID string) (*models.Schedule, error)
	GetByProviderAndDate(providerID, date string) (*models.Schedule, error)
	ListByProvider(providerID string) ([]models.Schedule, error)
	// ListFromDate lists a provider's schedules on or after the given date.
	ListFromDate(providerID, date string) ([]models.Schedule, error)

	// AppendRequestIfSlotAvailable appends a pending request iff the named
	// slot is still available. Returns ErrSlotUnavailable when the guard
	// matched nothing.
	AppendRequestIfSlotAvailable(scheduleID, slotTime string, req models.Request) error

	// UpdateRequestStatus moves a request out of pending. Returns
	// ErrRequestNotPending when the transition was already taken.
	UpdateRequestStatus(requestID, status string) error

	// AcceptRequestTransactionally creates the booking, consumes the slot
	// and marks the request booked in a single multi-document transaction.
	// Either everything commits or nothing does.
	AcceptRequestTransactionally(ctx context.Context, scheduleID string, req models.Request, booking *models.Booking) error

	// ReleaseSlotTransactionally cancels a confirmed booking, frees its
	// slot and marks the originating request cancelled atomically.
	ReleaseSlotTransactionally(ctx context.Context, scheduleID, requestID, slotTime, bookingID string) error
}
