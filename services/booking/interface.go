package booking

import (
	"context"

	"fixify/cron"
	bookingRepo "fixify/database/repository/booking"
	providerRepo "fixify/database/repository/provider"
	reviewRepo "fixify/database/repository/review"
	scheduleRepo "fixify/database/repository/schedule"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/utils"
)

// Notifier is the outbound event port. The chat hub implements it; the
// booking service never touches the transport directly.
type Notifier interface {
	NotifyUser(userID, eventType, message string)
	NotifyProvider(providerID, eventType, message string)
}

// BookingService drives the slot-reservation workflow: a customer raises
// a pending request against a slot, the provider accepts or rejects it,
// acceptance materializes a Booking.
type BookingService interface {
	// RequestSlot appends a pending request for an available slot. The
	// per-slot lock plus the guarded write keep concurrent claims out.
	RequestSlot(ctx context.Context, userID, scheduleID, slotTime, address, description string) (*models.Request, error)

	// ChangeRequestStatus accepts ("booked") or rejects ("cancelled") a
	// pending request. On acceptance the returned Booking is non-nil.
	ChangeRequestStatus(ctx context.Context, providerID, requestID, status string) (*models.Booking, error)

	// CancelBooking is the customer-initiated cancellation, permitted
	// only while the slot start is more than three hours away.
	CancelBooking(ctx context.Context, userID, bookingID string) error

	ListUserBookings(userID string) ([]models.Booking, error)
	ListProviderBookings(providerID string) ([]models.Booking, error)
	// GetOpenSlots lists a provider's still-available slots for a date.
	GetOpenSlots(providerID, date string) (*models.Schedule, []models.Slot, error)

	// LeaveReview rates a completed booking. One review per booking.
	LeaveReview(userID, bookingID string, rating int, comment string) (*models.Review, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
	UserRepo     userRepo.UserRepository
	ProviderRepo providerRepo.ProviderRepository
	ReviewRepo   reviewRepo.ReviewRepository
	Locker       utils.SlotLocker
	Mail         *cron.MailQueue
	Notify       Notifier
}
