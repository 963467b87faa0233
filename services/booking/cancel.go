package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "fixify/database/repository/booking"
	"fixify/models"
	"fixify/utils"

	"go.uber.org/zap"
)

// CancelBooking is the customer-initiated cancellation. It is only
// permitted while the slot start is more than CancellationWindow away;
// the slot is released and the originating request cancelled in the same
// transaction that cancels the booking.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, userID, bookingID string) error {
	bk, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return utils.NewAppError(utils.KindNotFound, "booking not found")
		}
		return utils.WrapAppError(utils.KindInternal, "failed to load booking", err)
	}
	if bk.UserID != userID {
		return utils.NewAppError(utils.KindForbidden, "booking belongs to another user")
	}
	if bk.Status != models.BookingConfirmed {
		return utils.NewAppError(utils.KindConflict, "only confirmed bookings can be cancelled")
	}

	slotStart, err := SlotStartTime(bk.Date, bk.Time, time.Local)
	if err != nil {
		return utils.WrapAppError(utils.KindInternal, "failed to resolve slot time", err)
	}
	if !Cancellable(slotStart, time.Now()) {
		return utils.NewAppError(utils.KindConflict,
			"bookings can only be cancelled more than 3 hours before the slot")
	}

	if err := s.ScheduleRepo.ReleaseSlotTransactionally(ctx, bk.ScheduleID, bk.RequestID, bk.Time, bk.ID); err != nil {
		return utils.WrapAppError(utils.KindInternal, "failed to cancel booking", err)
	}

	if s.Notify != nil {
		s.Notify.NotifyProvider(bk.ProviderID, "booking_cancelled",
			fmt.Sprintf("Booking for %s on %s was cancelled by the customer", bk.Time, bk.Date))
	}
	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingId", bk.ID),
		zap.String("userId", userID))
	return nil
}
