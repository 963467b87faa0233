package booking

import (
	"errors"

	scheduleRepo "fixify/database/repository/schedule"
	"fixify/models"
	"fixify/utils"
)

func (s *DefaultBookingService) ListUserBookings(userID string) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.ListByUser(userID)
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to list bookings", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) ListProviderBookings(providerID string) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.ListByProvider(providerID)
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to list bookings", err)
	}
	return bookings, nil
}

// GetOpenSlots returns a provider's schedule for the date together with
// the slots still open for requesting.
func (s *DefaultBookingService) GetOpenSlots(providerID, date string) (*models.Schedule, []models.Slot, error) {
	schedule, err := s.ScheduleRepo.GetByProviderAndDate(providerID, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return nil, nil, utils.NewAppError(utils.KindNotFound, "no schedule for this date")
		}
		return nil, nil, utils.WrapAppError(utils.KindInternal, "failed to load schedule", err)
	}

	open := make([]models.Slot, 0, len(schedule.Slots))
	for _, slot := range schedule.Slots {
		if slot.Status == models.SlotAvailable {
			open = append(open, slot)
		}
	}
	return schedule, open, nil
}
