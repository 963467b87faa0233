package booking

import (
	"errors"

	bookingRepo "fixify/database/repository/booking"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
)

// LeaveReview rates a completed booking. The unique booking index plus
// the completed-status guard on SetReview keep it to one review each.
func (s *DefaultBookingService) LeaveReview(userID, bookingID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, utils.NewAppError(utils.KindInvalid, "rating must be between 1 and 5")
	}

	bk, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "booking not found")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load booking", err)
	}
	if bk.UserID != userID {
		return nil, utils.NewAppError(utils.KindForbidden, "booking belongs to another user")
	}
	if bk.Status != models.BookingCompleted {
		return nil, utils.NewAppError(utils.KindConflict, "only completed bookings can be reviewed")
	}
	if bk.ReviewID != "" {
		return nil, utils.NewAppError(utils.KindConflict, "booking is already reviewed")
	}

	review := &models.Review{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.ReviewRepo.Create(review); err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to save review", err)
	}
	if err := s.BookingRepo.SetReview(bookingID, review.ID); err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to link review", err)
	}
	return review, nil
}
