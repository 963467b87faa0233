package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixify/cron"
	scheduleRepo "fixify/database/repository/schedule"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChangeRequestStatus is the provider's decision on a pending request.
// Acceptance materializes a Booking and consumes the slot in one
// transaction; rejection only flips the request. On acceptance the
// confirmation email and the user notification go out after the commit.
func (s *DefaultBookingService) ChangeRequestStatus(ctx context.Context, providerID, requestID, status string) (*models.Booking, error) {
	if status != models.RequestBooked && status != models.RequestCancelled {
		return nil, utils.NewAppError(utils.KindInvalid, "status must be booked or cancelled")
	}

	schedule, err := s.ScheduleRepo.GetByRequestID(requestID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "booking request not found")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load booking request", err)
	}
	if schedule.ProviderID != providerID {
		return nil, utils.NewAppError(utils.KindForbidden, "request belongs to another provider")
	}

	req := schedule.FindRequest(requestID)
	if req == nil {
		return nil, utils.NewAppError(utils.KindNotFound, "booking request not found")
	}
	if req.Status != models.RequestPending {
		return nil, utils.NewAppError(utils.KindConflict, "booking request already decided")
	}

	if status == models.RequestCancelled {
		if err := s.ScheduleRepo.UpdateRequestStatus(requestID, models.RequestCancelled); err != nil {
			if errors.Is(err, scheduleRepo.ErrRequestNotPending) {
				return nil, utils.NewAppError(utils.KindConflict, "booking request already decided")
			}
			return nil, utils.WrapAppError(utils.KindInternal, "failed to reject request", err)
		}
		if s.Notify != nil {
			s.Notify.NotifyUser(req.UserID, "booking_rejected",
				fmt.Sprintf("Your booking request for %s on %s was declined", req.Time, schedule.Date))
		}
		return nil, nil
	}

	provider, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load provider", err)
	}

	now := time.Now()
	bk := &models.Booking{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		ProviderID:  providerID,
		ServiceID:   provider.ServiceID,
		ScheduleID:  schedule.ID,
		RequestID:   req.ID,
		UserAddress: req.Address,
		Time:        req.Time,
		Date:        schedule.Date,
		Status:      models.BookingConfirmed,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.ScheduleRepo.AcceptRequestTransactionally(ctx, schedule.ID, *req, bk); err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotUnavailable) {
			return nil, utils.NewAppError(utils.KindConflict, "slot is no longer available")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to accept request", err)
	}

	s.afterAccept(bk, provider.Name)
	return bk, nil
}

// afterAccept runs the post-commit side effects. Failures here are logged
// but never unwind the booking; the transaction has already committed.
func (s *DefaultBookingService) afterAccept(bk *models.Booking, providerName string) {
	logger := utils.GetLogger()

	user, err := s.UserRepo.GetByID(bk.UserID)
	if err != nil {
		logger.Error("booking confirmed but user lookup failed",
			zap.String("bookingId", bk.ID), zap.Error(err))
		return
	}

	if s.Mail != nil {
		err := s.Mail.EnqueueBookingConfirmation(cron.BookingEmailPayload{
			Email:        user.Email,
			Name:         user.Name,
			BookingID:    bk.ID,
			ProviderName: providerName,
			Date:         bk.Date,
			Time:         bk.Time,
			Address:      bk.UserAddress,
		})
		if err != nil {
			logger.Error("failed to enqueue booking confirmation email",
				zap.String("bookingId", bk.ID), zap.Error(err))
		}
	}

	if s.Notify != nil {
		s.Notify.NotifyUser(bk.UserID, "booking_confirmed",
			fmt.Sprintf("Your booking with %s for %s on %s is confirmed", providerName, bk.Time, bk.Date))
	}

	logger.Info("booking confirmed",
		zap.String("bookingId", bk.ID),
		zap.String("providerId", bk.ProviderID),
		zap.String("date", bk.Date),
		zap.String("slot", bk.Time))
}
