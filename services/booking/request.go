package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleRepo "fixify/database/repository/schedule"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestSlot appends a pending request for an available slot. The Redis
// per-slot lock serializes concurrent claims; inside the critical
// section the guarded Mongo write re-checks that the slot is still
// available, so losing the race surfaces as a clean conflict rather
// than a double claim.
func (s *DefaultBookingService) RequestSlot(ctx context.Context, userID, scheduleID, slotTime, address, description string) (*models.Request, error) {
	if address == "" {
		return nil, utils.NewAppError(utils.KindInvalid, "service address is required")
	}

	schedule, err := s.ScheduleRepo.GetByID(scheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "schedule not found")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load schedule", err)
	}

	slot := schedule.FindSlot(slotTime)
	if slot == nil {
		return nil, utils.NewAppError(utils.KindInvalid, "no such slot on this schedule")
	}
	if slot.Status != models.SlotAvailable {
		return nil, utils.NewAppError(utils.KindConflict, "slot is not available")
	}
	for _, r := range schedule.Requests {
		if r.UserID == userID && r.Time == slotTime && r.Status == models.RequestPending {
			return nil, utils.NewAppError(utils.KindConflict, "you already have a pending request for this slot")
		}
	}

	req := models.Request{
		ID:          uuid.New().String(),
		UserID:      userID,
		Address:     address,
		Time:        slotTime,
		Description: description,
		Status:      models.RequestPending,
		CreatedAt:   time.Now(),
	}

	err = s.Locker.WithSlotLock(ctx, scheduleID, slotTime, func(lockCtx context.Context) error {
		return s.ScheduleRepo.AppendRequestIfSlotAvailable(scheduleID, slotTime, req)
	})
	if err != nil {
		if errors.Is(err, utils.ErrLockNotAcquired) {
			return nil, utils.NewAppError(utils.KindConflict, "slot is being requested, please retry")
		}
		if errors.Is(err, scheduleRepo.ErrSlotUnavailable) {
			return nil, utils.NewAppError(utils.KindConflict, "slot is not available")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to request slot", err)
	}

	if s.Notify != nil {
		s.Notify.NotifyProvider(schedule.ProviderID, "booking_request",
			fmt.Sprintf("New booking request for %s on %s", slotTime, schedule.Date))
	}
	utils.GetLogger().Info("booking request created",
		zap.String("requestId", req.ID),
		zap.String("scheduleId", scheduleID),
		zap.String("slot", slotTime))

	return &req, nil
}
