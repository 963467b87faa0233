package provider

import (
	"errors"
	"time"

	scheduleRepo "fixify/database/repository/schedule"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// dateBeforeDay reports whether a YYYY-MM-DD date falls before now's
// calendar day in the given location. Comparing formatted dates keeps
// "today" correct near midnight, where a UTC truncation would not.
func dateBeforeDay(date string, now time.Time, loc *time.Location) bool {
	return date < now.In(loc).Format(dateLayout)
}

// CreateSchedule publishes the fixed slot grid for one date. Only
// approved, unblocked providers may publish, and only one schedule may
// exist per provider per date.
func (s *DefaultProviderService) CreateSchedule(providerID, date, location string) (*models.Schedule, error) {
	p, err := s.GetProviderByID(providerID)
	if err != nil {
		return nil, err
	}
	if !p.IsApproved {
		return nil, utils.NewAppError(utils.KindForbidden, "provider is not approved to publish schedules")
	}
	if p.IsBlocked {
		return nil, utils.NewAppError(utils.KindBlocked, "account is blocked")
	}
	if location == "" {
		return nil, utils.NewAppError(utils.KindInvalid, "location is required")
	}

	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, utils.NewAppError(utils.KindInvalid, "date must be in YYYY-MM-DD format")
	}
	if dateBeforeDay(date, time.Now(), time.Local) {
		return nil, utils.NewAppError(utils.KindInvalid, "cannot create a schedule in the past")
	}

	schedule := &models.Schedule{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		Date:       date,
		Location:   location,
		Slots:      models.NewSlots(),
		Requests:   []models.Request{},
		Version:    1,
	}
	if err := s.ScheduleRepo.Create(schedule); err != nil {
		if errors.Is(err, scheduleRepo.ErrDuplicateSchedule) {
			return nil, utils.NewAppError(utils.KindConflict, "a schedule already exists for this date")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to create schedule", err)
	}
	return schedule, nil
}

// ListSchedules returns a provider's schedules, optionally from a date onward.
func (s *DefaultProviderService) ListSchedules(providerID, fromDate string) ([]models.Schedule, error) {
	var (
		schedules []models.Schedule
		err       error
	)
	if fromDate == "" {
		schedules, err = s.ScheduleRepo.ListByProvider(providerID)
	} else {
		schedules, err = s.ScheduleRepo.ListFromDate(providerID, fromDate)
	}
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to list schedules", err)
	}
	return schedules, nil
}
