package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "fixify/database/repository/booking"
	scheduleRepo "fixify/database/repository/schedule"
	"fixify/models"
	"fixify/utils"
)

// --- in-memory fakes --------------------------------------------------

type fakeScheduleRepo struct {
	schedules map[string]*models.Schedule
	bookings  map[string]*models.Booking
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		schedules: make(map[string]*models.Schedule),
		bookings:  make(map[string]*models.Booking),
	}
}

func (f *fakeScheduleRepo) Create(s *models.Schedule) error {
	for _, existing := range f.schedules {
		if existing.ProviderID == s.ProviderID && existing.Date == s.Date {
			return scheduleRepo.ErrDuplicateSchedule
		}
	}
	f.schedules[s.ID] = s
	return nil
}

func (f *fakeScheduleRepo) GetByID(id string) (*models.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, scheduleRepo.ErrNotFound
	}
	return s, nil
}

func (f *fakeScheduleRepo) GetByRequestID(requestID string) (*models.Schedule, error) {
	for _, s := range f.schedules {
		if s.FindRequest(requestID) != nil {
			return s, nil
		}
	}
	return nil, scheduleRepo.ErrNotFound
}

func (f *fakeScheduleRepo) GetByProviderAndDate(providerID, date string) (*models.Schedule, error) {
	for _, s := range f.schedules {
		if s.ProviderID == providerID && s.Date == date {
			return s, nil
		}
	}
	return nil, scheduleRepo.ErrNotFound
}

func (f *fakeScheduleRepo) ListByProvider(providerID string) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, s := range f.schedules {
		if s.ProviderID == providerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListFromDate(providerID, date string) ([]models.Schedule, error) {
	return f.ListByProvider(providerID)
}

func (f *fakeScheduleRepo) AppendRequestIfSlotAvailable(scheduleID, slotTime string, req models.Request) error {
	s, ok := f.schedules[scheduleID]
	if !ok {
		return scheduleRepo.ErrNotFound
	}
	slot := s.FindSlot(slotTime)
	if slot == nil || slot.Status != models.SlotAvailable {
		return scheduleRepo.ErrSlotUnavailable
	}
	s.Requests = append(s.Requests, req)
	s.Version++
	return nil
}

func (f *fakeScheduleRepo) UpdateRequestStatus(requestID, status string) error {
	for _, s := range f.schedules {
		if req := s.FindRequest(requestID); req != nil {
			if req.Status != models.RequestPending {
				return scheduleRepo.ErrRequestNotPending
			}
			req.Status = status
			s.Version++
			return nil
		}
	}
	return scheduleRepo.ErrNotFound
}

func (f *fakeScheduleRepo) AcceptRequestTransactionally(ctx context.Context, scheduleID string, req models.Request, booking *models.Booking) error {
	s, ok := f.schedules[scheduleID]
	if !ok {
		return scheduleRepo.ErrNotFound
	}
	slot := s.FindSlot(req.Time)
	live := s.FindRequest(req.ID)
	if slot == nil || slot.Status != models.SlotAvailable || live == nil || live.Status != models.RequestPending {
		return scheduleRepo.ErrSlotUnavailable
	}
	slot.Status = models.SlotBooked
	live.Status = models.RequestBooked
	s.Version++
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeScheduleRepo) ReleaseSlotTransactionally(ctx context.Context, scheduleID, requestID, slotTime, bookingID string) error {
	s, ok := f.schedules[scheduleID]
	if !ok {
		return scheduleRepo.ErrNotFound
	}
	if slot := s.FindSlot(slotTime); slot != nil {
		slot.Status = models.SlotAvailable
	}
	if req := s.FindRequest(requestID); req != nil {
		req.Status = models.RequestCancelled
	}
	if bk, ok := f.bookings[bookingID]; ok {
		bk.Status = models.BookingCancelled
	}
	s.Version++
	return nil
}

type fakeBookingRepo struct {
	store *fakeScheduleRepo
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	bk, ok := f.store.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return bk, nil
}

func (f *fakeBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range f.store.bookings {
		if bk.UserID == userID {
			out = append(out, *bk)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByProvider(providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range f.store.bookings {
		if bk.ProviderID == providerID {
			out = append(out, *bk)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) SetReview(bookingID, reviewID string) error {
	bk, ok := f.store.bookings[bookingID]
	if !ok || bk.Status != models.BookingCompleted {
		return bookingRepo.ErrNotFound
	}
	bk.ReviewID = reviewID
	return nil
}

func (f *fakeBookingRepo) CountAll() (int64, error) {
	return int64(len(f.store.bookings)), nil
}

type fakeUserRepo struct{ users map[string]*models.User }

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, scheduleRepo.ErrNotFound
}
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error)  { return nil, scheduleRepo.ErrNotFound }
func (f *fakeUserRepo) GetAll() ([]models.User, error)           { return nil, nil }
func (f *fakeUserRepo) Create(*models.User) error                { return nil }
func (f *fakeUserRepo) Update(*models.User) error                { return nil }
func (f *fakeUserRepo) SetBlocked(string, bool) error            { return nil }
func (f *fakeUserRepo) SetVerified(string) error                 { return nil }
func (f *fakeUserRepo) UpdatePassword(string, string) error      { return nil }

type fakeProviderRepo struct{ providers map[string]*models.Provider }

func (f *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	if p, ok := f.providers[id]; ok {
		return p, nil
	}
	return nil, scheduleRepo.ErrNotFound
}
func (f *fakeProviderRepo) GetByEmail(string) (*models.Provider, error) {
	return nil, scheduleRepo.ErrNotFound
}
func (f *fakeProviderRepo) GetAll() ([]models.Provider, error) { return nil, nil }
func (f *fakeProviderRepo) ListApprovedByService(string) ([]models.Provider, error) {
	return nil, nil
}
func (f *fakeProviderRepo) Create(*models.Provider) error             { return nil }
func (f *fakeProviderRepo) Update(*models.Provider) error             { return nil }
func (f *fakeProviderRepo) SetBlocked(string, bool) error             { return nil }
func (f *fakeProviderRepo) SetVerified(string) error                  { return nil }
func (f *fakeProviderRepo) SetApproved(string, string, bool) error    { return nil }
func (f *fakeProviderRepo) UpdatePassword(string, string) error       { return nil }

// passthroughLocker runs the critical section without real locking.
type passthroughLocker struct{}

func (passthroughLocker) WithSlotLock(ctx context.Context, _, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) NotifyUser(_, eventType, _ string)     { n.events = append(n.events, "user:"+eventType) }
func (n *recordingNotifier) NotifyProvider(_, eventType, _ string) { n.events = append(n.events, "provider:"+eventType) }

// --- fixtures ---------------------------------------------------------

func newTestService() (*DefaultBookingService, *fakeScheduleRepo, *recordingNotifier) {
	store := newFakeScheduleRepo()
	notifier := &recordingNotifier{}
	svc := &DefaultBookingService{
		ScheduleRepo: store,
		BookingRepo:  &fakeBookingRepo{store: store},
		UserRepo: &fakeUserRepo{users: map[string]*models.User{
			"u1": {ID: "u1", Name: "Asha", Email: "asha@example.com"},
		}},
		ProviderRepo: &fakeProviderRepo{providers: map[string]*models.Provider{
			"p1": {ID: "p1", Name: "Ravi", ServiceID: "svc1", IsApproved: true},
		}},
		Locker: passthroughLocker{},
		Notify: notifier,
	}
	store.schedules["s1"] = &models.Schedule{
		ID:         "s1",
		ProviderID: "p1",
		Date:       time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Location:   "Kochi",
		Slots:      models.NewSlots(),
		Version:    1,
	}
	return svc, store, notifier
}

// --- tests ------------------------------------------------------------

func TestRequestSlotHappyPath(t *testing.T) {
	svc, store, notifier := newTestService()

	req, err := svc.RequestSlot(context.Background(), "u1", "s1", "8:00 am-9:00 am", "12 Hill Rd", "leaky tap")
	if err != nil {
		t.Fatalf("RequestSlot: %v", err)
	}
	if req.Status != models.RequestPending {
		t.Errorf("request status = %q, want pending", req.Status)
	}
	if store.schedules["s1"].FindRequest(req.ID) == nil {
		t.Error("request was not appended to the schedule")
	}
	if len(notifier.events) != 1 || notifier.events[0] != "provider:booking_request" {
		t.Errorf("notifier events = %v", notifier.events)
	}
}

func TestRequestSlotUnknownSlot(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.RequestSlot(context.Background(), "u1", "s1", "7:00 am-8:00 am", "addr", "")
	if utils.KindOf(err) != utils.KindInvalid {
		t.Fatalf("expected invalid kind, got %v", err)
	}
}

func TestAcceptRequestCreatesBookingOnce(t *testing.T) {
	svc, store, notifier := newTestService()

	req, err := svc.RequestSlot(context.Background(), "u1", "s1", "9:00 am-10:00 am", "addr", "")
	if err != nil {
		t.Fatalf("RequestSlot: %v", err)
	}

	bk, err := svc.ChangeRequestStatus(context.Background(), "p1", req.ID, models.RequestBooked)
	if err != nil {
		t.Fatalf("ChangeRequestStatus: %v", err)
	}
	if bk == nil || bk.Status != models.BookingConfirmed {
		t.Fatalf("booking = %+v", bk)
	}
	if bk.UserAddress != "addr" {
		t.Errorf("address not denormalized: %q", bk.UserAddress)
	}
	if store.schedules["s1"].FindSlot("9:00 am-10:00 am").Status != models.SlotBooked {
		t.Error("slot was not consumed")
	}

	// A second acceptance of the same request must fail cleanly.
	if _, err := svc.ChangeRequestStatus(context.Background(), "p1", req.ID, models.RequestBooked); utils.KindOf(err) != utils.KindConflict {
		t.Fatalf("second acceptance: expected conflict, got %v", err)
	}
	if len(store.bookings) != 1 {
		t.Fatalf("expected exactly one booking, got %d", len(store.bookings))
	}

	found := false
	for _, e := range notifier.events {
		if e == "user:booking_confirmed" {
			found = true
		}
	}
	if !found {
		t.Errorf("user was never notified of confirmation: %v", notifier.events)
	}
}

func TestDecideRequestWrongProvider(t *testing.T) {
	svc, _, _ := newTestService()

	req, _ := svc.RequestSlot(context.Background(), "u1", "s1", "9:00 am-10:00 am", "addr", "")
	if _, err := svc.ChangeRequestStatus(context.Background(), "p2", req.ID, models.RequestBooked); utils.KindOf(err) != utils.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestRejectRequest(t *testing.T) {
	svc, store, _ := newTestService()

	req, _ := svc.RequestSlot(context.Background(), "u1", "s1", "9:00 am-10:00 am", "addr", "")
	bk, err := svc.ChangeRequestStatus(context.Background(), "p1", req.ID, models.RequestCancelled)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if bk != nil {
		t.Fatalf("rejection must not create a booking, got %+v", bk)
	}
	if store.schedules["s1"].FindSlot("9:00 am-10:00 am").Status != models.SlotAvailable {
		t.Error("rejection must leave the slot available")
	}
}

func TestCancelBookingOutsideWindow(t *testing.T) {
	svc, store, _ := newTestService()

	req, _ := svc.RequestSlot(context.Background(), "u1", "s1", "9:00 am-10:00 am", "addr", "")
	bk, err := svc.ChangeRequestStatus(context.Background(), "p1", req.ID, models.RequestBooked)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	// Schedule is a week out, so the slot start is well past the window.
	if err := svc.CancelBooking(context.Background(), "u1", bk.ID); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if store.schedules["s1"].FindSlot("9:00 am-10:00 am").Status != models.SlotAvailable {
		t.Error("cancellation must free the slot")
	}
	if store.bookings[bk.ID].Status != models.BookingCancelled {
		t.Error("booking was not cancelled")
	}
}

func TestCancelBookingInsideWindow(t *testing.T) {
	svc, store, _ := newTestService()

	// Move the schedule to today so every slot start is within hours.
	store.schedules["s1"].Date = time.Now().Format("2006-01-02")

	req, _ := svc.RequestSlot(context.Background(), "u1", "s1", "12:00 am -1:00 am", "addr", "")
	bk, err := svc.ChangeRequestStatus(context.Background(), "p1", req.ID, models.RequestBooked)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	// Midnight today is already in the past.
	if err := svc.CancelBooking(context.Background(), "u1", bk.ID); utils.KindOf(err) != utils.KindConflict {
		t.Fatalf("expected conflict inside the window, got %v", err)
	}
}

func TestCancelBookingWrongUser(t *testing.T) {
	svc, _, _ := newTestService()

	req, _ := svc.RequestSlot(context.Background(), "u1", "s1", "9:00 am-10:00 am", "addr", "")
	bk, _ := svc.ChangeRequestStatus(context.Background(), "p1", req.ID, models.RequestBooked)

	if err := svc.CancelBooking(context.Background(), "u2", bk.ID); utils.KindOf(err) != utils.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
