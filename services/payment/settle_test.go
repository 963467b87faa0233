package payment

import (
	"context"
	"errors"
	"testing"

	bookingRepo "fixify/database/repository/booking"
	paymentRepo "fixify/database/repository/payment"
	"fixify/models"
	"fixify/utils"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	if bk, ok := f.bookings[id]; ok {
		cp := *bk
		return &cp, nil
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookingRepo) ListByUser(string) ([]models.Booking, error)     { return nil, nil }
func (f *fakeBookingRepo) ListByProvider(string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) SetReview(string, string) error                  { return nil }
func (f *fakeBookingRepo) CountAll() (int64, error)                        { return 0, nil }

// fakePaymentRepo settles all-or-nothing, mirroring the mongo
// transaction: a forced failure leaves neither the payment nor the
// booking touched.
type fakePaymentRepo struct {
	payments    map[string]*models.Payment
	bookings    *fakeBookingRepo
	failSettles int
}

func (f *fakePaymentRepo) Create(p *models.Payment) error {
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentRepo) GetByID(id string) (*models.Payment, error) {
	if p, ok := f.payments[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, paymentRepo.ErrNotFound
}

func (f *fakePaymentRepo) GetByIntentID(intentID string) (*models.Payment, error) {
	for _, p := range f.payments {
		if p.IntentID == intentID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, paymentRepo.ErrNotFound
}

func (f *fakePaymentRepo) MarkFailed(id string) error {
	p, ok := f.payments[id]
	if !ok || p.Status != models.PaymentPending {
		return paymentRepo.ErrNotFound
	}
	p.Status = models.PaymentFailed
	return nil
}

func (f *fakePaymentRepo) SettleCashTransactionally(_ context.Context, p *models.Payment) error {
	if f.failSettles > 0 {
		f.failSettles--
		return errors.New("settlement aborted")
	}
	bk, ok := f.bookings.bookings[p.BookingID]
	if !ok || bk.Status != models.BookingConfirmed || bk.PaymentID != "" {
		return paymentRepo.ErrBookingNotPayable
	}
	f.payments[p.ID] = p
	bk.Status = models.BookingCompleted
	bk.PaymentID = p.ID
	return nil
}

func (f *fakePaymentRepo) SettleIntentTransactionally(_ context.Context, paymentID, bookingID string, siteFee int64) error {
	p, ok := f.payments[paymentID]
	if !ok || p.Status != models.PaymentPending {
		return paymentRepo.ErrNotFound
	}
	bk, ok := f.bookings.bookings[bookingID]
	if !ok || bk.Status != models.BookingConfirmed || bk.PaymentID != "" {
		return paymentRepo.ErrBookingNotPayable
	}
	p.Status = models.PaymentCompleted
	p.SiteFee = siteFee
	bk.Status = models.BookingCompleted
	bk.PaymentID = paymentID
	return nil
}

func newCashFixture() (*DefaultPaymentService, *fakePaymentRepo) {
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{
		"b1": {
			ID:     "b1",
			UserID: "u1",
			Status: models.BookingConfirmed,
		},
	}}
	repo := &fakePaymentRepo{
		payments: map[string]*models.Payment{},
		bookings: bookings,
	}
	return &DefaultPaymentService{Repo: repo, BookingRepo: bookings}, repo
}

func TestRecordCashPaymentCompletesBooking(t *testing.T) {
	svc, repo := newCashFixture()

	p, err := svc.RecordCashPayment(context.Background(), "u1", "b1", 250)
	if err != nil {
		t.Fatalf("RecordCashPayment: %v", err)
	}
	if p.Status != models.PaymentCompleted {
		t.Errorf("payment status = %q, want %q", p.Status, models.PaymentCompleted)
	}
	if p.SiteFee != 25 {
		t.Errorf("site fee = %d, want 25", p.SiteFee)
	}

	bk := repo.bookings.bookings["b1"]
	if bk.Status != models.BookingCompleted {
		t.Errorf("booking status = %q, want %q", bk.Status, models.BookingCompleted)
	}
	if bk.PaymentID != p.ID {
		t.Errorf("booking payment id = %q, want %q", bk.PaymentID, p.ID)
	}
}

func TestRecordCashPaymentRetryAfterFailedSettlement(t *testing.T) {
	svc, repo := newCashFixture()
	repo.failSettles = 1

	if _, err := svc.RecordCashPayment(context.Background(), "u1", "b1", 100); err == nil {
		t.Fatal("expected first settlement to fail")
	}
	if len(repo.payments) != 0 {
		t.Fatalf("failed settlement left %d payment(s) behind", len(repo.payments))
	}
	if bk := repo.bookings.bookings["b1"]; bk.Status != models.BookingConfirmed || bk.PaymentID != "" {
		t.Fatalf("failed settlement touched the booking: status=%q paymentID=%q", bk.Status, bk.PaymentID)
	}

	if _, err := svc.RecordCashPayment(context.Background(), "u1", "b1", 100); err != nil {
		t.Fatalf("retry after failed settlement: %v", err)
	}
	if len(repo.payments) != 1 {
		t.Fatalf("got %d payments after retry, want exactly 1", len(repo.payments))
	}
}

func TestRecordCashPaymentTwiceConflicts(t *testing.T) {
	svc, _ := newCashFixture()

	if _, err := svc.RecordCashPayment(context.Background(), "u1", "b1", 100); err != nil {
		t.Fatalf("first payment: %v", err)
	}
	_, err := svc.RecordCashPayment(context.Background(), "u1", "b1", 100)
	if utils.KindOf(err) != utils.KindConflict {
		t.Errorf("second payment kind = %v, want conflict", utils.KindOf(err))
	}
}

func TestRecordCashPaymentWrongUser(t *testing.T) {
	svc, _ := newCashFixture()

	_, err := svc.RecordCashPayment(context.Background(), "intruder", "b1", 100)
	if utils.KindOf(err) != utils.KindForbidden {
		t.Errorf("kind = %v, want forbidden", utils.KindOf(err))
	}
}
