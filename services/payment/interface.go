package payment

import (
	"context"

	bookingRepo "fixify/database/repository/booking"
	paymentRepo "fixify/database/repository/payment"
	"fixify/models"
)

// PaymentService records payment for completed work. Cash settles
// immediately; online goes through a Stripe PaymentIntent and settles on
// confirmation.
type PaymentService interface {
	// RecordCashPayment completes a cash payment in one step and marks
	// the booking completed.
	RecordCashPayment(ctx context.Context, userID, bookingID string, amount int64) (*models.Payment, error)

	// CreatePaymentIntent opens a pending online payment backed by a
	// Stripe PaymentIntent and returns it with the client secret.
	CreatePaymentIntent(ctx context.Context, userID, bookingID string, amount int64) (*models.Payment, string, error)

	// ConfirmOnlinePayment settles a pending online payment once the
	// intent has succeeded, then marks the booking completed.
	ConfirmOnlinePayment(ctx context.Context, userID, intentID string) (*models.Payment, error)

	GetPayment(id string) (*models.Payment, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo        paymentRepo.PaymentRepository
	BookingRepo bookingRepo.BookingRepository
}
