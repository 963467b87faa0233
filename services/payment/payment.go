package payment

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "fixify/database/repository/booking"
	paymentRepo "fixify/database/repository/payment"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// SiteFee is the platform's cut: 10% of the amount, rounded up to the
// next whole unit.
func SiteFee(amount int64) int64 {
	return (amount + 9) / 10
}

// loadPayableBooking fetches the booking and checks that this user may
// pay for it and that it is still awaiting payment.
func (s *DefaultPaymentService) loadPayableBooking(userID, bookingID string) (*models.Booking, error) {
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
	if bk.Status != models.BookingConfirmed {
		return nil, utils.NewAppError(utils.KindConflict, "booking is not awaiting payment")
	}
	if bk.PaymentID != "" {
		return nil, utils.NewAppError(utils.KindConflict, "booking is already paid")
	}
	return bk, nil
}

func (s *DefaultPaymentService) RecordCashPayment(ctx context.Context, userID, bookingID string, amount int64) (*models.Payment, error) {
	if amount <= 0 {
		return nil, utils.NewAppError(utils.KindInvalid, "amount must be positive")
	}
	if _, err := s.loadPayableBooking(userID, bookingID); err != nil {
		return nil, err
	}

	p := &models.Payment{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		Amount:    amount,
		SiteFee:   SiteFee(amount),
		Status:    models.PaymentCompleted,
		Mode:      models.PaymentModeCash,
	}
	if err := s.Repo.SettleCashTransactionally(ctx, p); err != nil {
		if errors.Is(err, paymentRepo.ErrBookingNotPayable) {
			return nil, utils.NewAppError(utils.KindConflict, "booking is not awaiting payment")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to record payment", err)
	}

	utils.GetLogger().Info("cash payment recorded",
		zap.String("paymentId", p.ID),
		zap.String("bookingId", bookingID),
		zap.Int64("amount", amount))
	return p, nil
}

func (s *DefaultPaymentService) CreatePaymentIntent(ctx context.Context, userID, bookingID string, amount int64) (*models.Payment, string, error) {
	if amount <= 0 {
		return nil, "", utils.NewAppError(utils.KindInvalid, "amount must be positive")
	}
	if _, err := s.loadPayableBooking(userID, bookingID); err != nil {
		return nil, "", err
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyINR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", bookingID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, "", utils.WrapAppError(utils.KindInternal, "failed to create payment intent", err)
	}

	p := &models.Payment{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		Amount:    amount,
		Status:    models.PaymentPending,
		Mode:      models.PaymentModeOnline,
		IntentID:  intent.ID,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, "", utils.WrapAppError(utils.KindInternal, "failed to record payment", err)
	}

	utils.GetLogger().Info("payment intent created",
		zap.String("paymentId", p.ID),
		zap.String("bookingId", bookingID),
		zap.String("intentId", intent.ID))
	return p, intent.ClientSecret, nil
}

func (s *DefaultPaymentService) ConfirmOnlinePayment(ctx context.Context, userID, intentID string) (*models.Payment, error) {
	p, err := s.Repo.GetByIntentID(intentID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "payment not found")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load payment", err)
	}
	if p.Status != models.PaymentPending {
		return nil, utils.NewAppError(utils.KindConflict, "payment already settled")
	}

	bk, err := s.BookingRepo.GetByID(p.BookingID)
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load booking", err)
	}
	if bk.UserID != userID {
		return nil, utils.NewAppError(utils.KindForbidden, "payment belongs to another user")
	}

	intent, err := paymentintent.Get(intentID, nil)
	if err != nil {
		return nil, utils.WrapAppError(utils.KindInternal, "failed to verify payment intent", err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		if err := s.Repo.MarkFailed(p.ID); err != nil {
			utils.GetLogger().Error("failed to mark payment failed",
				zap.String("paymentId", p.ID), zap.Error(err))
		}
		return nil, utils.NewAppError(utils.KindConflict,
			fmt.Sprintf("payment intent is %s, not succeeded", intent.Status))
	}

	fee := SiteFee(p.Amount)
	if err := s.Repo.SettleIntentTransactionally(ctx, p.ID, p.BookingID, fee); err != nil {
		switch {
		case errors.Is(err, paymentRepo.ErrNotFound):
			return nil, utils.NewAppError(utils.KindConflict, "payment already settled")
		case errors.Is(err, paymentRepo.ErrBookingNotPayable):
			return nil, utils.NewAppError(utils.KindConflict, "booking is not awaiting payment")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to complete payment", err)
	}

	p.Status = models.PaymentCompleted
	p.SiteFee = fee

	utils.GetLogger().Info("online payment completed",
		zap.String("paymentId", p.ID),
		zap.String("bookingId", p.BookingID),
		zap.Int64("siteFee", fee))
	return p, nil
}

func (s *DefaultPaymentService) GetPayment(id string) (*models.Payment, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "payment not found")
		}
		return nil, utils.WrapAppError(utils.KindInternal, "failed to load payment", err)
	}
	return p, nil
}
