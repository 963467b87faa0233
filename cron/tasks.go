package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"fixify/config"

	"github.com/hibiken/asynq"
)

const (
	TypeEmailOTP                 = "email:otp"
	TypeEmailBookingConfirmation = "email:booking_confirmation"
)

// OTPEmailPayload carries a verification code to the mail worker.
type OTPEmailPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Code  string `json:"code"`
}

// BookingEmailPayload carries booking confirmation details to the mail worker.
type BookingEmailPayload struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	BookingID    string `json:"bookingId"`
	ProviderName string `json:"providerName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Address      string `json:"address"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}
}

// MailQueue enqueues outgoing mail. Services call it after their own
// writes commit, so a crashed sender never leaves half-applied booking
// state behind; asynq retries failed deliveries.
type MailQueue struct {
	client *asynq.Client
}

// NewMailQueue creates the enqueue-side client.
func NewMailQueue() *MailQueue {
	return &MailQueue{client: asynq.NewClient(redisOpts())}
}

func (q *MailQueue) enqueue(taskType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", taskType, err)
	}
	task := asynq.NewTask(taskType, data)
	if _, err := q.client.Enqueue(task, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", taskType, err)
	}
	return nil
}

// EnqueueOTPEmail schedules delivery of a verification code.
func (q *MailQueue) EnqueueOTPEmail(p OTPEmailPayload) error {
	return q.enqueue(TypeEmailOTP, p)
}

// EnqueueBookingConfirmation schedules delivery of a booking confirmation.
func (q *MailQueue) EnqueueBookingConfirmation(p BookingEmailPayload) error {
	return q.enqueue(TypeEmailBookingConfirmation, p)
}

// Close releases the underlying asynq client.
func (q *MailQueue) Close() error {
	return q.client.Close()
}
