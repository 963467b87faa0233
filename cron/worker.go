package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"fixify/utils"

	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async mail worker in background.
func InitMailWorker() {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeEmailOTP, handleOTPEmail)
	mux.HandleFunc(TypeEmailBookingConfirmation, handleBookingEmail)

	// Start async worker with retry logic
	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleOTPEmail(ctx context.Context, task *asynq.Task) error {
	var p OTPEmailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[MailWorker] invalid OTP payload: %v", err)
		return err
	}

	body := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your Fixify verification code is <b>%s</b>. It expires in 2 minutes.</p>`,
		p.Name, p.Code,
	)
	if err := utils.SendMail(p.Email, "Verify your Fixify account", body); err != nil {
		log.Printf("[MailWorker] failed to send OTP email: %v", err)
		return err
	}
	return nil
}

func handleBookingEmail(ctx context.Context, task *asynq.Task) error {
	var p BookingEmailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[MailWorker] invalid booking payload: %v", err)
		return err
	}

	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Your booking is confirmed.</p>
<ul>
<li>Booking ID: %s</li>
<li>Technician: %s</li>
<li>Date: %s</li>
<li>Time: %s</li>
<li>Address: %s</li>
</ul>`,
		p.Name, p.BookingID, p.ProviderName, p.Date, p.Time, p.Address,
	)
	if err := utils.SendMail(p.Email, "Your Fixify booking is confirmed", body); err != nil {
		log.Printf("[MailWorker] failed to send booking email: %v", err)
		return err
	}
	return nil
}
