package utils

import (
	"fmt"
	"net/smtp"

	"fixify/config"
)

// SendMail delivers a single message through the configured SMTP relay.
// The body may carry an HTML payload; Content-Type is set accordingly.
func SendMail(to, subject, htmlBody string) error {
	cfg := config.AppConfig
	from := cfg.MailFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		from, to, subject, htmlBody,
	))

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	if err := smtp.SendMail(addr, auth, from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
