package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/hrahman/profilio/internal/config"
	"github.com/hrahman/profilio/internal/reminder"
)

// SMTPSender sends plain-text mail over SMTP. Implements
// reminder.MailSender for both event reminders and password reset mails.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

var _ reminder.MailSender = (*SMTPSender)(nil)

func NewSMTPSender(cfg config.Config) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("cannot send mail to %s: %w", to, err)
	}
	return nil
}
