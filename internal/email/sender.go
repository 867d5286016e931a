package email

import (
	"fmt"
	"time"

	"kasambahay_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// Sender delivers transactional mail. Billing notices are best effort:
// callers log failures but never fail the request over them.
type Sender interface {
	Send(to, subject, body string) error
	SendPaymentReceipt(to string, amountCentavos int64, currency string, paidAt time.Time) error
	SendSubscriptionExpired(to string, expiredAt time.Time) error
}

type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.Email.FromEmail, s.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (s *SMTPSender) SendPaymentReceipt(to string, amountCentavos int64, currency string, paidAt time.Time) error {
	subject := fmt.Sprintf("%s payment receipt", s.cfg.SEO.SiteName)
	body := fmt.Sprintf(
		"<p>We received your payment of <strong>%.2f %s</strong> on %s.</p>"+
			"<p>Your employer subscription is active. Thank you!</p>",
		float64(amountCentavos)/100, currency, paidAt.Format("January 2, 2006"),
	)
	return s.Send(to, subject, body)
}

func (s *SMTPSender) SendSubscriptionExpired(to string, expiredAt time.Time) error {
	subject := fmt.Sprintf("Your %s subscription has expired", s.cfg.SEO.SiteName)
	body := fmt.Sprintf(
		"<p>Your employer subscription expired on %s.</p>"+
			"<p>You can still read your existing conversations, but sending "+
			"messages and scheduling interviews requires an active subscription. "+
			"Renew anytime from your account page.</p>",
		expiredAt.Format("January 2, 2006"),
	)
	return s.Send(to, subject, body)
}
