package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/HennaArtStudio/henna-booking-api/internal/config"
)

// Mailer sends plain-text mail through the configured SMTP relay. Used
// for the contact form, verification codes and password resets; callers
// treat failures as non-fatal.
type Mailer struct {
	host string
	port string
	user string
	pass string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPassword,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.user, to, subject, body,
	))

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.user, []string{to}, msg)
}
