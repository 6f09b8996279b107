package infra

import (
	"fmt"
	"net/smtp"

	"comidapp/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends the transactional emails: welcome on registration and the
// factura with its PDF attached. Callers go through the worker queue, never
// inline in a request.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers a plain-text email, optionally with an HTML alternative and a
// file attachment.
func (m *Mailer) Send(to, subject, text, html, attachPath string) error {
	e := email.NewEmail()
	e.From = m.cfg.SMTPUser
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(text)
	if html != "" {
		e.HTML = []byte(html)
	}
	if attachPath != "" {
		if _, err := e.AttachFile(attachPath); err != nil {
			return fmt.Errorf("mailer: adjuntar archivo: %w", err)
		}
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	return e.Send(addr, auth)
}
