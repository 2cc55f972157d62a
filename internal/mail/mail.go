// Package mail forwards contact-form submissions by email.
package mail

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Zachkp/portfolio/internal/config"
)

// ErrSMTPNotConfigured is returned when no SMTP credentials are set.
var ErrSMTPNotConfigured = errors.New("mail: SMTP credentials not configured")

// Message is one contact-form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Sender sends contact messages through an SMTP relay.
type Sender struct {
	cfg  config.SMTPConfig
	send SendFunc
}

// NewSender returns a Sender using smtp.SendMail.
func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg, send: smtp.SendMail}
}

// recipient falls back to the SMTP account itself when no TO_EMAIL is set.
func (s *Sender) recipient() string {
	if s.cfg.To != "" {
		return s.cfg.To
	}
	return s.cfg.User
}

// Send emails m to the site owner.
func (s *Sender) Send(m Message) error {
	if !s.cfg.Configured() {
		return ErrSMTPNotConfigured
	}

	to := s.recipient()
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := s.cfg.Host + ":" + s.cfg.Port

	if err := s.send(addr, auth, s.cfg.User, []string{to}, compose(s.cfg.User, to, m)); err != nil {
		return fmt.Errorf("sending contact email: %w", err)
	}
	return nil
}

// compose builds the RFC 822 message. Header values are stripped of line
// breaks so form input cannot inject headers.
func compose(from, to string, m Message) []byte {
	name := headerSafe(m.Name)
	replyTo := headerSafe(m.Email)

	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Body)

	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + name + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Reply-To: " + replyTo + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
