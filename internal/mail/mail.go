package mail

import (
	"github.com/rotisserie/eris"
	"gopkg.in/gomail.v2"
)

// Sender delivers composed email messages.
type Sender interface {
	Send(message *gomail.Message) error
}

// SMTPSender sends messages through a single SMTP account.
type SMTPSender struct {
	dialer *gomail.Dialer
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender builds a sender for the given SMTP endpoint and credentials.
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(host, port, username, password)}
}

// Send dials the SMTP server and delivers the message. Each call opens a
// fresh connection.
func (s *SMTPSender) Send(message *gomail.Message) error {
	if err := s.dialer.DialAndSend(message); err != nil {
		return eris.Wrap(err, "sending mail")
	}
	return nil
}
