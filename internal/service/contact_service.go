package service

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"gopkg.in/gomail.v2"

	"github.com/basilogast/portfolio-server/internal/mail"
)

var (
	messageRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
	)
	messageSanitizer = bluemonday.UGCPolicy()
)

// ContactInput is a contact form submission. Every field is optional; the
// template simply renders whatever was sent.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
}

// ContactSender relays contact form submissions.
type ContactSender interface {
	Send(input ContactInput) error
}

// ContactService forwards contact submissions to a single recipient via the
// outbound mail transport.
type ContactService struct {
	sender mail.Sender
	from   string
	to     string
	logger *logrus.Logger
}

var _ ContactSender = (*ContactService)(nil)

// NewContactService creates a ContactService instance.
func NewContactService(sender mail.Sender, from, to string, logger *logrus.Logger) *ContactService {
	return &ContactService{sender: sender, from: from, to: to, logger: logger}
}

// Send composes the fixed-template contact email and delivers it. There is
// no retry; a transport failure surfaces immediately.
func (s *ContactService) Send(input ContactInput) error {
	fullName := strings.TrimSpace(input.FirstName + " " + input.LastName)

	message := gomail.NewMessage()
	message.SetAddressHeader("From", s.from, fullName)
	message.SetHeader("To", s.to)
	message.SetHeader("Subject", "Contact Form Submission - Portfolio")
	if email := strings.TrimSpace(input.Email); email != "" {
		message.SetHeader("Reply-To", email)
	}
	message.SetBody("text/html", s.composeBody(fullName, input))

	if err := s.sender.Send(message); err != nil {
		if s.logger != nil {
			s.logger.WithField("from", fullName).WithError(err).Error("failed to relay contact submission")
		}
		return eris.Wrap(err, "relaying contact submission")
	}

	return nil
}

func (s *ContactService) composeBody(fullName string, input ContactInput) string {
	return fmt.Sprintf(`
      <h3>Contact Form Details</h3>
      <p><strong>Name:</strong> %s</p>
      <p><strong>Email:</strong> %s</p>
      <p><strong>Phone:</strong> %s</p>
      <p><strong>Message:</strong></p>
      %s
    `,
		html.EscapeString(fullName),
		html.EscapeString(input.Email),
		html.EscapeString(input.Phone),
		renderMessageHTML(input.Message),
	)
}

// renderMessageHTML renders the visitor's message as markdown and strips
// anything the sanitizer does not allow, so user input never reaches the
// mailbox as live HTML.
func renderMessageHTML(message string) string {
	var buf bytes.Buffer
	if err := messageRenderer.Convert([]byte(message), &buf); err != nil {
		return "<p>" + html.EscapeString(message) + "</p>"
	}
	return messageSanitizer.Sanitize(buf.String())
}
