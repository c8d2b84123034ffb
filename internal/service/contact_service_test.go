package service

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/gomail.v2"
)

type senderStub struct {
	messages []*gomail.Message
	err      error
}

func (s *senderStub) Send(message *gomail.Message) error {
	s.messages = append(s.messages, message)
	return s.err
}

func TestContactSendComposesMessage(t *testing.T) {
	sender := &senderStub{}
	svc := NewContactService(sender, "owner@example.com", "owner@example.com", nil)

	err := svc.Send(ContactInput{
		FirstName: "An",
		LastName:  "Nguyen",
		Email:     "visitor@example.com",
		Phone:     "123456",
		Message:   "Hello there",
	})
	if err != nil {
		t.Fatalf("failed to send: %v", err)
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sender.messages))
	}

	message := sender.messages[0]
	if to := message.GetHeader("To"); len(to) != 1 || to[0] != "owner@example.com" {
		t.Fatalf("unexpected recipient: %v", to)
	}
	if subject := message.GetHeader("Subject"); len(subject) != 1 || subject[0] != "Contact Form Submission - Portfolio" {
		t.Fatalf("unexpected subject: %v", subject)
	}
	if replyTo := message.GetHeader("Reply-To"); len(replyTo) != 1 || replyTo[0] != "visitor@example.com" {
		t.Fatalf("expected visitor address as reply-to, got %v", replyTo)
	}
}

func TestContactSendWithoutEmailStillSends(t *testing.T) {
	sender := &senderStub{}
	svc := NewContactService(sender, "owner@example.com", "owner@example.com", nil)

	if err := svc.Send(ContactInput{Message: "no contact details"}); err != nil {
		t.Fatalf("expected send despite missing fields, got %v", err)
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected the transport to be invoked, got %d messages", len(sender.messages))
	}
	if replyTo := sender.messages[0].GetHeader("Reply-To"); len(replyTo) != 0 {
		t.Fatalf("expected no reply-to header, got %v", replyTo)
	}
}

func TestContactSendTransportFailure(t *testing.T) {
	sender := &senderStub{err: errors.New("smtp unavailable")}
	svc := NewContactService(sender, "owner@example.com", "owner@example.com", nil)

	if err := svc.Send(ContactInput{Message: "hi"}); err == nil {
		t.Fatalf("expected transport failure to surface")
	}
}

func TestRenderMessageHTML(t *testing.T) {
	rendered := renderMessageHTML("I liked your **latest** project")
	if !strings.Contains(rendered, "<strong>latest</strong>") {
		t.Fatalf("expected markdown emphasis to render, got %q", rendered)
	}

	rendered = renderMessageHTML(`<script>alert("x")</script>hello`)
	if strings.Contains(rendered, "<script>") {
		t.Fatalf("expected script tags to be stripped, got %q", rendered)
	}
	if !strings.Contains(rendered, "hello") {
		t.Fatalf("expected text content to survive sanitizing, got %q", rendered)
	}
}

func TestContactBodyEscapesFields(t *testing.T) {
	svc := NewContactService(&senderStub{}, "owner@example.com", "owner@example.com", nil)
	body := svc.composeBody(`<b>Eve</b>`, ContactInput{Email: "a@b", Phone: "1"})
	if strings.Contains(body, "<b>Eve</b>") {
		t.Fatalf("expected name to be escaped, got %q", body)
	}
	if !strings.Contains(body, "&lt;b&gt;Eve&lt;/b&gt;") {
		t.Fatalf("expected escaped name in body, got %q", body)
	}
}
