package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/basilogast/portfolio-server/internal/service"
)

type contactStub struct {
	inputs []service.ContactInput
	err    error
}

func (s *contactStub) Send(input service.ContactInput) error {
	s.inputs = append(s.inputs, input)
	return s.err
}

func setupContactRouter(t *testing.T, contact *contactStub) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	api := NewAPI(nil, contact, nil, nil)

	r := gin.New()
	r.POST("/contact", api.SubmitContact)
	return r
}

func TestSubmitContact(t *testing.T) {
	contact := &contactStub{}
	r := setupContactRouter(t, contact)

	body := `{"firstName":"An","lastName":"Nguyen","email":"a@b.c","phone":"123","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Message sent successfully!") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if len(contact.inputs) != 1 || contact.inputs[0].FirstName != "An" || contact.inputs[0].Message != "hi" {
		t.Fatalf("unexpected relayed input: %+v", contact.inputs)
	}
}

func TestSubmitContactWithoutEmailStillSends(t *testing.T) {
	contact := &contactStub{}
	r := setupContactRouter(t, contact)

	body := `{"firstName":"An","message":"no email here"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(contact.inputs) != 1 {
		t.Fatalf("expected send attempt despite missing email, got %d", len(contact.inputs))
	}
	if contact.inputs[0].Email != "" {
		t.Fatalf("expected empty email to pass through, got %q", contact.inputs[0].Email)
	}
}

func TestSubmitContactTransportFailure(t *testing.T) {
	contact := &contactStub{err: errors.New("smtp down")}
	r := setupContactRouter(t, contact)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to send message. Please try again later.") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSubmitContactMalformedJSON(t *testing.T) {
	contact := &contactStub{}
	r := setupContactRouter(t, contact)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"message":`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(contact.inputs) != 0 {
		t.Fatalf("expected no send attempt for malformed payload")
	}
}
