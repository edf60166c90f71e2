package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/models"
)

type emailStub struct {
	calls int
	err   error
	last  [4]string
}

func (e *emailStub) SendContactEmail(name, replyTo, company, message string) error {
	e.calls++
	e.last = [4]string{name, replyTo, company, message}
	return e.err
}

func postContact(h *ContactHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Submit(rr, req)
	return rr
}

func TestSubmitContact_Success(t *testing.T) {
	stub := &emailStub{}
	h := NewContactHandler(stub)

	rr := postContact(h, `{"name":"Ada","email":"ada@example.com","company":"Analytical Engines","message":"Hello!"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	var resp models.ContactResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Message != "Message sent successfully." {
		t.Errorf("Unexpected message %q", resp.Message)
	}
	if stub.calls != 1 {
		t.Errorf("Expected exactly 1 relay call, got %d", stub.calls)
	}
	if stub.last != [4]string{"Ada", "ada@example.com", "Analytical Engines", "Hello!"} {
		t.Errorf("Unexpected relay arguments: %v", stub.last)
	}
}

func TestSubmitContact_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com","message":"hi"}`},
		{"missing email", `{"name":"Ada","message":"hi"}`},
		{"missing message", `{"name":"Ada","email":"a@b.com"}`},
		{"whitespace only", `{"name":" ","email":" ","message":" "}`},
		{"malformed json", `{oops`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &emailStub{}
			h := NewContactHandler(stub)

			rr := postContact(h, tc.body)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rr.Code)
			}
			if stub.calls != 0 {
				t.Errorf("Validation failure must not relay email, got %d calls", stub.calls)
			}
		})
	}
}

func TestSubmitContact_RelayFailure(t *testing.T) {
	h := NewContactHandler(&emailStub{err: errors.New("smtp down")})

	rr := postContact(h, `{"name":"Ada","email":"ada@example.com","message":"Hello!"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rr.Code)
	}
	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != "Failed to send message." {
		t.Errorf("Unexpected error %q", resp.Error)
	}
}
