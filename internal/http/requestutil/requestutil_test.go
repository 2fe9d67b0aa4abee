package requestutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID("bad id"); got == "" || got == "bad id" {
		t.Fatalf("expected sanitized id, got %s", got)
	}
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected generated request id")
	}
	useFallback.Store(true)
	defer useFallback.Store(false)
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected fallback request id when RNG fails")
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	if got := ClientIP(req); got != "1.2.3.4" {
		t.Fatalf("expected first forwarded address, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	if got := ClientIP(req); got != "9.9.9.9" {
		t.Fatalf("expected remote host without port, got %s", got)
	}

	req.RemoteAddr = "pipe"
	if got := ClientIP(req); got != "pipe" {
		t.Fatalf("expected raw remote addr when it has no port, got %s", got)
	}
}

func TestEnsureSessionIssuesCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/chatbot", nil)
	rr := httptest.NewRecorder()

	id := EnsureSession(rr, req, "wc_session")
	if id == "" {
		t.Fatalf("expected new session id")
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "wc_session" || cookies[0].Value != id {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatalf("expected HttpOnly cookie")
	}
}

func TestEnsureSessionReusesValidCookie(t *testing.T) {
	const existing = "6f1c7c5e-1a2b-4c3d-8e9f-0a1b2c3d4e5f"
	req := httptest.NewRequest(http.MethodGet, "/chatbot", nil)
	req.AddCookie(&http.Cookie{Name: "wc_session", Value: existing})
	rr := httptest.NewRecorder()

	if got := EnsureSession(rr, req, "wc_session"); got != existing {
		t.Fatalf("expected existing session, got %s", got)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatalf("expected no new cookie")
	}
}

func TestSessionIDRejectsInvalidValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := SessionID(req, "wc_session"); ok {
		t.Fatalf("expected missing cookie to be absent")
	}
	req.AddCookie(&http.Cookie{Name: "wc_session", Value: "not-a-uuid"})
	if _, ok := SessionID(req, "wc_session"); ok {
		t.Fatalf("expected invalid cookie to be absent")
	}
	if _, ok := SessionID(nil, "wc_session"); ok {
		t.Fatalf("expected nil request to be absent")
	}
}
