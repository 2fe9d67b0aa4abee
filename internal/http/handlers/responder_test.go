package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/worldcup-dashboard/internal/dataset"
	"github.com/preston-bernstein/worldcup-dashboard/internal/logging"
	"github.com/preston-bernstein/worldcup-dashboard/internal/testutil"
)

func TestWriteErrorHaltedBody(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/queries/Q1", nil)

	writeError(rr, req, http.StatusServiceUnavailable, dataset.HaltedMessage, nil)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != dataset.HaltedMessage {
		t.Fatalf("expected halted message, got %+v", body)
	}
	if _, ok := body["requestId"]; ok {
		t.Fatalf("expected no requestId without a header, got %+v", body)
	}
}

func TestWriteErrorUsesHeaderRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/charts/Q9.svg", nil)
	req.Header.Set("X-Request-ID", "chart-req")

	writeError(rr, req, http.StatusNotFound, "unknown query", nil)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["requestId"] != "chart-req" || body["error"] != "unknown query" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusOK, make(chan int), logger)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestLoggerFromContextPrefersRequestLogger(t *testing.T) {
	fallback, _ := testutil.NewBufferLogger()
	reqLogger, _ := testutil.NewBufferLogger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := loggerFromContext(req, fallback); got != fallback {
		t.Fatalf("expected fallback logger without context logger")
	}

	req = req.WithContext(logging.WithLogger(req.Context(), reqLogger))
	if got := loggerFromContext(req, fallback); got != reqLogger {
		t.Fatalf("expected request logger from context")
	}
	if got := loggerFromContext(nil, fallback); got != fallback {
		t.Fatalf("expected fallback for nil request")
	}
}
