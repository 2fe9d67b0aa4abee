package testutil

import (
	"context"
	"net/http"
	"sync"
)

// FakeServer stands in for the dashboard and metrics listeners in server tests.
// ListenAndServe returns ListenErr immediately. When Hold is set, Shutdown
// waits until Hold is closed or ctx is done.
type FakeServer struct {
	Address     string
	Mux         http.Handler
	ListenErr   error
	ShutdownErr error
	Hold        chan struct{}

	mu       sync.Mutex
	listens  int
	shutdown int
}

// ClosedServer reports a clean close from ListenAndServe, like a server stopped by Shutdown.
func ClosedServer() *FakeServer {
	return &FakeServer{ListenErr: http.ErrServerClosed}
}

func (f *FakeServer) ListenAndServe() error {
	f.mu.Lock()
	f.listens++
	f.mu.Unlock()
	return f.ListenErr
}

func (f *FakeServer) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	f.shutdown++
	f.mu.Unlock()

	if f.Hold != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-f.Hold:
		}
	}
	return f.ShutdownErr
}

func (f *FakeServer) Addr() string {
	if f.Address == "" {
		return ":0"
	}
	return f.Address
}

func (f *FakeServer) Handler() http.Handler {
	if f.Mux == nil {
		return http.NotFoundHandler()
	}
	return f.Mux
}

// ListenCalls counts ListenAndServe calls.
func (f *FakeServer) ListenCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listens
}

// ShutdownCalls counts Shutdown calls.
func (f *FakeServer) ShutdownCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdown
}
