package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/worldcup-dashboard/internal/analysis"
	appchat "github.com/preston-bernstein/worldcup-dashboard/internal/app/chat"
	"github.com/preston-bernstein/worldcup-dashboard/internal/dataset"
)

const defaultSessionCookie = "wc_session"

// Deps are the collaborators a Handler serves from.
type Deps struct {
	State         dataset.State
	Analysis      *analysis.Service
	Chat          *appchat.Service
	Logger        *slog.Logger
	SessionCookie string
	PreviewRows   int
}

// Handler wires HTTP routes to the dataset, analysis and chat services.
type Handler struct {
	state         dataset.State
	analysis      *analysis.Service
	chat          *appchat.Service
	logger        *slog.Logger
	sessionCookie string
	previewRows   int
}

// NewHandler constructs a Handler with defaults.
func NewHandler(deps Deps) *Handler {
	cookie := deps.SessionCookie
	if cookie == "" {
		cookie = defaultSessionCookie
	}
	previewRows := deps.PreviewRows
	if previewRows <= 0 {
		previewRows = 5
	}
	return &Handler{
		state:         deps.State,
		analysis:      deps.Analysis,
		chat:          deps.Chat,
		logger:        deps.Logger,
		sessionCookie: cookie,
		previewRows:   previewRows,
	}
}

// Health reports the process is up, whether or not the dataset loaded.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the dashboard can serve pages.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.state.Ready() {
		msg := dataset.HaltedMessage
		if h.state.Err != nil {
			msg = h.state.Err.Error()
		}
		writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
		return
	}
	ds := h.state.Dataset
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"status": "ready",
		"source": ds.Source(),
		"rows":   ds.Len(),
	}, h.logger)
}

// ready writes the halted response for pages and reports whether to continue.
func (h *Handler) ready(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if h.state.Ready() {
		return true
	}
	renderHalted(w, r, h.logger)
	return false
}

// readyAPI is ready for JSON and image routes.
func (h *Handler) readyAPI(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if h.state.Ready() {
		return true
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, dataset.HaltedMessage, h.logger)
	return false
}
