package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/worldcup-dashboard/internal/analysis"
	"github.com/preston-bernstein/worldcup-dashboard/internal/charts"
	"github.com/preston-bernstein/worldcup-dashboard/internal/http/requestutil"
	"github.com/preston-bernstein/worldcup-dashboard/internal/logging"
)

const maxChatBody = 4 << 10

type queriesResponse struct {
	Queries []analysis.Query `json:"queries"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Queries lists the available questions.
func (h *Handler) Queries(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, queriesResponse{Queries: analysis.Catalog()}, h.logger)
}

// QueryByID returns one query result as JSON.
func (h *Handler) QueryByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.readyAPI(w, r) {
		return
	}
	res, err := h.analysis.Run(r.Context(), chi.URLParam(r, "id"), analysis.Options{Country: r.URL.Query().Get("country")})
	if err != nil {
		status, msg := analysisErrorStatus(err)
		writeError(w, r, status, msg, h.logger)
		return
	}
	if res.Rows == nil {
		res.Rows = []analysis.Row{}
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// Chat answers a JSON message and appends it to the session log.
func (h *Handler) Chat(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.readyAPI(w, r) {
		return
	}
	var req chatRequest
	dec := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxChatBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid json body", h.logger)
		return
	}
	sessionID := requestutil.EnsureSession(w, r, h.sessionCookie)
	e, ok := h.chat.Ask(sessionID, req.Message)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "message is required", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, chatResponse{Reply: e.Bot}, h.logger)
}

// Chart serves a query result as an SVG image at /charts/{id}.svg.
func (h *Handler) Chart(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.readyAPI(w, r) {
		return
	}
	file := chi.URLParam(r, "file")
	id, ok := strings.CutSuffix(file, ".svg")
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "unknown chart", h.logger)
		return
	}
	res, err := h.analysis.Run(r.Context(), id, analysis.Options{Country: r.URL.Query().Get("country")})
	if err != nil {
		status, msg := analysisErrorStatus(err)
		writeError(w, r, status, msg, h.logger)
		return
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, res); err != nil {
		if errors.Is(err, charts.ErrNoData) {
			writeError(w, r, nethttp.StatusNotFound, "no data to chart", h.logger)
			return
		}
		logging.Error(loggerFromContext(r, h.logger), "chart render failed", err, logging.FieldQuery, res.ID)
		writeError(w, r, nethttp.StatusInternalServerError, "chart render failed", h.logger)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// chartURL is the image source for a result on the visualization page.
func chartURL(res analysis.Result) string {
	u := "/charts/" + string(res.ID) + ".svg"
	if res.Country != "" {
		u += "?country=" + url.QueryEscape(res.Country)
	}
	return u
}
