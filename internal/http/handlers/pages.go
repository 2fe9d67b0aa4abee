package handlers

import (
	"errors"
	nethttp "net/http"

	"github.com/preston-bernstein/worldcup-dashboard/internal/analysis"
	"github.com/preston-bernstein/worldcup-dashboard/internal/dataset"
	domainchat "github.com/preston-bernstein/worldcup-dashboard/internal/domain/chat"
	"github.com/preston-bernstein/worldcup-dashboard/internal/domain/matches"
	"github.com/preston-bernstein/worldcup-dashboard/internal/http/requestutil"
	"github.com/preston-bernstein/worldcup-dashboard/internal/logging"
)

const (
	tabPreview = "preview"
	tabInfo    = "info"
	tabSummary = "summary"
)

var datasetTabs = []struct{ Key, Label string }{
	{tabPreview, "Preview"},
	{tabInfo, "Information"},
	{tabSummary, "Summary"},
}

type homeView struct {
	Rows   int
	Source string
}

type datasetTab struct {
	Key    string
	Label  string
	Active bool
}

type datasetView struct {
	Tabs    []datasetTab
	Active  string
	Preview dataset.Table
	Summary dataset.Table
	Rows    int
	Cols    int
	Columns []string
	Source  string
}

type queryOption struct {
	ID       analysis.QueryID
	Label    string
	Selected bool
}

type countryOption struct {
	Name     string
	Selected bool
}

type visualizationView struct {
	Queries   []queryOption
	Countries []countryOption
	Result    analysis.Result
	ChartURL  string
}

type chatbotView struct {
	History []domainchat.Exchange
}

type technology struct {
	Name    string
	Purpose string
}

type aboutView struct {
	Technologies []technology
	Topics       []string
}

var about = aboutView{
	Technologies: []technology{
		{"Go", "core programming language and HTTP server"},
		{"excelize", "reading the match results workbook"},
		{"gota", "dataframe grouping, aggregation and summaries"},
		{"go-chart", "bar and line charts rendered as SVG"},
		{"chi", "routing and middleware"},
		{"HTML & CSS", "server-rendered pages with a horizontal menu"},
	},
	Topics: []string{
		"Hosting countries",
		"Stadium performance",
		"Team defensive performance",
		"Goals scored over the years",
		"Match distribution by tournament rounds",
	},
}

// Home renders the welcome page.
func (h *Handler) Home(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.ready(w, r) {
		return
	}
	ds := h.state.Dataset
	renderPage(w, r, nethttp.StatusOK, pageHome, homeView{Rows: ds.Len(), Source: ds.Source()}, h.logger)
}

// Dataset renders the preview, information or summary tab.
func (h *Handler) Dataset(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.ready(w, r) {
		return
	}
	active := r.URL.Query().Get("tab")
	if active == "" {
		active = tabPreview
	}

	view := datasetView{Active: active}
	known := false
	for _, t := range datasetTabs {
		view.Tabs = append(view.Tabs, datasetTab{Key: t.Key, Label: t.Label, Active: t.Key == active})
		known = known || t.Key == active
	}
	if !known {
		renderError(w, r, nethttp.StatusBadRequest, "unknown dataset tab", h.logger)
		return
	}

	ds := h.state.Dataset
	switch active {
	case tabPreview:
		view.Preview = ds.Preview(h.previewRows)
	case tabInfo:
		view.Rows, view.Cols = ds.Shape()
		view.Columns = matches.Columns
		view.Source = ds.Source()
	case tabSummary:
		summary, err := ds.Summary()
		if err != nil {
			logging.Error(loggerFromContext(r, h.logger), "dataset summary failed", err)
			renderError(w, r, nethttp.StatusInternalServerError, "summary unavailable", h.logger)
			return
		}
		view.Summary = summary
	}
	renderPage(w, r, nethttp.StatusOK, pageDataset, view, h.logger)
}

// Visualization renders the chosen question with its chart and table.
func (h *Handler) Visualization(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.ready(w, r) {
		return
	}
	id := r.URL.Query().Get("q")
	if id == "" {
		id = string(analysis.Q1)
	}
	res, err := h.analysis.Run(r.Context(), id, analysis.Options{Country: r.URL.Query().Get("country")})
	if err != nil {
		status, msg := analysisErrorStatus(err)
		renderError(w, r, status, msg, h.logger)
		return
	}

	view := visualizationView{Result: res, ChartURL: chartURL(res)}
	for _, q := range analysis.Catalog() {
		view.Queries = append(view.Queries, queryOption{ID: q.ID, Label: q.Label(), Selected: q.ID == res.ID})
	}
	if res.ID == analysis.Q2 {
		for _, c := range h.analysis.Countries() {
			view.Countries = append(view.Countries, countryOption{Name: c, Selected: c == res.Country})
		}
	}
	renderPage(w, r, nethttp.StatusOK, pageVisualization, view, h.logger)
}

// Chatbot renders the session's chat log.
func (h *Handler) Chatbot(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.ready(w, r) {
		return
	}
	sessionID := requestutil.EnsureSession(w, r, h.sessionCookie)
	renderPage(w, r, nethttp.StatusOK, pageChatbot, chatbotView{History: h.chat.History(sessionID)}, h.logger)
}

// ChatbotSubmit answers a posted message and redirects back to the log.
func (h *Handler) ChatbotSubmit(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.ready(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		renderError(w, r, nethttp.StatusBadRequest, "invalid form", h.logger)
		return
	}
	sessionID := requestutil.EnsureSession(w, r, h.sessionCookie)
	h.chat.Ask(sessionID, r.PostForm.Get("message"))
	nethttp.Redirect(w, r, "/chatbot", nethttp.StatusSeeOther)
}

// About renders the project description.
func (h *Handler) About(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.ready(w, r) {
		return
	}
	renderPage(w, r, nethttp.StatusOK, pageAbout, about, h.logger)
}

// NotFound renders the error page for unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.ready(w, r) {
		return
	}
	renderError(w, r, nethttp.StatusNotFound, "page not found", h.logger)
}

func analysisErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, analysis.ErrUnknownQuery):
		return nethttp.StatusNotFound, "unknown query"
	case errors.Is(err, analysis.ErrUnknownCountry):
		return nethttp.StatusBadRequest, "unknown country"
	default:
		return nethttp.StatusInternalServerError, "query failed"
	}
}
