package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/preston-bernstein/worldcup-dashboard/internal/dataset"
	"github.com/preston-bernstein/worldcup-dashboard/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	dashboardTitle = "Football World Cup"
	layoutTemplate = "layout.html"
	haltedTemplate = "halted.html"
)

const (
	pageHome          = "home"
	pageDataset       = "dataset"
	pageVisualization = "visualization"
	pageChatbot       = "chatbot"
	pageAbout         = "about"
	pageError         = "error"
)

type menuEntry struct {
	Page  string
	Label string
	Href  string
}

var menu = []menuEntry{
	{Page: pageHome, Label: "Home", Href: "/"},
	{Page: pageDataset, Label: "Dataset", Href: "/dataset"},
	{Page: pageVisualization, Label: "Visualization", Href: "/visualization"},
	{Page: pageChatbot, Label: "Chatbot", Href: "/chatbot"},
	{Page: pageAbout, Label: "About", Href: "/about"},
}

var templateFuncs = template.FuncMap{
	"formatValue": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}

// Each page is its own template set so every file can define "content".
var pageTemplates = mustParsePages()

var haltedPage = template.Must(template.ParseFS(templateFS, "templates/"+haltedTemplate))

func mustParsePages() map[string]*template.Template {
	names := []string{pageHome, pageDataset, pageVisualization, pageChatbot, pageAbout, pageError}
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(template.New(layoutTemplate).Funcs(templateFuncs).ParseFS(
			templateFS, "templates/"+layoutTemplate, "templates/"+name+".html",
		))
	}
	return out
}

type menuItem struct {
	Label  string
	Href   string
	Active bool
}

type layoutData struct {
	Title   string
	Page    string
	Banner  string
	Menu    []menuItem
	Content any
}

func newLayout(page string, content any) layoutData {
	items := make([]menuItem, len(menu))
	label := page
	for i, m := range menu {
		items[i] = menuItem{Label: m.Label, Href: m.Href, Active: m.Page == page}
		if m.Page == page {
			label = m.Label
		}
	}
	if page == pageError {
		label = "Error"
	}
	return layoutData{
		Title:   dashboardTitle,
		Page:    label,
		Banner:  dataset.LoadedMessage,
		Menu:    items,
		Content: content,
	}
}

// renderPage executes into a buffer first so a template failure can still produce a 500.
func renderPage(w nethttp.ResponseWriter, r *nethttp.Request, status int, page string, content any, logger *slog.Logger) {
	tmpl, ok := pageTemplates[page]
	if !ok {
		writeHTMLFailure(w, r, fmt.Errorf("unknown page %q", page), logger)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutTemplate, newLayout(page, content)); err != nil {
		writeHTMLFailure(w, r, err, logger)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

// renderHalted shows only the load failure banner.
func renderHalted(w nethttp.ResponseWriter, r *nethttp.Request, logger *slog.Logger) {
	var buf bytes.Buffer
	data := struct{ Message string }{Message: dataset.HaltedMessage}
	if err := haltedPage.ExecuteTemplate(&buf, haltedTemplate, data); err != nil {
		writeHTMLFailure(w, r, err, logger)
		return
	}
	writeHTML(w, nethttp.StatusServiceUnavailable, buf.Bytes())
}

// renderError shows message inside the normal layout.
func renderError(w nethttp.ResponseWriter, r *nethttp.Request, status int, message string, logger *slog.Logger) {
	content := struct {
		Status  int
		Message string
	}{Status: status, Message: message}
	renderPage(w, r, status, pageError, content, logger)
}

func writeHTML(w nethttp.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeHTMLFailure(w nethttp.ResponseWriter, r *nethttp.Request, err error, logger *slog.Logger) {
	logging.Error(loggerFromContext(r, logger), "failed to render page", err)
	nethttp.Error(w, "internal server error", nethttp.StatusInternalServerError)
}
