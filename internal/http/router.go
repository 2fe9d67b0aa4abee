package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/worldcup-dashboard/internal/http/handlers"
	"github.com/preston-bernstein/worldcup-dashboard/internal/http/middleware"
	"github.com/preston-bernstein/worldcup-dashboard/internal/metrics"
)

// NewRouter registers the dashboard, chart and API routes on a chi router.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)
	r.NotFound(handler.NotFound)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Get("/", handler.Home)
	r.Get("/dataset", handler.Dataset)
	r.Get("/visualization", handler.Visualization)
	r.Get("/chatbot", handler.Chatbot)
	r.Post("/chatbot", handler.ChatbotSubmit)
	r.Get("/about", handler.About)
	r.Get("/charts/{file}", handler.Chart)

	r.Route("/api", func(r chi.Router) {
		r.Get("/queries", handler.Queries)
		r.Get("/queries/{id}", handler.QueryByID)
		r.Post("/chat", handler.Chat)
	})
	return r
}
