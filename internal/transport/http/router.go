package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mergington/internal/platform/metrics"
	"mergington/internal/platform/middleware"
)

// Registrar is implemented by every domain handler.
type Registrar interface {
	Register(r chi.Router)
}

// Deps carries everything the router needs wired in from main.
type Deps struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	StaticDir string
	Handlers  []Registrar
}

// NewRouter assembles the full HTTP surface: domain handlers, the static
// front-end, the root redirect, and the metrics endpoint.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Latency(deps.Metrics))

	for _, h := range deps.Handlers {
		h.Register(r)
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/static/index.html", http.StatusTemporaryRedirect)
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(deps.StaticDir))))
	r.Handle("/metrics", promhttp.Handler())

	return r
}
