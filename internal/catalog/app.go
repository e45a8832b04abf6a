package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ProductAPI/internal/web"
	"ProductAPI/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry
	Static   *web.Static

	MetricsEnabled bool
	MetricsToken   string
}

// NewHandler assembles the full HTTP surface: product routes, the home
// document, static assets and the not-found fallback, all behind the
// recoverer.
func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if s.Log == nil {
		s.Log = deps.Log
	}

	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetricsRoute(r, deps)
	setupFallback(r, deps)
	s.Routes(r)

	return r
}

// setupMiddleware orders the chain so that the access log and metrics see
// the 500 written by the recoverer.
func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Logging(deps.Log))

	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry, deps.Service)
		r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePattern))
	}

	r.Use(kit.Recoverer(deps.Log))
	r.Use(kit.CORS())
	r.Use(chimw.StripSlashes)
	r.Use(chimw.GetHead)
}

func setupMetricsRoute(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil || !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

// setupFallback routes the home document and sends every request no route
// claims, whatever its method, to the static tree or the not-found page.
func setupFallback(r *chi.Mux, deps HTTPDeps) {
	fallback := http.HandlerFunc(web.NotFound)
	if deps.Static != nil {
		r.Get("/", kit.Handle(deps.Log, deps.Static.Home))
		fallback = kit.Handle(deps.Log, deps.Static.Fallback)
	}

	r.NotFound(fallback)
	r.MethodNotAllowed(fallback)
}
