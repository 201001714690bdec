// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the QR generator service.
package api

import (
	_ "embed"
	"net/http"
	"qrgen/internal/api/handler/v1handler"
	"qrgen/internal/config"
	"qrgen/pkg/controller"
	"qrgen/pkg/serrors"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI document for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Handler configures the v1 handlers.
	Handler v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Handler: v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewHandler builds the router with every route and middleware:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 QR and validation routes
// - pprof endpoints for profiling
// - health check
func NewHandler(deps Deps, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(controller.WithCORS)
	r.Use(controller.WithLogger)

	r.Handle(opts.MetricsPath, promhttp.Handler())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		controller.WriteJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	r.Handle("/v1/docs/*", v5emb.New(
		"QR Code Generator",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	r.Route("/v1", v1handler.New(deps.Deps, opts.Handler).Routes)

	r.Handle("/debug/pprof/*", controller.PprofMux())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		controller.WriteError(r.Context(), w, serrors.With(serrors.ErrNotFound, "no route for %s", r.URL.Path))
	})

	return r
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// The router is wrapped with a request timeout.
func NewServer(deps Deps, opts Options) *http.Server {
	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(NewHandler(deps, opts), opts.RequestTimeout, `{"error":"request timed out","kind":"INTERNAL"}`), //nolint: lll
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
}
