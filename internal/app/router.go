package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/sanmei-api/internal/api"
	apiMiddleware "github.com/phrazzld/sanmei-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// requestTimeout bounds a single request, batches included.
const requestTimeout = 30 * time.Second

// Router returns the HTTP handler of the application.
func (app *Application) Router() (http.Handler, error) {
	chartHandler, err := api.NewChartHandler(app.readingService, app.runner, app.logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/charts", chartHandler.CreateChart)
		r.Post("/charts/batch", chartHandler.CreateBatch)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r, nil
}
