package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/sanmei-api/internal/api/shared"
	"github.com/phrazzld/sanmei-api/internal/platform/logger"
)

// NewTraceMiddleware adds a trace ID to every request. The ID is stored in
// the request context, echoed in the X-Trace-ID response header and attached
// to a request-scoped logger that handlers retrieve with logger.FromContext.
// Apply it early in the middleware chain.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(shared.TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
