package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withResponseMetrics counts responses per route pattern and status.
func (h *Handler) withResponseMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			if rec := recover(); rec != nil {
				h.record(r, http.StatusInternalServerError)
				panic(rec)
			}
		}()

		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}
		h.record(r, status)
	})
}

func (h *Handler) record(r *http.Request, status int) {
	route := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		route = rctx.RoutePattern()
	}

	h.metrics.CoreMetrics().RecordGatewayResponse(route, status)
}
