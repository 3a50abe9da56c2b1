package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	loadConfigurationRoute      = "/configuration/LoadConfigurationFromServer"
	loadNodesConfigurationRoute = "/configuration/LoadNodesConfigurationFromServer"
	versionRoute                = "/api/version/"
	metricsRoute                = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	if h.gatewayService != nil {
		router.Group(func(r chi.Router) {
			r.Use(h.withResponseMetrics, withGZip)
			r.Get(loadConfigurationRoute, h.loadConfiguration)
			r.Get(loadNodesConfigurationRoute, h.loadNodesConfiguration)
		})
	}

	router.Get(versionRoute, h.getAppVersion)
	if h.metrics != nil {
		router.Handle(metricsRoute, h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
