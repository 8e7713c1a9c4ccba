package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	appName     string
	version     string
	startupTime time.Time
}

func newHealthHandler(appName, version string, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		appName:     appName,
		version:     version,
		startupTime: startupTime,
	}
}

// health reports that the process is serving
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service status"
// @Router /health [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status:  "ok",
			App:     h.appName,
			Version: h.version,
			Uptime:  time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
