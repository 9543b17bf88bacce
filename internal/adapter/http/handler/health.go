package handler

import (
	"net/http"

	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
)

type Health struct {
	serviceName string
	version     string
	log         logger.Logger
}

func NewHealth(serviceName, version string, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		version:     version,
		log:         log,
	}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns the health status of the service
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (a *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "health_check")

	response := envelope{
		"status": "available",
		"system_info": map[string]string{
			"service-name": a.serviceName,
			"version":      a.version,
		},
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		a.log.Error(ctx, "healthcheck", err)
	}
}
