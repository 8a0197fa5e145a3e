package handler

import (
	"net/http"

	"courses/internal/service"

	"github.com/rs/zerolog"
)

type HealthHandler struct {
	healthService service.HealthService
	logger        zerolog.Logger
}

func NewHealthHandler(healthService service.HealthService, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{healthService: healthService, logger: logger}
}

func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.healthCheck)
}

// healthCheck godoc
// @Summary Health check
// @Description Returns the greeting and how many times the check was called before.
// @Tags system
// @Produce json
// @Success 200 {string} string "I'm OK. 0 times"
// @Router /health [get]
func (h *HealthHandler) healthCheck(w http.ResponseWriter, r *http.Request) {
	visits := h.healthService.RecordVisit()
	writeJSON(w, h.logger, http.StatusOK, h.healthService.Message(visits))
}
