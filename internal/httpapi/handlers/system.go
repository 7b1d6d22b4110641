package handlers

import (
	"fmt"
	"net/http"

	"chiku/backend/internal/httpapi/response"
	"chiku/backend/internal/models"
)

// SystemHandler serves the static informational endpoints. Bodies are encoded
// once at construction so every response is byte-identical.
type SystemHandler struct {
	health         []byte
	birthdayConfig []byte
}

func NewSystemHandler() (*SystemHandler, error) {
	return NewSystemHandlerFor(models.DefaultHealthStatus(), models.DefaultBirthdayConfig())
}

func NewSystemHandlerFor(health models.HealthStatus, cfg models.BirthdayConfig) (*SystemHandler, error) {
	healthBody, err := response.Encode(health)
	if err != nil {
		return nil, fmt.Errorf("encode health status: %w", err)
	}
	configBody, err := response.Encode(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode birthday config: %w", err)
	}
	return &SystemHandler{health: healthBody, birthdayConfig: configBody}, nil
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.Raw(w, http.StatusOK, h.health)
}

func (h *SystemHandler) BirthdayConfig(w http.ResponseWriter, r *http.Request) {
	response.Raw(w, http.StatusOK, h.birthdayConfig)
}
