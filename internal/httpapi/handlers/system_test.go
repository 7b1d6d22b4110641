package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chiku/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHandlerHealth(t *testing.T) {
	h, err := NewSystemHandler()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"status":"healthy","message":"Happy Birthday Chirag! 🎂"}`, rec.Body.String())
}

func TestSystemHandlerBirthdayConfig(t *testing.T) {
	h, err := NewSystemHandler()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.BirthdayConfig(rec, httptest.NewRequest(http.MethodGet, "/api/birthday-config", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		`{"name":"Chirag","level":16,"audioSrc":"https://customer-assets.emergentagent.com/job_birthday-surprise-205/artifacts/jg47gc1p_happy-birthday-song.mp3","theme":"hacker"}`,
		rec.Body.String())
}

func TestSystemHandlerCustomPayload(t *testing.T) {
	h, err := NewSystemHandlerFor(
		models.HealthStatus{Status: models.StatusHealthy, Message: "ok"},
		models.BirthdayConfig{Name: "Test", Level: 1, AudioSrc: "https://example.com/a.mp3", Theme: models.ThemeHacker},
	)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.BirthdayConfig(rec, httptest.NewRequest(http.MethodGet, "/api/birthday-config", nil))

	assert.JSONEq(t, `{"name":"Test","level":1,"audioSrc":"https://example.com/a.mp3","theme":"hacker"}`, rec.Body.String())
}
