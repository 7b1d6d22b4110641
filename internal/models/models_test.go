package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHealthStatusJSON(t *testing.T) {
	body, err := json.Marshal(DefaultHealthStatus())
	require.NoError(t, err)
	assert.Equal(t, `{"status":"healthy","message":"Happy Birthday Chirag! 🎂"}`, string(body))
}

func TestDefaultBirthdayConfigJSON(t *testing.T) {
	body, err := json.Marshal(DefaultBirthdayConfig())
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"Chirag","level":16,"audioSrc":"https://customer-assets.emergentagent.com/job_birthday-surprise-205/artifacts/jg47gc1p_happy-birthday-song.mp3","theme":"hacker"}`,
		string(body))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.IsType(t, float64(0), decoded["level"])
}
