package config_test

import (
	"testing"
	"time"

	"match-predictor/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PREDICTOR_URL", "PREDICT_PATH", "LOG_LEVEL", "RENDER_DELAY",
		"CLOSE_MATCH_THRESHOLD", "REQUEST_TIMEOUT", "STUB_PORT", "STUB_FIXTURES",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/predict", cfg.Endpoint())
	assert.Equal(t, 500*time.Millisecond, cfg.RenderDelay)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 40.0, cfg.CloseMatchThreshold)
	assert.Equal(t, "8000", cfg.StubPort)
	assert.Empty(t, cfg.StubFixtures)
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PREDICTOR_URL", "http://predictor.internal:9000/")
	t.Setenv("PREDICT_PATH", "/v2/predict")
	t.Setenv("RENDER_DELAY", "0s")
	t.Setenv("CLOSE_MATCH_THRESHOLD", "35.5")

	cfg, err := config.Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "http://predictor.internal:9000/v2/predict", cfg.Endpoint())
	assert.Zero(t, cfg.RenderDelay)
	assert.Equal(t, 35.5, cfg.CloseMatchThreshold)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"relative url", "PREDICTOR_URL", "localhost"},
		{"path without slash", "PREDICT_PATH", "api/predict"},
		{"bad delay", "RENDER_DELAY", "soon"},
		{"negative delay", "RENDER_DELAY", "-1s"},
		{"bad threshold", "CLOSE_MATCH_THRESHOLD", "forty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load(zerolog.Nop())
			assert.Error(t, err)
		})
	}
}
