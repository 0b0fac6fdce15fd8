package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"match-predictor/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	PredictorURL        string
	PredictPath         string
	LogLevel            string
	RenderDelay         time.Duration
	CloseMatchThreshold float64
	RequestTimeout      time.Duration
	StubPort            string
	StubFixtures        string
}

// Endpoint is the absolute URL the panel posts match queries to.
func (c *Config) Endpoint() string {
	return strings.TrimRight(c.PredictorURL, "/") + c.PredictPath
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	renderDelay, err := getDuration("RENDER_DELAY", constants.RenderDelay)
	if err != nil {
		return nil, err
	}
	requestTimeout, err := getDuration("REQUEST_TIMEOUT", constants.RequestTimeout)
	if err != nil {
		return nil, err
	}
	threshold, err := getFloat("CLOSE_MATCH_THRESHOLD", constants.CloseMatchThreshold)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		PredictorURL:        getEnv("PREDICTOR_URL", constants.DefaultServerURL),
		PredictPath:         getEnv("PREDICT_PATH", constants.PredictPath),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RenderDelay:         renderDelay,
		CloseMatchThreshold: threshold,
		RequestTimeout:      requestTimeout,
		StubPort:            getEnv("STUB_PORT", "8000"),
		StubFixtures:        getEnv("STUB_FIXTURES", ""),
	}

	if u, err := url.Parse(cfg.PredictorURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("PREDICTOR_URL must be an absolute URL, got %q", cfg.PredictorURL)
	}
	if !strings.HasPrefix(cfg.PredictPath, "/") {
		return nil, fmt.Errorf("PREDICT_PATH must start with '/', got %q", cfg.PredictPath)
	}

	logger.Info().
		Str("endpoint", cfg.Endpoint()).
		Str("log_level", cfg.LogLevel).
		Dur("render_delay", cfg.RenderDelay).
		Dur("request_timeout", cfg.RequestTimeout).
		Float64("close_match_threshold", cfg.CloseMatchThreshold).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s %q: want a non-negative duration such as 500ms", key, v)
	}
	return d, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

var Module = fx.Provide(Load)
