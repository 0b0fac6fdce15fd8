package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"match-predictor/internal/config"
	"match-predictor/internal/constants"
	"match-predictor/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected status from prediction service")
	ErrMalformedResponse = errors.New("malformed prediction response")
)

// PredictionClient talks to the remote prediction service.
type PredictionClient struct {
	endpoint string
	client   *fasthttp.Client
	logger   zerolog.Logger
}

func NewPredictionClient(cfg *config.Config, logger zerolog.Logger) *PredictionClient {
	return &PredictionClient{
		endpoint: cfg.Endpoint(),
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger: logger,
	}
}

func (c *PredictionClient) Endpoint() string {
	return c.endpoint
}

// Predict posts the query and decodes the service payload.
func (c *PredictionClient) Predict(ctx context.Context, q domain.MatchQuery) (*domain.PredictionResult, error) {
	resp, err := postJSON[predictResponse](ctx, c, c.endpoint, q)
	if err != nil {
		return nil, err
	}
	if resp.Prediction == nil {
		return nil, fmt.Errorf("%w: missing prediction", ErrMalformedResponse)
	}

	result := &domain.PredictionResult{
		Prediction:     *resp.Prediction,
		Recommendation: resp.Recommendation,
	}
	if resp.KeyStats != nil {
		result.KeyStats = *resp.KeyStats
	}
	return result, nil
}

type predictResponse struct {
	Prediction     *domain.Prediction `json:"prediction"`
	Recommendation string             `json:"recommendation"`
	KeyStats       *domain.KeyStats   `json:"key_stats"`
}

func postJSON[T any](ctx context.Context, client *PredictionClient, url string, body any) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	requestID := uuid.New().String()
	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.SetBody(payload)

	start := time.Now()
	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("failed to reach prediction service: %w", err)
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("failed to reach prediction service: %w", err)
		}
	}

	status := resp.StatusCode()
	client.logger.Debug().
		Str("request_id", requestID).
		Str("url", url).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("prediction request completed")

	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &result, nil
}
