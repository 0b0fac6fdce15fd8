// Package stub serves canned predictions in the shape of the real service so
// the panel can be run and tested without the model behind it.
package stub

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"match-predictor/internal/config"
	"match-predictor/internal/constants"
	"match-predictor/internal/domain"
	"match-predictor/internal/middleware"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type Service struct {
	fixtures fixtureSet
	logger   zerolog.Logger
	now      func() time.Time
}

func NewService(cfg *config.Config, logger zerolog.Logger) (*Service, error) {
	fixtures, err := loadFixtures(cfg.StubFixtures)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("fixtures", len(fixtures)).Str("file", cfg.StubFixtures).Msg("stub fixtures loaded")
	return &Service{fixtures: fixtures, logger: logger, now: time.Now}, nil
}

// Handler mounts the predict and health routes behind CORS and request-id logging.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+constants.PredictPath, s.predict)
	mux.HandleFunc("GET "+constants.HealthPath, s.health)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return middleware.RequestID(s.logger)(c.Handler(mux))
}

// Lookup returns the fixture for the pairing, or the neutral payload.
func (s *Service) Lookup(q domain.MatchQuery) (domain.PredictionResult, bool) {
	res, ok := s.fixtures[fixtureKey(q.Team1, q.Team2)]
	if !ok {
		res = neutral()
	}
	res.Prediction.Team1.Name = q.Team1
	res.Prediction.Team2.Name = q.Team2
	return res, ok
}

func (s *Service) predict(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var q domain.MatchQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON body"})
		return
	}
	q.Team1, q.Team2 = strings.TrimSpace(q.Team1), strings.TrimSpace(q.Team2)
	if q.Team1 == "" || q.Team2 == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "two teams are required"})
		return
	}

	res, known := s.Lookup(q)
	logger.Debug().Str("team1", q.Team1).Str("team2", q.Team2).Bool("fixture", known).Msg("serving prediction")
	writeJSON(w, http.StatusOK, res)
}

func (s *Service) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": s.now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
