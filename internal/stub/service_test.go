package stub_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"match-predictor/internal/api"
	"match-predictor/internal/config"
	"match-predictor/internal/domain"
	"match-predictor/internal/panel"
	"match-predictor/internal/stub"
	"match-predictor/internal/terminal"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, fixtures string) *stub.Service {
	t.Helper()
	svc, err := stub.NewService(&config.Config{StubFixtures: fixtures}, zerolog.Nop())
	require.NoError(t, err)
	return svc
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPredict_Fixture(t *testing.T) {
	h := newService(t, "").Handler()

	rec := post(t, h, `{"team1":"roma","team2":" LAZIO "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var res domain.PredictionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 33.5, res.Prediction.Team1.WinProbability)
	assert.Equal(t, 35.0, res.Prediction.DrawProbability)
	assert.Equal(t, "roma", res.Prediction.Team1.Name)
	assert.Equal(t, "LAZIO", res.Prediction.Team2.Name)
	assert.Equal(t, []string{"D", "W", "L", "D", "D"}, res.KeyStats.Team1.Form)
}

func TestPredict_UnknownPairIsNeutral(t *testing.T) {
	h := newService(t, "").Handler()

	rec := post(t, h, `{"team1":"Ajax","team2":"PSV"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res domain.PredictionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 45.0, res.Prediction.Team1.WinProbability)
	assert.Equal(t, 45.0, res.Prediction.Team2.WinProbability)
	assert.Equal(t, 10.0, res.Prediction.DrawProbability)
	assert.Empty(t, res.KeyStats.Team1.Form)
}

func TestPredict_BadRequests(t *testing.T) {
	h := newService(t, "").Handler()

	for _, body := range []string{`{"team1":"Ajax"}`, `{"team1":" ","team2":"PSV"}`, `not json`} {
		rec := post(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "detail")
	}
}

func TestPredict_WrongMethod(t *testing.T) {
	h := newService(t, "").Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/predict", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	h := newService(t, "").Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}

func TestCORSPreflight(t *testing.T) {
	h := newService(t, "").Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/predict", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestFixturesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"team1":"Ajax","team2":"PSV","response":{
		"prediction":{"team1":{"win_probability":61},"team2":{"win_probability":22},"draw_probability":17},
		"recommendation":"Recommended bet: Ajax win"}}]`), 0o644))

	svc := newService(t, path)

	res, ok := svc.Lookup(domain.MatchQuery{Team1: "Ajax", Team2: "PSV"})
	assert.True(t, ok)
	assert.Equal(t, 61.0, res.Prediction.Team1.WinProbability)

	_, ok = svc.Lookup(domain.MatchQuery{Team1: "Roma", Team2: "Lazio"})
	assert.True(t, ok, "embedded fixtures stay loaded")
}

func TestFixturesFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"team1":"","team2":"PSV"}]`), 0o644))

	_, err := stub.NewService(&config.Config{StubFixtures: path}, zerolog.Nop())
	assert.Error(t, err)

	_, err = stub.NewService(&config.Config{StubFixtures: filepath.Join(t.TempDir(), "missing.json")}, zerolog.Nop())
	assert.Error(t, err)
}

// The panel, the fasthttp client and the stub together over a real socket.
func TestPanelAgainstStub(t *testing.T) {
	srv := httptest.NewServer(newService(t, "").Handler())
	defer srv.Close()

	client := api.NewPredictionClient(&config.Config{PredictorURL: srv.URL, PredictPath: "/api/predict"}, zerolog.Nop())
	var out bytes.Buffer
	screen := terminal.NewScreen(&out, &bytes.Buffer{})

	opts := panel.DefaultOptions()
	opts.RenderDelay = time.Millisecond
	ctrl, err := panel.NewController(screen.Targets(), client, opts, zerolog.Nop())
	require.NoError(t, err)
	defer ctrl.Close()

	require.NoError(t, ctrl.Submit(context.Background(), "Roma", "Lazio"))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, ctrl.WaitRendered(ctx))

	assert.Equal(t, "33.5%", screen.Team1Prob.Text())
	assert.Equal(t, "⟺ ✓ ✗ ⟺ ⟺", screen.Stats1.Form.Text())
	assert.Contains(t, out.String(), "bot> Close match: draw with 35% probability.")
	assert.Contains(t, out.String(), "bot> Recommended bet: draw")

	// the stub rejects nothing the panel lets through, so force a 404 path
	bad := api.NewPredictionClient(&config.Config{PredictorURL: srv.URL, PredictPath: "/api/missing"}, zerolog.Nop())
	ctrl2, err := panel.NewController(screen.Targets(), bad, opts, zerolog.Nop())
	require.NoError(t, err)
	assert.ErrorIs(t, ctrl2.Submit(context.Background(), "Roma", "Lazio"), api.ErrUnexpectedStatus)
	assert.Contains(t, out.String(), "bot> Sorry, something went wrong. Please try again.")
}
