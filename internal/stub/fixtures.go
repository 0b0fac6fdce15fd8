package stub

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"match-predictor/internal/domain"
)

//go:embed fixtures/*.json
var embedFixtures embed.FS

// Fixture is a canned payload for one (team1, team2) pairing.
type Fixture struct {
	Team1    string                  `json:"team1"`
	Team2    string                  `json:"team2"`
	Response domain.PredictionResult `json:"response"`
}

type fixtureSet map[string]domain.PredictionResult

func fixtureKey(team1, team2 string) string {
	return strings.ToLower(strings.TrimSpace(team1)) + "|" + strings.ToLower(strings.TrimSpace(team2))
}

// loadFixtures reads the embedded defaults, then path (if set) on top of them.
func loadFixtures(path string) (fixtureSet, error) {
	set := fixtureSet{}

	entries, err := fs.Glob(embedFixtures, "fixtures/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded fixtures: %w", err)
	}
	for _, name := range entries {
		f, err := embedFixtures.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		err = set.read(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
	}

	if path == "" {
		return set, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures file: %w", err)
	}
	defer f.Close()
	if err := set.read(f); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return set, nil
}

func (s fixtureSet) read(r io.Reader) error {
	var fixtures []Fixture
	if err := json.NewDecoder(r).Decode(&fixtures); err != nil {
		return err
	}
	for _, f := range fixtures {
		if strings.TrimSpace(f.Team1) == "" || strings.TrimSpace(f.Team2) == "" {
			return fmt.Errorf("fixture is missing a team name")
		}
		s[fixtureKey(f.Team1, f.Team2)] = f.Response
	}
	return nil
}

// neutral is returned for pairings without a fixture.
func neutral() domain.PredictionResult {
	return domain.PredictionResult{
		Prediction: domain.Prediction{
			Team1:           domain.TeamOdds{WinProbability: 45},
			Team2:           domain.TeamOdds{WinProbability: 45},
			DrawProbability: 10,
		},
		Recommendation: "Balanced match, bet with caution",
		KeyStats: domain.KeyStats{
			Team1: domain.TeamStats{Form: []string{}},
			Team2: domain.TeamStats{Form: []string{}},
		},
	}
}
