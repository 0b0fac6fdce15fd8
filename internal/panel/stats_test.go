package panel_test

import (
	"testing"

	"match-predictor/internal/domain"
	"match-predictor/internal/panel"

	"github.com/stretchr/testify/assert"
)

func TestFormatForm(t *testing.T) {
	tests := []struct {
		name string
		form []string
		want string
	}{
		{"mixed with unknown code", []string{"W", "D", "L", "X"}, "✓ ⟺ ✗ X"},
		{"empty", []string{}, "N/A"},
		{"missing", nil, "N/A"},
		{"single win", []string{"W"}, "✓"},
		{"lowercase passes through", []string{"w", "L"}, "w ✗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, panel.FormatForm(tt.form))
		})
	}
}

func TestFormatTeamStats(t *testing.T) {
	got := panel.FormatTeamStats(domain.TeamStats{
		Form:            []string{"W", "L"},
		GoalsPerMatch:   2.25,
		Possession:      57.6,
		CornersPerMatch: 4,
	})

	assert.Equal(t, panel.FormattedStats{
		Form:       "✓ ✗",
		Goals:      "2.3",
		Possession: "58%",
		Corners:    "4.0",
	}, got)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "70%", panel.Percent(70))
	assert.Equal(t, "45.5%", panel.Percent(45.5))
	assert.Equal(t, "0%", panel.Percent(0))
}
