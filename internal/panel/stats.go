package panel

import (
	"math"
	"strconv"
	"strings"

	"match-predictor/internal/constants"
	"match-predictor/internal/domain"
)

var formGlyphs = map[string]string{
	"W": constants.WinGlyph,
	"D": constants.DrawGlyph,
	"L": constants.LossGlyph,
}

// FormattedStats is one team's key stats as display text.
type FormattedStats struct {
	Form       string
	Goals      string
	Possession string
	Corners    string
}

// FormatForm maps W/D/L codes to glyphs; unknown codes pass through.
func FormatForm(form []string) string {
	if len(form) == 0 {
		return constants.NotAvailable
	}
	out := make([]string, len(form))
	for i, code := range form {
		if g, ok := formGlyphs[code]; ok {
			out[i] = g
		} else {
			out[i] = code
		}
	}
	return strings.Join(out, " ")
}

func FormatTeamStats(s domain.TeamStats) FormattedStats {
	return FormattedStats{
		Form:       FormatForm(s.Form),
		Goals:      oneDecimal(s.GoalsPerMatch),
		Possession: Percent(math.Round(s.Possession)),
		Corners:    oneDecimal(s.CornersPerMatch),
	}
}

// Percent prints v the way the service sent it: 70 -> "70%", 45.5 -> "45.5%".
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// half away from zero, so 2.25 -> "2.3"
func oneDecimal(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}

func (c *Controller) formatStats(team1, team2 domain.TeamStats) {
	for _, side := range []struct {
		stats   domain.TeamStats
		targets TeamStatsTargets
	}{
		{team1, c.targets.Stats1},
		{team2, c.targets.Stats2},
	} {
		f := FormatTeamStats(side.stats)
		side.targets.Form.SetText(f.Form)
		side.targets.Goals.SetText(f.Goals)
		side.targets.Possession.SetText(f.Possession)
		side.targets.Corners.SetText(f.Corners)
	}
}
