package panel

import (
	"fmt"

	"match-predictor/internal/domain"
)

type TextRegion interface {
	SetText(text string)
}

// Gauge is a bar-fill indicator; width is a percentage of its track.
type Gauge interface {
	SetWidth(percent float64)
}

type Transcript interface {
	Append(msg domain.Message)
}

type SubmitControl interface {
	SetDisabled(disabled bool)
	SetLabel(label string)
}

// Alerter shows a blocking notice to the user.
type Alerter interface {
	Alert(text string)
}

type ResultsRegion interface {
	Show()
	ScrollIntoView()
}

type TeamStatsTargets struct {
	Name       TextRegion
	Form       TextRegion
	Goals      TextRegion
	Possession TextRegion
	Corners    TextRegion
}

// Targets are the display regions a Controller writes to.
type Targets struct {
	Transcript Transcript
	Submit     SubmitControl
	Alert      Alerter
	Results    ResultsRegion

	MatchInfo TextRegion
	Team1Name TextRegion
	Team2Name TextRegion

	Team1Prob TextRegion
	DrawProb  TextRegion
	Team2Prob TextRegion
	Team1Fill Gauge
	DrawFill  Gauge
	Team2Fill Gauge

	Recommendation TextRegion

	Stats1 TeamStatsTargets
	Stats2 TeamStatsTargets
}

func (t Targets) validate() error {
	required := []struct {
		name  string
		value any
	}{
		{"Transcript", t.Transcript},
		{"Submit", t.Submit},
		{"Alert", t.Alert},
		{"Results", t.Results},
		{"MatchInfo", t.MatchInfo},
		{"Team1Name", t.Team1Name},
		{"Team2Name", t.Team2Name},
		{"Team1Prob", t.Team1Prob},
		{"DrawProb", t.DrawProb},
		{"Team2Prob", t.Team2Prob},
		{"Team1Fill", t.Team1Fill},
		{"DrawFill", t.DrawFill},
		{"Team2Fill", t.Team2Fill},
		{"Recommendation", t.Recommendation},
	}
	for i, s := range []TeamStatsTargets{t.Stats1, t.Stats2} {
		prefix := fmt.Sprintf("Stats%d.", i+1)
		required = append(required, []struct {
			name  string
			value any
		}{
			{prefix + "Name", s.Name},
			{prefix + "Form", s.Form},
			{prefix + "Goals", s.Goals},
			{prefix + "Possession", s.Possession},
			{prefix + "Corners", s.Corners},
		}...)
	}

	for _, r := range required {
		if r.value == nil {
			return fmt.Errorf("missing display target %s", r.name)
		}
	}
	return nil
}
