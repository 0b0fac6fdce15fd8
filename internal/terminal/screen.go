package terminal

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"match-predictor/internal/domain"
	"match-predictor/internal/panel"
)

const gaugeWidth = 20

// Screen is a line-oriented panel: the transcript streams to out, alerts go
// to errOut and the results card is printed whenever it is brought into view.
type Screen struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer

	transcript []domain.Message
	visible    bool

	MatchInfo, Team1Name, Team2Name *Label
	Team1Prob, DrawProb, Team2Prob  *Label
	Team1Fill, DrawFill, Team2Fill  *Bar
	Recommendation                  *Label
	Stats1, Stats2                  *StatsBlock
	Button                          *Button
}

type StatsBlock struct {
	Name, Form, Goals, Possession, Corners *Label
}

func NewScreen(out, errOut io.Writer) *Screen {
	s := &Screen{out: out, errOut: errOut}
	s.MatchInfo, s.Team1Name, s.Team2Name = s.label(), s.label(), s.label()
	s.Team1Prob, s.DrawProb, s.Team2Prob = s.label(), s.label(), s.label()
	s.Team1Fill, s.DrawFill, s.Team2Fill = &Bar{s: s}, &Bar{s: s}, &Bar{s: s}
	s.Recommendation = s.label()
	s.Stats1, s.Stats2 = s.statsBlock(), s.statsBlock()
	s.Button = &Button{s: s}
	return s
}

func (s *Screen) label() *Label { return &Label{s: s} }

func (s *Screen) statsBlock() *StatsBlock {
	return &StatsBlock{Name: s.label(), Form: s.label(), Goals: s.label(), Possession: s.label(), Corners: s.label()}
}

// Targets wires every region of the screen into a panel.Targets.
func (s *Screen) Targets() panel.Targets {
	stats := func(b *StatsBlock) panel.TeamStatsTargets {
		return panel.TeamStatsTargets{Name: b.Name, Form: b.Form, Goals: b.Goals, Possession: b.Possession, Corners: b.Corners}
	}
	return panel.Targets{
		Transcript:     (*transcript)(s),
		Submit:         s.Button,
		Alert:          (*alerter)(s),
		Results:        (*results)(s),
		MatchInfo:      s.MatchInfo,
		Team1Name:      s.Team1Name,
		Team2Name:      s.Team2Name,
		Team1Prob:      s.Team1Prob,
		DrawProb:       s.DrawProb,
		Team2Prob:      s.Team2Prob,
		Team1Fill:      s.Team1Fill,
		DrawFill:       s.DrawFill,
		Team2Fill:      s.Team2Fill,
		Recommendation: s.Recommendation,
		Stats1:         stats(s.Stats1),
		Stats2:         stats(s.Stats2),
	}
}

// Prompt writes an input prompt that shows the submit button state.
func (s *Screen) Prompt(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "[%s] %s> ", s.Button.label, field)
}

// Messages returns a copy of the transcript so far.
func (s *Screen) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Screen) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

type Label struct {
	s    *Screen
	text string
}

func (l *Label) SetText(text string) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	l.text = text
}

func (l *Label) Text() string {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return l.text
}

type Bar struct {
	s     *Screen
	width float64
}

func (b *Bar) SetWidth(percent float64) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	b.width = percent
}

func (b *Bar) Width() float64 {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	return b.width
}

func (b *Bar) gauge() string {
	filled := int(math.Round(b.width / 100 * gaugeWidth))
	filled = max(0, min(gaugeWidth, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", gaugeWidth-filled) + "]"
}

type Button struct {
	s        *Screen
	disabled bool
	label    string
}

func (b *Button) SetDisabled(disabled bool) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	b.disabled = disabled
}

func (b *Button) SetLabel(label string) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	b.label = label
}

func (b *Button) Disabled() bool {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	return b.disabled
}

func (b *Button) Label() string {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	return b.label
}

type transcript Screen

func (t *transcript) Append(msg domain.Message) {
	s := (*Screen)(t)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, msg)
	prefix := "bot"
	if msg.Author == domain.AuthorUser {
		prefix = "you"
	}
	fmt.Fprintf(s.out, "%s> %s\n", prefix, msg.Text)
}

type alerter Screen

func (a *alerter) Alert(text string) {
	s := (*Screen)(a)
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.errOut, "! %s\n", text)
}

type results Screen

func (r *results) Show() {
	s := (*Screen)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
}

func (r *results) ScrollIntoView() {
	s := (*Screen)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.visible {
		return
	}
	s.printCard()
}

func (s *Screen) printCard() {
	var b strings.Builder
	fmt.Fprintf(&b, "\n== %s ==\n", s.MatchInfo.text)
	for _, row := range []struct {
		name string
		bar  *Bar
		prob *Label
	}{
		{s.Team1Name.text, s.Team1Fill, s.Team1Prob},
		{"Draw", s.DrawFill, s.DrawProb},
		{s.Team2Name.text, s.Team2Fill, s.Team2Prob},
	} {
		fmt.Fprintf(&b, "%-16s %s %s\n", row.name, row.bar.gauge(), row.prob.text)
	}
	fmt.Fprintf(&b, "Recommendation: %s\n\n", s.Recommendation.text)

	fmt.Fprintf(&b, "%-16s %-16s %s\n", "", s.Stats1.Name.text, s.Stats2.Name.text)
	for _, row := range []struct {
		name       string
		left, right *Label
	}{
		{"Form", s.Stats1.Form, s.Stats2.Form},
		{"Goals/match", s.Stats1.Goals, s.Stats2.Goals},
		{"Possession", s.Stats1.Possession, s.Stats2.Possession},
		{"Corners/match", s.Stats1.Corners, s.Stats2.Corners},
	} {
		fmt.Fprintf(&b, "%-16s %-16s %s\n", row.name, row.left.text, row.right.text)
	}
	io.WriteString(s.out, b.String())
}
