package panel

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"match-predictor/internal/constants"
	"match-predictor/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

var (
	ErrMissingTeams = errors.New("both teams are required")
	ErrBusy         = errors.New("a prediction is already in flight")
)

// Predictor is the remote prediction service.
type Predictor interface {
	Predict(ctx context.Context, q domain.MatchQuery) (*domain.PredictionResult, error)
}

type Options struct {
	// RenderDelay staggers the probability and stats writes after the names.
	RenderDelay         time.Duration
	CloseMatchThreshold float64
	// RequestTimeout bounds one Predict call; zero means no bound.
	RequestTimeout time.Duration
	SubmitLabel    string
}

func DefaultOptions() Options {
	return Options{
		RenderDelay:         constants.RenderDelay,
		CloseMatchThreshold: constants.CloseMatchThreshold,
		RequestTimeout:      constants.RequestTimeout,
		SubmitLabel:         constants.SubmitLabel,
	}
}

// Controller drives one prediction panel: it validates the two team names,
// calls the Predictor and writes the outcome into its Targets.
type Controller struct {
	targets   Targets
	predictor Predictor
	opts      Options
	logger    zerolog.Logger

	busy   atomic.Bool
	render deferredTask
}

func NewController(targets Targets, predictor Predictor, opts Options, logger zerolog.Logger) (*Controller, error) {
	if err := targets.validate(); err != nil {
		return nil, err
	}
	if predictor == nil {
		return nil, errors.New("predictor is required")
	}
	if opts.SubmitLabel == "" {
		opts.SubmitLabel = constants.SubmitLabel
	}

	c := &Controller{
		targets:   targets,
		predictor: predictor,
		opts:      opts,
		logger:    logger,
	}
	c.targets.Submit.SetDisabled(false)
	c.targets.Submit.SetLabel(opts.SubmitLabel)
	return c, nil
}

// Submit runs one request/response/render cycle. Every failure has already
// been shown to the user when Submit returns; the error is for the caller's
// diagnostics only.
func (c *Controller) Submit(ctx context.Context, team1, team2 string) error {
	q, ok := domain.NewMatchQuery(team1, team2)
	if !ok {
		c.targets.Alert.Alert(constants.MissingTeamsText)
		return ErrMissingTeams
	}

	if !c.busy.CompareAndSwap(false, true) {
		c.logger.Debug().Str("match", q.String()).Msg("submit ignored, request in flight")
		return ErrBusy
	}
	defer c.busy.Store(false)

	c.say(domain.AuthorUser, q.String())
	c.say(domain.AuthorBot, constants.AnalyzingText)

	c.targets.Submit.SetDisabled(true)
	c.targets.Submit.SetLabel(constants.SubmitBusyLabel)
	defer func() {
		c.targets.Submit.SetDisabled(false)
		c.targets.Submit.SetLabel(c.opts.SubmitLabel)
	}()

	if c.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := c.predictor.Predict(ctx, q)
	if err == nil && result == nil {
		err = errors.New("empty prediction result")
	}
	if err != nil {
		c.logger.Error().Err(err).Str("team1", q.Team1).Str("team2", q.Team2).Msg("prediction failed")
		c.say(domain.AuthorBot, constants.FailureText)
		return fmt.Errorf("failed to get prediction: %w", err)
	}

	c.logger.Info().
		Str("team1", q.Team1).
		Str("team2", q.Team2).
		Dur("duration", time.Since(start)).
		Msg("prediction received")

	c.Render(result, q.Team1, q.Team2)
	c.say(domain.AuthorBot, Verdict(result.Prediction, q, c.opts.CloseMatchThreshold))
	if result.Recommendation != "" {
		c.say(domain.AuthorBot, result.Recommendation)
	}
	return nil
}

// Verdict announces the favourite, or a close match when neither side reaches
// threshold. Team1 wins ties.
func Verdict(p domain.Prediction, q domain.MatchQuery, threshold float64) string {
	winner := q.Team1
	if p.Team2.WinProbability > p.Team1.WinProbability {
		winner = q.Team2
	}
	winProb := math.Max(p.Team1.WinProbability, p.Team2.WinProbability)

	if winProb < threshold {
		return fmt.Sprintf("Close match: draw with %s probability.", Percent(p.DrawProbability))
	}
	return fmt.Sprintf("Prediction: %s with %s chance of winning.", winner, Percent(winProb))
}

// Render writes the team names now and the numbers after the render delay.
// A later Render supersedes a pending one.
func (c *Controller) Render(result *domain.PredictionResult, team1, team2 string) {
	c.targets.Team1Name.SetText(team1)
	c.targets.Team2Name.SetText(team2)
	c.targets.Stats1.Name.SetText(team1)
	c.targets.Stats2.Name.SetText(team2)
	c.targets.MatchInfo.SetText(team1 + " vs " + team2)

	res := *result
	c.render.Schedule(c.opts.RenderDelay, func() {
		p := res.Prediction
		c.checkProbabilities(p)

		c.targets.Team1Prob.SetText(Percent(p.Team1.WinProbability))
		c.targets.DrawProb.SetText(Percent(p.DrawProbability))
		c.targets.Team2Prob.SetText(Percent(p.Team2.WinProbability))

		c.targets.Team1Fill.SetWidth(clampPercent(p.Team1.WinProbability))
		c.targets.DrawFill.SetWidth(clampPercent(p.DrawProbability))
		c.targets.Team2Fill.SetWidth(clampPercent(p.Team2.WinProbability))

		c.targets.Recommendation.SetText(res.Recommendation)
		c.formatStats(res.KeyStats.Team1, res.KeyStats.Team2)

		c.targets.Results.Show()
		c.targets.Results.ScrollIntoView()
	})
}

// Rendered is closed once the latest scheduled render has been written or dropped.
func (c *Controller) Rendered() <-chan struct{} {
	return c.render.Done()
}

// WaitRendered blocks until Rendered is closed or ctx is done.
func (c *Controller) WaitRendered(ctx context.Context) error {
	select {
	case <-c.Rendered():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drops any pending render.
func (c *Controller) Close() {
	c.render.Cancel()
}

func (c *Controller) say(author domain.Author, text string) {
	id, err := gonanoid.New()
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to generate message id")
	}
	c.targets.Transcript.Append(domain.Message{
		ID:        id,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	})
}

func (c *Controller) checkProbabilities(p domain.Prediction) {
	values := []float64{p.Team1.WinProbability, p.DrawProbability, p.Team2.WinProbability}
	sum, outOfRange := 0.0, false
	for _, v := range values {
		if v < 0 || v > 100 || math.IsNaN(v) {
			outOfRange = true
		}
		sum += v
	}
	if outOfRange {
		c.logger.Warn().Floats64("probabilities", values).Msg("probability outside [0,100], clamping bar")
	}
	if math.Abs(sum-100) > 1 {
		c.logger.Warn().Float64("sum", sum).Msg("probabilities do not sum to 100")
	}
}

// Bars cannot overflow their track; labels still show the raw value.
func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
