package fx

import (
	"os"

	"match-predictor/internal/api"
	"match-predictor/internal/config"
	"match-predictor/internal/logger"
	"match-predictor/internal/panel"
	"match-predictor/internal/stub"
	"match-predictor/internal/terminal"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideScreen() *terminal.Screen {
	return terminal.NewScreen(os.Stdout, os.Stderr)
}

func ProvideController(screen *terminal.Screen, client *api.PredictionClient, cfg *config.Config, logger zerolog.Logger) (*panel.Controller, error) {
	opts := panel.DefaultOptions()
	opts.RenderDelay = cfg.RenderDelay
	opts.CloseMatchThreshold = cfg.CloseMatchThreshold
	opts.RequestTimeout = cfg.RequestTimeout
	return panel.NewController(screen.Targets(), client, opts, logger)
}

var Core = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
)

var PanelModule = fx.Options(
	Core,
	// api client
	fx.Provide(api.NewPredictionClient),
	// display
	fx.Provide(ProvideScreen),
	fx.Provide(ProvideController),
)

var StubModule = fx.Options(
	Core,
	fx.Provide(stub.NewService),
)
