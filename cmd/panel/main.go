package main

import (
	"context"
	"errors"
	"os"

	fxmodules "match-predictor/internal/fx"
	"match-predictor/internal/panel"
	"match-predictor/internal/terminal"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.PanelModule,
		fx.NopLogger,
		fx.Invoke(runPanel),
	).Run()
}

func runPanel(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	ctrl *panel.Controller,
	screen *terminal.Screen,
	logger zerolog.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				err := session(ctx, os.Stdin, ctrl, screen, logger)
				if err != nil && !errors.Is(err, context.Canceled) {
					logger.Error().Err(err).Msg("panel session ended")
				}
				if err := shutdowner.Shutdown(); err != nil {
					logger.Warn().Err(err).Msg("failed to request shutdown")
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			// stdin reads cannot be interrupted; the process exits without waiting on them
			cancel()
			ctrl.Close()
			return nil
		},
	})
}
