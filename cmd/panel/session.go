package main

import (
	"bufio"
	"context"
	"io"

	"match-predictor/internal/panel"
	"match-predictor/internal/terminal"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// session reads team names line by line: Enter on team 1 moves to team 2,
// Enter on team 2 submits. It ends at EOF or when ctx is cancelled.
func session(ctx context.Context, in io.Reader, ctrl *panel.Controller, screen *terminal.Screen, logger zerolog.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	lines := make(chan string)

	g.Go(func() error {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return sc.Err()
	})

	g.Go(func() error {
		for {
			screen.Prompt("team 1")
			team1, ok, err := nextLine(ctx, lines)
			if !ok {
				return err
			}
			screen.Prompt("team 2")
			team2, ok, err := nextLine(ctx, lines)
			if !ok {
				return err
			}

			if err := ctrl.Submit(ctx, team1, team2); err != nil {
				logger.Debug().Err(err).Msg("submit did not complete")
			}
			if err := ctrl.WaitRendered(ctx); err != nil {
				return err
			}
		}
	})

	return g.Wait()
}

func nextLine(ctx context.Context, lines <-chan string) (string, bool, error) {
	select {
	case line, ok := <-lines:
		return line, ok, nil
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}
