package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-term/game"
	"github.com/sheikhrachel/go-gol-term/model"
	"github.com/sheikhrachel/go-gol-term/terminal"
	"github.com/sheikhrachel/go-gol-term/utils"
)

// initializeGame builds the starting board and returns it with the seed
// that filled it
func initializeGame(config utils.Config) (*model.Board, uint64, error) {
	seed := utils.ResolveSeed(config.Seed, rand.Uint64)

	board := model.NewBoard(config.Width, config.Height)
	if config.Pattern == model.PatternRandom || config.Pattern == "" {
		board.RandomizeWithThreshold(seed, config.Threshold())
		return board, seed, nil
	}

	if err := board.ApplyPattern(config.Pattern); err != nil {
		return nil, seed, errors.Wrap(err, "[initializeGame] failed to place starting pattern")
	}
	return board, seed, nil
}

// fitToTerminal replaces the configured size with the terminal size when
// -fit is set. Failures keep the configured size.
func fitToTerminal(config utils.Config, fd int) utils.Config {
	if !config.Fit {
		return config
	}
	width, height, err := terminal.FitSize(fd)
	if err != nil {
		log.Printf("Keeping %dx%d board: %v", config.Width, config.Height, err)
		return config
	}
	config.Width, config.Height = width, height
	return config
}

// displayGameInfo logs the run parameters before the first frame. The ANSI
// renderer resets a terminal stdout on its first frame, so nothing is logged
// in that case; the status line already carries the seed.
func displayGameInfo(config utils.Config, board *model.Board, seed uint64, stdoutIsTerminal bool) {
	if !config.Screen && stdoutIsTerminal {
		return
	}
	log.Printf("Grid: %dx%d | Seed: %d | Pattern: %s | Initial living cells: %d",
		board.GetWidth(), board.GetHeight(), seed, config.Pattern, board.CountLivingCells())
	if config.Screen {
		log.Printf("Press q, Esc or Ctrl+C to exit")
	}
}

// runTerminal drives the board with raw ANSI output until the process is
// killed or stdout fails
func runTerminal(config utils.Config, board *model.Board, seed uint64) error {
	driver := game.NewDriver(board, model.NewTerminalRenderer(os.Stdout), config, seed)
	return driver.Run(context.Background())
}

// runScreen drives the board on a tcell screen next to a quit-key watcher.
// Whichever finishes first stops the other; the screen is always restored.
func runScreen(config utils.Config, board *model.Board, seed uint64) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	driver := game.NewDriver(board, terminal.NewScreenRenderer(screen), config, seed)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return terminal.WatchQuit(egCtx, screen)
	})
	eg.Go(func() error {
		defer cancel()
		return driver.Run(egCtx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
