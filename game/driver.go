// Package game runs a board forward at a fixed cadence and hands every
// generation to a renderer.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/sheikhrachel/go-gol-term/model"
	"github.com/sheikhrachel/go-gol-term/utils"
)

const (
	statusActive   = "Active"
	statusStagnant = "Stagnant"
	statusExtinct  = "Extinct"
)

// Driver owns a board and is the only thing that mutates it
type Driver struct {
	board      *model.Board
	renderer   model.Renderer
	delay      time.Duration
	seed       uint64
	instrument bool

	frame     uint64
	stats     *utils.Stats
	history   *model.History
	lastFrame time.Time
}

// NewDriver prepares a driver for board. seed is the resolved seed used to
// fill the board, shown on the status line.
func NewDriver(board *model.Board, renderer model.Renderer, config utils.Config, seed uint64) *Driver {
	return &Driver{
		board:      board,
		renderer:   renderer,
		delay:      config.FrameDelay(),
		seed:       seed,
		instrument: config.Instrument,
		stats:      utils.NewStats(),
		history:    model.NewHistory(),
		lastFrame:  time.Now(),
	}
}

// Frame returns the number of frames produced so far
func (d *Driver) Frame() uint64 {
	return d.frame
}

// Stats returns the running diagnostics
func (d *Driver) Stats() *utils.Stats {
	return d.stats
}

// Step advances one generation and presents it
func (d *Driver) Step() error {
	d.frame++
	d.board.Step()

	renderStart := time.Now()
	text := d.board.Render()
	renderTime := time.Since(renderStart)

	population := d.board.CountLivingCells()
	now := time.Now()
	d.stats.Update(d.frame, population, now.Sub(d.lastFrame), renderTime)
	d.lastFrame = now

	status := statusActive
	if d.history.Observe(d.board.GetBoardHash()) {
		status = statusStagnant
	}
	if population == 0 {
		status = statusExtinct
	}

	return d.renderer.Present(model.Frame{
		Number: d.frame,
		Board:  text,
		Info:   d.info(population, status),
	})
}

func (d *Driver) info(population int, status string) []string {
	frameLine := fmt.Sprintf("Frame: %d", d.frame)
	if d.instrument {
		frameLine += fmt.Sprintf(" | Render: %v (avg %v) | %.1f gen/sec",
			d.stats.LastRenderTime, d.stats.AverageRenderTime, d.stats.GenerationsPerSecond)
	}
	return []string{
		frameLine,
		fmt.Sprintf("Seed: %d | Living: %d | Status: %s", d.seed, population, status),
	}
}

// Run steps the board until the renderer fails or ctx is cancelled,
// pausing the configured delay between generations. Render failures are
// returned as is; cancellation returns ctx.Err().
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Step(); err != nil {
			return err
		}
		if err := sleep(ctx, d.delay); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
