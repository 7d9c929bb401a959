package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Seed          uint64 `json:"seed"`
	FrameDelayMs  int    `json:"frame_delay_ms"`
	LiveThreshold int    `json:"live_threshold"`
	Pattern       string `json:"pattern"`
	Instrument    bool   `json:"instrument"`
	Screen        bool   `json:"screen"`
	Fit           bool   `json:"fit"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:         50,
		Height:        50,
		Seed:          0, // 0 draws a fresh seed at startup
		FrameDelayMs:  500,
		LiveThreshold: 255 / 8,
		Pattern:       "random",
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ParseFlags builds the configuration from command-line arguments. When
// -config names a file it is loaded first and the flags given on the command
// line override its values.
func ParseFlags(args []string) (Config, error) {
	config := DefaultConfig()
	fs, configPath := newFlagSet(&config)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseFlags] failed to parse arguments")
	}

	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return loaded, err
		}
		config = loaded
		fs, _ = newFlagSet(&config)
		if err := fs.Parse(args); err != nil {
			return config, errors.Wrap(err, "[ParseFlags] failed to parse arguments")
		}
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func newFlagSet(config *Config) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet("go-gol-term", flag.ContinueOnError)
	fs.IntVar(&config.Width, "width", config.Width, "interior grid width in cells")
	fs.IntVar(&config.Height, "height", config.Height, "interior grid height in cells")
	fs.Uint64Var(&config.Seed, "seed", config.Seed, "PRNG seed for the initial pattern, 0 for a fresh seed")
	fs.Uint64Var(&config.Seed, "s", config.Seed, "shorthand for -seed")
	fs.IntVar(&config.FrameDelayMs, "time", config.FrameDelayMs, "milliseconds between generations")
	fs.IntVar(&config.FrameDelayMs, "t", config.FrameDelayMs, "shorthand for -time")
	fs.IntVar(&config.LiveThreshold, "threshold", config.LiveThreshold, "byte threshold (0-255) below which a cell starts alive")
	fs.StringVar(&config.Pattern, "pattern", config.Pattern, "starting pattern: random, glider, blinker, block, demo")
	fs.BoolVar(&config.Instrument, "timing", config.Instrument, "report render time on the frame line")
	fs.BoolVar(&config.Screen, "screen", config.Screen, "draw through a full-screen terminal UI")
	fs.BoolVar(&config.Fit, "fit", config.Fit, "size the board to the terminal")
	configPath := fs.String("config", "", "optional JSON configuration file")

	return fs, configPath
}

// Validate rejects values the game cannot run with. Zero dimensions are
// valid and produce a board with no interior.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("[Validate] negative board size: %dx%d", c.Width, c.Height)
	}
	if c.FrameDelayMs < 0 {
		return errors.Errorf("[Validate] negative frame delay: %dms", c.FrameDelayMs)
	}
	if c.LiveThreshold < 0 || c.LiveThreshold > 255 {
		return errors.Errorf("[Validate] live threshold out of range 0-255: %d", c.LiveThreshold)
	}
	return nil
}

// FrameDelay returns the pause between generations
func (c Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}

// Threshold returns the live threshold as a byte
func (c Config) Threshold() uint8 {
	return uint8(c.LiveThreshold)
}

// ResolveSeed returns seed, or a fresh non-zero value from draw when seed is 0
func ResolveSeed(seed uint64, draw func() uint64) uint64 {
	for seed == 0 {
		seed = draw()
	}
	return seed
}
