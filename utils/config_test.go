package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Width != 50 || c.Height != 50 {
		t.Errorf("Expected 50x50 default board, got %dx%d", c.Width, c.Height)
	}
	if c.FrameDelay() != 500*time.Millisecond {
		t.Errorf("Expected 500ms frame delay, got %v", c.FrameDelay())
	}
	if c.Seed != 0 {
		t.Errorf("Expected zero seed by default, got %d", c.Seed)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(Config) bool
		wantErr bool
	}{
		{"No arguments", nil, func(c Config) bool { return c == DefaultConfig() }, false},
		{"Dimensions", []string{"-width", "12", "-height", "7"}, func(c Config) bool { return c.Width == 12 && c.Height == 7 }, false},
		{"Seed shorthand", []string{"-s", "99"}, func(c Config) bool { return c.Seed == 99 }, false},
		{"Time shorthand", []string{"-t", "20"}, func(c Config) bool { return c.FrameDelay() == 20*time.Millisecond }, false},
		{"Zero size allowed", []string{"-width", "0", "-height", "0"}, func(c Config) bool { return c.Width == 0 && c.Height == 0 }, false},
		{"Switches", []string{"-timing", "-screen", "-fit"}, func(c Config) bool { return c.Instrument && c.Screen && c.Fit }, false},
		{"Negative width", []string{"-width", "-1"}, nil, true},
		{"Negative delay", []string{"-time", "-5"}, nil, true},
		{"Threshold too large", []string{"-threshold", "300"}, nil, true},
		{"Unknown flag", []string{"-bogus"}, nil, true},
		{"Missing config file", []string{"-config", "/does/not/exist.json"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseFlags(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if tt.want != nil && !tt.want(c) {
				t.Errorf("Unexpected config %+v", c)
			}
		})
	}
}

func TestParseFlagsOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `{"width": 30, "height": 20, "seed": 5, "frame_delay_ms": 100}`)

	c, err := ParseFlags([]string{"-config", path, "-height", "9"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Width != 30 {
		t.Errorf("Expected width from file, got %d", c.Width)
	}
	if c.Height != 9 {
		t.Errorf("Expected height from flag, got %d", c.Height)
	}
	if c.Seed != 5 {
		t.Errorf("Expected seed from file, got %d", c.Seed)
	}
	if c.FrameDelay() != 100*time.Millisecond {
		t.Errorf("Expected delay from file, got %v", c.FrameDelay())
	}
	if c.LiveThreshold != DefaultConfig().LiveThreshold {
		t.Errorf("Expected default threshold for keys absent from file, got %d", c.LiveThreshold)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfigFile(t, `{"width": "wide"}`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestResolveSeed(t *testing.T) {
	calls := 0
	draws := []uint64{0, 0, 17}
	draw := func() uint64 {
		v := draws[calls]
		calls++
		return v
	}

	if got := ResolveSeed(42, draw); got != 42 {
		t.Errorf("Expected explicit seed to be kept, got %d", got)
	}
	if calls != 0 {
		t.Errorf("Expected no draws for an explicit seed, got %d", calls)
	}
	if got := ResolveSeed(0, draw); got != 17 {
		t.Errorf("Expected first non-zero draw, got %d", got)
	}
}

func TestThreshold(t *testing.T) {
	c := DefaultConfig()
	c.LiveThreshold = 255
	if c.Threshold() != 255 {
		t.Errorf("Expected 255, got %d", c.Threshold())
	}
}
