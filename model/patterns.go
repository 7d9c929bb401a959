package model

import "github.com/pkg/errors"

// AddGlider adds a glider pattern at the specified position
func (b *Board) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			b.Set(startX+x, startY+y, cell)
		}
	}
}

// AddOscillator adds a horizontal blinker
func (b *Board) AddOscillator(startX, startY int) {
	b.Set(startX, startY, true)
	b.Set(startX+1, startY, true)
	b.Set(startX+2, startY, true)
}

// AddBlock adds a 2x2 still life
func (b *Board) AddBlock(startX, startY int) {
	b.Set(startX, startY, true)
	b.Set(startX+1, startY, true)
	b.Set(startX, startY+1, true)
	b.Set(startX+1, startY+1, true)
}

// Pattern names accepted by ApplyPattern
const (
	PatternRandom  = "random"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
	PatternDemo    = "demo"
)

// ApplyPattern places a fixed starting pattern near the top-left of the
// interior. PatternDemo spreads gliders and oscillators over larger boards.
// PatternRandom is handled by Randomize and is a no-op here.
func (b *Board) ApplyPattern(name string) error {
	switch name {
	case PatternRandom, "":
	case PatternGlider:
		b.AddGlider(1, 1)
	case PatternBlinker:
		b.AddOscillator(1, 1)
	case PatternBlock:
		b.AddBlock(1, 1)
	case PatternDemo:
		b.AddGlider(1, 1)
		if b.width >= 20 && b.height >= 15 {
			b.AddGlider(b.width-8, 5)
		}
		b.AddOscillator(b.width/4, b.height/4)
		if b.width >= 30 {
			b.AddOscillator(3*b.width/4, 3*b.height/4)
		}
		b.AddBlock(b.width/2, b.height-4)
	default:
		return errors.Errorf("[ApplyPattern] unknown pattern: %q", name)
	}
	return nil
}
