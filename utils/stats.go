package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	StartTime            time.Time
	LastRenderTime       time.Duration
	AverageRenderTime    time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation. duration is the wall time since the
// previous generation, renderTime the time spent producing the text block.
func (s *Stats) Update(generation uint64, population int, duration, renderTime time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	s.LastRenderTime = renderTime
	if s.AverageRenderTime == 0 {
		s.AverageRenderTime = renderTime
	} else {
		s.AverageRenderTime = (s.AverageRenderTime*9 + renderTime) / 10
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
