package services

import (
	"math"

	"github.com/aviokit/rotable/pkg/domain/entities"
)

// RunningStats accumulates count, sum, sum of squares, min and max for a
// stream of observations without retaining the stream itself. Mean and
// variance are derived on demand.
type RunningStats struct {
	Count int
	Sum   float64
	SumSq float64
	Min   float64
	Max   float64
}

// Observe folds one observation into the accumulator
func (s *RunningStats) Observe(x float64) {
	if s.Count == 0 || x < s.Min {
		s.Min = x
	}
	if s.Count == 0 || x > s.Max {
		s.Max = x
	}
	s.Count++
	s.Sum += x
	s.SumSq += x * x
}

// Mean returns the arithmetic mean, or 0 with no observations
func (s *RunningStats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the population variance E[X²]−E[X]², or 0 below two
// observations. Floating-point cancellation can drive the difference
// fractionally below zero; that is clamped.
func (s *RunningStats) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	v := s.SumSq/float64(s.Count) - mean*mean
	if v < 0 {
		return 0
	}
	return v
}

// StdDev returns the population standard deviation
func (s *RunningStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// ClassStats holds one RunningStats accumulator per kit class
type ClassStats struct {
	stats [len(entities.AllClasses)]RunningStats
}

// Observe folds a per-class observation vector into the accumulators
func (c *ClassStats) Observe(amounts entities.PerClassAmount) {
	for i, class := range entities.AllClasses {
		c.stats[i].Observe(amounts.Get(class))
	}
}

// Class returns the accumulator for one kit class
func (c *ClassStats) Class(class entities.KitClass) *RunningStats {
	return &c.stats[int(class)]
}

// Means returns the per-class observation means as one vector
func (c *ClassStats) Means() entities.PerClassAmount {
	var m entities.PerClassAmount
	for i, class := range entities.AllClasses {
		m.Set(class, c.stats[i].Mean())
	}
	return m
}
