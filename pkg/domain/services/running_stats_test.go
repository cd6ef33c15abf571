package services

import (
	"math"
	"testing"

	"github.com/aviokit/rotable/pkg/domain/entities"
)

func TestRunningStats_Empty(t *testing.T) {
	var s RunningStats

	if s.Mean() != 0 {
		t.Errorf("Empty mean = %v, want 0", s.Mean())
	}
	if s.Variance() != 0 {
		t.Errorf("Empty variance = %v, want 0", s.Variance())
	}
}

func TestRunningStats_SingleObservation(t *testing.T) {
	var s RunningStats
	s.Observe(42)

	if s.Mean() != 42 {
		t.Errorf("Mean = %v, want 42", s.Mean())
	}
	// Variance is undefined below two observations
	if s.Variance() != 0 {
		t.Errorf("Variance = %v, want 0", s.Variance())
	}
	if s.Min != 42 || s.Max != 42 {
		t.Errorf("Min/Max = %v/%v, want 42/42", s.Min, s.Max)
	}
}

func TestRunningStats_PopulationVariance(t *testing.T) {
	testCases := []struct {
		name     string
		values   []float64
		wantMean float64
		wantVar  float64
	}{
		{"constant", []float64{5, 5, 5, 5}, 5, 0},
		{"two_values", []float64{2, 4}, 3, 1},
		{"spread", []float64{1, 2, 3, 4, 5}, 3, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var s RunningStats
			for _, v := range tc.values {
				s.Observe(v)
			}
			if math.Abs(s.Mean()-tc.wantMean) > 1e-9 {
				t.Errorf("Mean = %v, want %v", s.Mean(), tc.wantMean)
			}
			if math.Abs(s.Variance()-tc.wantVar) > 1e-9 {
				t.Errorf("Variance = %v, want %v", s.Variance(), tc.wantVar)
			}
			if math.Abs(s.StdDev()-math.Sqrt(tc.wantVar)) > 1e-9 {
				t.Errorf("StdDev = %v, want %v", s.StdDev(), math.Sqrt(tc.wantVar))
			}
		})
	}
}

func TestRunningStats_MinMax(t *testing.T) {
	var s RunningStats
	for _, v := range []float64{3, -1, 7, 0} {
		s.Observe(v)
	}
	if s.Min != -1 || s.Max != 7 {
		t.Errorf("Min/Max = %v/%v, want -1/7", s.Min, s.Max)
	}
}

func TestClassStats_Observe(t *testing.T) {
	var cs ClassStats
	cs.Observe(entities.PerClassAmount{First: 1, Business: 10, PremiumEconomy: 20, Economy: 100})
	cs.Observe(entities.PerClassAmount{First: 3, Business: 20, PremiumEconomy: 40, Economy: 300})

	if got := cs.Class(entities.Economy).Mean(); got != 200 {
		t.Errorf("Economy mean = %v, want 200", got)
	}
	if got := cs.Class(entities.First).Count; got != 2 {
		t.Errorf("First count = %d, want 2", got)
	}

	means := cs.Means()
	want := entities.PerClassAmount{First: 2, Business: 15, PremiumEconomy: 30, Economy: 200}
	if means != want {
		t.Errorf("Means = %+v, want %+v", means, want)
	}
}
