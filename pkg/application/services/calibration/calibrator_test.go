package calibration

import (
	"context"
	"errors"
	"testing"

	"github.com/aviokit/rotable/pkg/domain/entities"
	"github.com/aviokit/rotable/pkg/infrastructure/repositories/memory"
	fixtures "github.com/aviokit/rotable/pkg/infrastructure/testing"
)

func TestCalibrator_MissingHub(t *testing.T) {
	ctx := context.Background()

	airportRepo := memory.NewAirportRepository(2)
	if err := airportRepo.AddAirport(entities.Airport{Code: "AAA"}); err != nil {
		t.Fatalf("AddAirport failed: %v", err)
	}
	if err := airportRepo.AddAirport(entities.Airport{Code: "BBB"}); err != nil {
		t.Fatalf("AddAirport failed: %v", err)
	}

	calibrator := NewCalibrator()
	_, err := calibrator.Calibrate(ctx, airportRepo, memory.NewAircraftRepository(0), memory.NewFlightPlanRepository(0))
	if err == nil {
		t.Fatal("Expected calibration to fail without a hub")
	}

	var confErr *entities.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Errorf("Expected ConfigurationError, got %T: %v", err, err)
	}
}

func TestCalibrator_DegenerateDataset(t *testing.T) {
	ctx := context.Background()

	airportRepo, aircraftRepo, planRepo := fixtures.BuildDegenerateNetwork()

	calibrator := NewCalibrator()
	chars, err := calibrator.Calibrate(ctx, airportRepo, aircraftRepo, planRepo)
	if err != nil {
		t.Fatalf("Calibrate failed on degenerate dataset: %v", err)
	}

	if chars.DemandEstimates != FallbackDemandEstimates {
		t.Errorf("Expected fallback demand estimates %+v, got %+v",
			FallbackDemandEstimates, chars.DemandEstimates)
	}
	if chars.Confidence > 0.6 {
		t.Errorf("Confidence = %v, want <= 0.6 after fallback penalties", chars.Confidence)
	}
	if chars.Confidence < 0.3 {
		t.Errorf("Confidence = %v, below the documented floor", chars.Confidence)
	}
	if len(chars.Warnings) == 0 {
		t.Error("Expected at least one warning for a degenerate dataset")
	}
	if chars.Economics.AvgDistanceKm != 1000 {
		t.Errorf("Expected fallback average distance 1000, got %v", chars.Economics.AvgDistanceKm)
	}
}

func TestEconomicOptimalLoadFactor(t *testing.T) {
	testCases := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"zero_ratio", 0, 0.5},
		{"midpoint", 0.5, 0.75},
		{"at_parity", 1.0, 1.0},
		{"above_parity", 3.5, 1.0},
		{"negative_clamped", -2, 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EconomicOptimalLoadFactor(tc.ratio); got != tc.want {
				t.Errorf("EconomicOptimalLoadFactor(%v) = %v, want %v", tc.ratio, got, tc.want)
			}
		})
	}
}

func TestCalibrator_OutputsWithinBounds(t *testing.T) {
	ctx := context.Background()

	airportRepo, aircraftRepo, planRepo := fixtures.BuildStarNetwork(fixtures.DefaultStarNetwork())

	calibrator := NewCalibrator()
	chars, err := calibrator.Calibrate(ctx, airportRepo, aircraftRepo, planRepo)
	if err != nil {
		t.Fatalf("Calibrate failed: %v", err)
	}

	lf := chars.LoadFactor
	if lf.Baseline < lf.Min || lf.Baseline > lf.Max {
		t.Errorf("Baseline load factor %v outside [%v, %v]", lf.Baseline, lf.Min, lf.Max)
	}
	if lf.WarnOccupancy >= lf.DangerOccupancy {
		t.Errorf("Warn occupancy %v should be below danger occupancy %v", lf.WarnOccupancy, lf.DangerOccupancy)
	}

	buffers := chars.Buffers
	bufferChecks := []struct {
		name   string
		value  float64
		lo, hi float64
	}{
		{"hub", buffers.Hub, 0.70, 0.90},
		{"economy", buffers.Economy, 0.65, 0.80},
		{"premium_economy", buffers.PremiumEconomy, 0.60, 0.80},
		{"premium", buffers.Premium, 0.55, 0.75},
	}
	for _, check := range bufferChecks {
		if check.value < check.lo || check.value > check.hi {
			t.Errorf("Buffer %s = %v outside [%v, %v]", check.name, check.value, check.lo, check.hi)
		}
	}

	for _, class := range entities.AllClasses {
		threshold := chars.PurchaseThresholds.Get(class)
		if threshold < 0.05 || threshold > 0.90 {
			t.Errorf("Purchase threshold for %s = %v outside [0.05, 0.90]", class, threshold)
		}
		estimate := chars.DemandEstimates.Get(class)
		if estimate <= 0 {
			t.Errorf("Demand estimate for %s should be positive, got %v", class, estimate)
		}
	}

	if chars.Confidence != 1.0 {
		t.Errorf("Healthy dataset should calibrate at full confidence, got %v (warnings: %v)",
			chars.Confidence, chars.Warnings)
	}
	if chars.Topology.HubCode != "HUB" {
		t.Errorf("Expected hub HUB, got %s", chars.Topology.HubCode)
	}
	if chars.Topology.SpokeCount != 10 {
		t.Errorf("Expected 10 spokes, got %d", chars.Topology.SpokeCount)
	}
}

func TestCalibrator_Deterministic(t *testing.T) {
	ctx := context.Background()
	airportRepo, aircraftRepo, planRepo := fixtures.BuildStarNetwork(fixtures.DefaultStarNetwork())

	calibrator := NewCalibrator()
	first, err := calibrator.Calibrate(ctx, airportRepo, aircraftRepo, planRepo)
	if err != nil {
		t.Fatalf("Calibrate failed: %v", err)
	}
	second, err := calibrator.Calibrate(ctx, airportRepo, aircraftRepo, planRepo)
	if err != nil {
		t.Fatalf("Calibrate failed: %v", err)
	}

	if first.LoadFactor != second.LoadFactor {
		t.Error("Load factor policy differs between identical calibration passes")
	}
	if first.DemandEstimates != second.DemandEstimates {
		t.Error("Demand estimates differ between identical calibration passes")
	}
	if first.Economics.PenaltyCostRatio != second.Economics.PenaltyCostRatio {
		t.Error("Penalty cost ratio differs between identical calibration passes")
	}
}

func TestCalibrator_CapacityRatio(t *testing.T) {
	ctx := context.Background()
	airportRepo, aircraftRepo, planRepo := fixtures.BuildStarNetwork(fixtures.DefaultStarNetwork())

	calibrator := NewCalibrator()
	chars, err := calibrator.Calibrate(ctx, airportRepo, aircraftRepo, planRepo)
	if err != nil {
		t.Fatalf("Calibrate failed: %v", err)
	}

	// Fixture spokes all have economy capacity 1800 against a 20000 hub
	wantRatio := 20000.0 / 1800.0
	got := chars.Topology.CapacityRatio.Economy
	if got < wantRatio-1e-9 || got > wantRatio+1e-9 {
		t.Errorf("Economy capacity ratio = %v, want %v", got, wantRatio)
	}
}
