package dto

import (
	"github.com/shopspring/decimal"

	"github.com/aviokit/rotable/pkg/domain/entities"
)

// NetworkTopology describes the hub-and-spoke structure of a dataset
type NetworkTopology struct {
	HubCode          string
	SpokeCount       int
	HubCapacity      entities.PerClassAmount
	AvgSpokeCapacity entities.PerClassAmount
	MinSpokeCapacity entities.PerClassAmount
	// CapacityRatio is hub capacity divided by average spoke capacity,
	// per class
	CapacityRatio    entities.PerClassAmount
	AvgFlightsPerDay float64
}

// RouteEconomics captures the cost structure of the flight network
type RouteEconomics struct {
	AvgDistanceKm     float64
	MinDistanceKm     float64
	MaxDistanceKm     float64
	DistanceStdDev    float64
	AvgEconomyPenalty decimal.Decimal
	AvgTransportCost  decimal.Decimal
	// PenaltyCostRatio is AvgEconomyPenalty / AvgTransportCost: above 1.0
	// over-provisioning is cheaper on average than risking an
	// unfulfilled-demand penalty.
	PenaltyCostRatio float64
}

// LoadFactorPolicy is the calibrated economy load-factor operating band.
// Baseline is never mutated after calibration; runtime adjustments are
// tracked separately and added at read time.
type LoadFactorPolicy struct {
	Baseline        float64
	WarnOccupancy   float64
	DangerOccupancy float64
	Min             float64
	Max             float64
}

// DestinationBuffers are the calibrated stocking fractions per
// destination group
type DestinationBuffers struct {
	Hub            float64
	Economy        float64
	PremiumEconomy float64
	// Premium covers the first and business cabins, which share a buffer
	Premium float64
}

// DatasetCharacteristics is the calibration output: everything the engine
// inferred about a dataset from its static reference data. Computed once
// at startup and read-only thereafter.
type DatasetCharacteristics struct {
	Topology           NetworkTopology
	Economics          RouteEconomics
	LoadFactor         LoadFactorPolicy
	DemandEstimates    entities.PerClassAmount
	Buffers            DestinationBuffers
	PurchaseThresholds entities.PerClassAmount
	// Confidence in [0.3, 1.0]; reduced for every fallback the calibrator
	// had to take
	Confidence float64
	Warnings   []string
}
