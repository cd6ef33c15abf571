package dto

import "github.com/shopspring/decimal"

// ClassPenaltySnapshot is the accumulated penalty exposure for one class
type ClassPenaltySnapshot struct {
	UnfulfilledCount int
	UnfulfilledCost  decimal.Decimal
	OverflowCount    int
	OverflowCost     decimal.Decimal
}

// AirportPerformanceSnapshot is the per-airport view exposed to callers
type AirportPerformanceSnapshot struct {
	Code             string
	OverflowCount    int
	UnfulfilledCount int
	LastOverflowDay  int
	RiskScore        float64
}

// ControllerSummary is a point-in-time snapshot of the feedback
// controller's state
type ControllerSummary struct {
	StrategyMode          string
	HotAirports           []string
	RecentAvgRoundPenalty decimal.Decimal
	LoadFactorAdjustment  float64
}
