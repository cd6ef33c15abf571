package calibration

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/aviokit/rotable/pkg/application/dto"
	"github.com/aviokit/rotable/pkg/domain/entities"
	"github.com/aviokit/rotable/pkg/domain/repositories"
	"github.com/aviokit/rotable/pkg/domain/services"
)

// Domain scoring constants. The unfulfilled-demand penalty grows linearly
// with route distance; transport cost combines hub loading, fuel burn per
// kit, and destination processing.
const (
	economyPenaltyPerKm = 0.30
	kitWeightKg         = 1.5
	fallbackDistanceKm  = 1000.0
	fallbackCostPerKgKm = 0.005

	assumedLoadFactor = 0.80

	loadFactorMin = 0.50
	loadFactorMax = 0.90

	// Occupancy threshold presets; the conservative pair applies when the
	// spokes hold fewer than shortBufferDays of estimated demand.
	shortBufferDays       = 2.0
	warnOccupancyShort    = 0.70
	dangerOccupancyShort  = 0.85
	warnOccupancyNormal   = 0.80
	dangerOccupancyNormal = 0.92

	purchaseSafetyMultiplier = 1.5
	purchaseThresholdMin     = 0.05
	purchaseThresholdMax     = 0.90

	confidenceFloor = 0.3
	minUsualSpokes  = 5
	maxUsualSpokes  = 100
	smallPlanSample = 50
	fallbackPenalty = 0.2
	variancePenalty = 0.1
)

// FallbackDemandEstimates is used when a dataset carries no aircraft data
var FallbackDemandEstimates = entities.PerClassAmount{
	First:          10,
	Business:       50,
	PremiumEconomy: 25,
	Economy:        200,
}

// Sane per-class bands for the seat-derived demand estimate
var (
	demandEstimateMin = entities.PerClassAmount{First: 5, Business: 20, PremiumEconomy: 10, Economy: 100}
	demandEstimateMax = entities.PerClassAmount{First: 50, Business: 150, PremiumEconomy: 100, Economy: 400}
)

// leadTimeHours is the per-class purchase lead time
var leadTimeHours = map[entities.KitClass]float64{
	entities.First:          48,
	entities.Business:       36,
	entities.PremiumEconomy: 24,
	entities.Economy:        12,
}

// Calibrator performs the one-shot analysis of static reference data that
// seeds the rest of the engine. Calibrate is a deterministic, pure
// function of its inputs: no I/O, no randomness.
type Calibrator struct{}

// NewCalibrator creates a new Calibrator
func NewCalibrator() *Calibrator {
	return &Calibrator{}
}

// Calibrate analyzes airports, aircraft and flight plans and derives the
// DatasetCharacteristics for this network. The only hard failure is a
// dataset with no hub airport; every other degenerate input falls back to
// fixed defaults with a confidence penalty and a warning.
func (c *Calibrator) Calibrate(
	ctx context.Context,
	airportRepo repositories.AirportRepository,
	aircraftRepo repositories.AircraftRepository,
	planRepo repositories.FlightPlanRepository,
) (*dto.DatasetCharacteristics, error) {
	plans, err := planRepo.GetAllPlans()
	if err != nil {
		return nil, fmt.Errorf("failed to read flight plans: %w", err)
	}
	aircraft, err := aircraftRepo.GetAllAircraft()
	if err != nil {
		return nil, fmt.Errorf("failed to read aircraft: %w", err)
	}

	chars := &dto.DatasetCharacteristics{Confidence: 1.0}

	// Step 1: network topology. Missing hub aborts the pass; nothing
	// partial is returned.
	topology, err := c.analyzeTopology(airportRepo, plans)
	if err != nil {
		return nil, err
	}
	chars.Topology = *topology

	// Step 2: route economics
	hub, err := airportRepo.GetHub()
	if err != nil {
		return nil, err
	}
	spokes, err := airportRepo.GetSpokes()
	if err != nil {
		return nil, fmt.Errorf("failed to read spokes: %w", err)
	}
	chars.Economics = c.analyzeEconomics(hub, spokes, aircraft, plans, chars)

	// Step 3: per-class demand estimates (needed by the load-factor and
	// threshold derivations below)
	chars.DemandEstimates = c.estimateDemand(aircraft, chars)

	// Step 4: economy load-factor policy
	chars.LoadFactor = c.deriveLoadFactorPolicy(chars)

	// Step 5: destination buffers
	chars.Buffers = c.deriveBuffers(chars.Topology.CapacityRatio)

	// Step 6: purchase thresholds
	chars.PurchaseThresholds = c.deriveThresholds(chars)

	// Step 7: confidence assessment over the whole dataset
	c.assessConfidence(chars, len(plans), len(aircraft))

	return chars, nil
}

// analyzeTopology locates the hub and measures the spoke population
func (c *Calibrator) analyzeTopology(airportRepo repositories.AirportRepository, plans []*entities.FlightPlan) (*dto.NetworkTopology, error) {
	hub, err := airportRepo.GetHub()
	if err != nil {
		return nil, err
	}
	spokes, err := airportRepo.GetSpokes()
	if err != nil {
		return nil, fmt.Errorf("failed to read spokes: %w", err)
	}

	topology := &dto.NetworkTopology{
		HubCode:     hub.Code,
		SpokeCount:  len(spokes),
		HubCapacity: hub.Capacity,
	}

	var avg, min entities.PerClassAmount
	for i, spoke := range spokes {
		for _, class := range entities.AllClasses {
			cap := spoke.Capacity.Get(class)
			avg.Add(class, cap)
			if i == 0 || cap < min.Get(class) {
				min.Set(class, cap)
			}
		}
	}
	if len(spokes) > 0 {
		avg = avg.Scale(1 / float64(len(spokes)))
	}
	topology.AvgSpokeCapacity = avg
	topology.MinSpokeCapacity = min

	for _, class := range entities.AllClasses {
		spokeCap := avg.Get(class)
		if spokeCap <= 0 {
			// degenerate spoke population; a neutral ratio keeps every
			// downstream formula in range
			topology.CapacityRatio.Set(class, 1.0)
			continue
		}
		topology.CapacityRatio.Set(class, hub.Capacity.Get(class)/spokeCap)
	}

	flightsPerWeek := 0.0
	for _, plan := range plans {
		flightsPerWeek += float64(plan.DaysPerWeek())
	}
	topology.AvgFlightsPerDay = flightsPerWeek / 7

	return topology, nil
}

// analyzeEconomics derives the distance profile and the
// penalty-versus-transport cost balance of the network
func (c *Calibrator) analyzeEconomics(
	hub *entities.Airport,
	spokes []*entities.Airport,
	aircraft []*entities.Aircraft,
	plans []*entities.FlightPlan,
	chars *dto.DatasetCharacteristics,
) dto.RouteEconomics {
	var distances services.RunningStats
	for _, plan := range plans {
		distances.Observe(plan.DistanceKm)
	}

	econ := dto.RouteEconomics{
		AvgDistanceKm:  distances.Mean(),
		MinDistanceKm:  distances.Min,
		MaxDistanceKm:  distances.Max,
		DistanceStdDev: distances.StdDev(),
	}
	if distances.Count == 0 {
		econ.AvgDistanceKm = fallbackDistanceKm
		econ.MinDistanceKm = fallbackDistanceKm
		econ.MaxDistanceKm = fallbackDistanceKm
		econ.DistanceStdDev = 0
		c.warn(chars, "no flight plans in dataset; using default distance profile")
	}

	econ.AvgEconomyPenalty = decimal.NewFromFloat(econ.AvgDistanceKm * economyPenaltyPerKm)

	costPerKgKm := decimal.NewFromFloat(fallbackCostPerKgKm)
	if len(aircraft) > 0 {
		sum := decimal.Zero
		for _, a := range aircraft {
			sum = sum.Add(a.CostPerKgKm)
		}
		costPerKgKm = sum.Div(decimal.NewFromInt(int64(len(aircraft))))
	}

	processing := decimal.Zero
	if len(spokes) > 0 {
		for _, spoke := range spokes {
			processing = processing.Add(spoke.LoadingCost.Get(entities.Economy))
		}
		processing = processing.Div(decimal.NewFromInt(int64(len(spokes))))
	}

	fuel := decimal.NewFromFloat(econ.AvgDistanceKm * kitWeightKg).Mul(costPerKgKm)
	econ.AvgTransportCost = hub.LoadingCost.Get(entities.Economy).Add(fuel).Add(processing)

	if econ.AvgTransportCost.IsPositive() {
		econ.PenaltyCostRatio = econ.AvgEconomyPenalty.Div(econ.AvgTransportCost).InexactFloat64()
	} else {
		// zero-cost dataset; treat over-provisioning as always worthwhile
		econ.PenaltyCostRatio = 1.0
	}

	return econ
}

// estimateDemand derives per-flight demand estimates from average seat
// counts at the assumed load factor
func (c *Calibrator) estimateDemand(aircraft []*entities.Aircraft, chars *dto.DatasetCharacteristics) entities.PerClassAmount {
	if len(aircraft) == 0 {
		c.warn(chars, "no aircraft in dataset; using fallback demand estimates")
		return FallbackDemandEstimates
	}

	var seats entities.PerClassAmount
	for _, a := range aircraft {
		seats = seats.Plus(a.Seats)
	}
	seats = seats.Scale(1 / float64(len(aircraft)))

	estimates := seats.Scale(assumedLoadFactor)
	for _, class := range entities.AllClasses {
		estimates.Set(class, clamp(estimates.Get(class), demandEstimateMin.Get(class), demandEstimateMax.Get(class)))
	}
	return estimates
}

// EconomicOptimalLoadFactor is the piecewise-linear economic component of
// the load-factor policy: 1.0 once the penalty/cost ratio reaches 1.0,
// otherwise interpolated between 0.5 and 1.0.
func EconomicOptimalLoadFactor(penaltyCostRatio float64) float64 {
	if penaltyCostRatio >= 1.0 {
		return 1.0
	}
	if penaltyCostRatio < 0 {
		penaltyCostRatio = 0
	}
	return 0.5 + 0.5*penaltyCostRatio
}

// deriveLoadFactorPolicy blends the economic optimum with a capacity
// pressure adjustment and selects occupancy thresholds
func (c *Calibrator) deriveLoadFactorPolicy(chars *dto.DatasetCharacteristics) dto.LoadFactorPolicy {
	econOpt := EconomicOptimalLoadFactor(chars.Economics.PenaltyCostRatio)

	// a hub far larger than its spokes means tight destinations; back the
	// load factor off, capped
	capAdjust := clamp((chars.Topology.CapacityRatio.Economy-8)*0.01, 0, 0.10)

	baseline := round2(clamp(econOpt-capAdjust, loadFactorMin, loadFactorMax))

	policy := dto.LoadFactorPolicy{
		Baseline: baseline,
		Min:      loadFactorMin,
		Max:      loadFactorMax,
	}

	dailyDemand := chars.DemandEstimates.Economy * chars.Topology.AvgFlightsPerDay
	if dailyDemand < 1 {
		dailyDemand = 1
	}
	daysOfBuffer := chars.Topology.AvgSpokeCapacity.Economy / dailyDemand

	if daysOfBuffer < shortBufferDays {
		policy.WarnOccupancy = warnOccupancyShort
		policy.DangerOccupancy = dangerOccupancyShort
	} else {
		policy.WarnOccupancy = warnOccupancyNormal
		policy.DangerOccupancy = dangerOccupancyNormal
	}

	return policy
}

// deriveBuffers computes the destination stocking fractions as clamped
// linear functions of the relevant capacity ratio
func (c *Calibrator) deriveBuffers(ratio entities.PerClassAmount) dto.DestinationBuffers {
	premiumRatio := (ratio.First + ratio.Business) / 2
	return dto.DestinationBuffers{
		Hub:            clamp(0.70+0.010*ratio.Economy, 0.70, 0.90),
		Economy:        clamp(0.65+0.005*ratio.Economy, 0.65, 0.80),
		PremiumEconomy: clamp(0.60+0.010*ratio.PremiumEconomy, 0.60, 0.80),
		Premium:        clamp(0.55+0.010*premiumRatio, 0.55, 0.75),
	}
}

// deriveThresholds computes the per-class purchase trigger fractions from
// estimated hourly demand, lead time and hub capacity
func (c *Calibrator) deriveThresholds(chars *dto.DatasetCharacteristics) entities.PerClassAmount {
	var thresholds entities.PerClassAmount
	for _, class := range entities.AllClasses {
		hubCap := chars.Topology.HubCapacity.Get(class)
		if hubCap <= 0 {
			thresholds.Set(class, purchaseThresholdMax)
			continue
		}
		hourly := chars.DemandEstimates.Get(class) * chars.Topology.AvgFlightsPerDay / 24
		pipeline := hourly * leadTimeHours[class] * purchaseSafetyMultiplier
		thresholds.Set(class, clamp(pipeline/hubCap, purchaseThresholdMin, purchaseThresholdMax))
	}
	return thresholds
}

// assessConfidence applies the fixed decrements for every anomaly the
// calibrator had to work around
func (c *Calibrator) assessConfidence(chars *dto.DatasetCharacteristics, planCount, aircraftCount int) {
	spokes := chars.Topology.SpokeCount
	if spokes < minUsualSpokes || spokes > maxUsualSpokes {
		c.warn(chars, fmt.Sprintf("unusual spoke count: %d", spokes))
		chars.Confidence -= fallbackPenalty
	}
	if chars.Economics.DistanceStdDev > chars.Economics.AvgDistanceKm {
		c.warn(chars, "high distance variance across flight plans")
		chars.Confidence -= variancePenalty
	}
	if aircraftCount == 0 {
		chars.Confidence -= fallbackPenalty
	}
	if planCount < smallPlanSample {
		c.warn(chars, fmt.Sprintf("small flight plan sample: %d", planCount))
		chars.Confidence -= fallbackPenalty
	}
	if chars.Confidence < confidenceFloor {
		chars.Confidence = confidenceFloor
	}
}

func (c *Calibrator) warn(chars *dto.DatasetCharacteristics, msg string) {
	chars.Warnings = append(chars.Warnings, msg)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
