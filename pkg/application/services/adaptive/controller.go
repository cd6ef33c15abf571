package adaptive

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/aviokit/rotable/pkg/application/dto"
	"github.com/aviokit/rotable/pkg/domain/entities"
	"github.com/aviokit/rotable/pkg/infrastructure/events"
)

const (
	// rolling observation window over penalty history and round totals
	historyWindowHours = 72

	riskIncrease    = 0.1
	riskMax         = 1.0
	riskDecrease    = 0.02
	riskFloor       = 0.1
	riskDecayFactor = 0.99

	riskPenaltyThreshold = 0.7
	riskPenaltyScale     = 0.1
	economyBufferBoost   = 0.05
	bufferMin            = 0.50
	bufferMax            = 0.95

	hotAirportRecencyDays  = 2
	hotAirportMinOverflows = 3

	warmupDays              = 3
	adjustmentStep          = 0.02
	maxCumulativeAdjustment = 0.10
)

// Mode is the controller's global stocking posture. Only ModeBalanced is
// reachable unless mode switching is enabled in the config.
type Mode string

const (
	ModeBalanced     Mode = "balanced"
	ModeConservative Mode = "conservative"
	ModeAggressive   Mode = "aggressive"
)

// Config tunes the feedback controller. The zero value plus DefaultConfig
// reproduces the production behavior.
type Config struct {
	// ModeSwitchingEnabled activates global strategy-mode switching. Off
	// by default: adaptation is per-airport only and the global buffer
	// multiplier stays pinned at 1.0.
	ModeSwitchingEnabled bool
	// HighUnfulfilledRate is the daily economy-unfulfilled cost rate
	// above which the load factor is nudged up
	HighUnfulfilledRate float64
	// LowOverflowRate is the daily overflow cost rate below which an
	// upward nudge is allowed; 5x this rate triggers a downward nudge
	LowOverflowRate float64
}

// DefaultConfig returns the production controller tuning
func DefaultConfig() Config {
	return Config{
		ModeSwitchingEnabled: false,
		HighUnfulfilledRate:  500,
		LowOverflowRate:      100,
	}
}

type airportPerformance struct {
	overflowCount    int
	unfulfilledCount int
	lastOverflowDay  int
	riskScore        float64
}

type classPenaltyStats struct {
	unfulfilledCount int
	unfulfilledCost  decimal.Decimal
	overflowCount    int
	overflowCost     decimal.Decimal
}

type penaltyRecord struct {
	at      entities.SimTime
	penalty events.Penalty
}

type roundTotal struct {
	at    entities.SimTime
	total decimal.Decimal
}

// Controller is the runtime feedback loop: it consumes the penalty
// stream, maintains rolling statistics and per-airport risk scores, and
// emits bounded adjustments to the operating parameters the purchasing
// and loading logic reads each cycle.
//
// One controller serves one simulation run; reset is constructing a new
// instance. Not safe for concurrent use; the driving loop serializes all
// calls, and penalty batches must arrive in non-decreasing (day, hour)
// order.
type Controller struct {
	cfg   Config
	chars *dto.DatasetCharacteristics

	history     []penaltyRecord
	roundTotals []roundTotal
	airports    map[string]*airportPerformance
	classStats  [len(entities.AllClasses)]classPenaltyStats
	mode        Mode

	adjustment    float64
	lastAdjustDay int

	// day-boundary snapshots for trend inspection
	snapshotDay      int
	dayStartEconUnf  decimal.Decimal
	dayStartOverflow decimal.Decimal
	prevDayEconUnf   decimal.Decimal
	prevDayOverflow  decimal.Decimal
}

// NewController creates a feedback controller over the given calibration
// output with the default tuning
func NewController(chars *dto.DatasetCharacteristics) *Controller {
	return NewControllerWithConfig(chars, DefaultConfig())
}

// NewControllerWithConfig creates a feedback controller with custom
// tuning
func NewControllerWithConfig(chars *dto.DatasetCharacteristics, cfg Config) *Controller {
	return &Controller{
		cfg:           cfg,
		chars:         chars,
		airports:      make(map[string]*airportPerformance),
		mode:          ModeBalanced,
		lastAdjustDay: -1,
		snapshotDay:   -1,
	}
}

// RecordPenalties ingests one round's penalties. Events without airport
// or class attribution still count toward round totals but skip the
// per-airport and per-class bookkeeping.
func (c *Controller) RecordPenalties(penalties []events.Penalty, at entities.SimTime) {
	c.rollDayBoundary(at)

	batchTotal := decimal.Zero
	for _, p := range penalties {
		batchTotal = batchTotal.Add(p.Amount)
		c.history = append(c.history, penaltyRecord{at: at, penalty: p})

		if p.AirportKnown {
			c.updateAirport(p, at)
		}
		if p.ClassKnown {
			c.updateClassStats(p)
		}
	}

	c.roundTotals = append(c.roundTotals, roundTotal{at: at, total: batchTotal})
	c.trim(at)

	if c.cfg.ModeSwitchingEnabled {
		c.mode = c.selectMode(at.Day)
	}
}

// rollDayBoundary snapshots the previous day's economy-unfulfilled and
// total-overflow costs at each hour-0 ingest
func (c *Controller) rollDayBoundary(at entities.SimTime) {
	if at.Hour != 0 || at.Day == c.snapshotDay {
		return
	}
	econUnf := c.classStats[int(entities.Economy)].unfulfilledCost
	overflow := c.totalOverflowCost()

	if c.snapshotDay >= 0 {
		c.prevDayEconUnf = econUnf.Sub(c.dayStartEconUnf)
		c.prevDayOverflow = overflow.Sub(c.dayStartOverflow)
	}
	c.dayStartEconUnf = econUnf
	c.dayStartOverflow = overflow
	c.snapshotDay = at.Day
}

func (c *Controller) updateAirport(p events.Penalty, at entities.SimTime) {
	perf, ok := c.airports[p.Airport]
	if !ok {
		perf = &airportPerformance{riskScore: riskFloor, lastOverflowDay: -1}
		c.airports[p.Airport] = perf
	}

	// exponential forgetting: old incidents lose weight even without new
	// events at this airport
	perf.riskScore *= riskDecayFactor

	switch p.Type {
	case events.CapacityExceeded:
		perf.overflowCount++
		perf.lastOverflowDay = at.Day
		perf.riskScore += riskIncrease
		if perf.riskScore > riskMax {
			perf.riskScore = riskMax
		}
	case events.UnfulfilledDemand, events.NegativeInventory:
		// persistent under-delivery suggests the airport is protected
		// too conservatively
		perf.unfulfilledCount++
		perf.riskScore -= riskDecrease
		if perf.riskScore < riskFloor {
			perf.riskScore = riskFloor
		}
	}
}

func (c *Controller) updateClassStats(p events.Penalty) {
	stats := &c.classStats[int(p.Class)]
	switch p.Type {
	case events.CapacityExceeded:
		stats.overflowCount++
		stats.overflowCost = stats.overflowCost.Add(p.Amount)
	case events.UnfulfilledDemand, events.NegativeInventory:
		stats.unfulfilledCount++
		stats.unfulfilledCost = stats.unfulfilledCost.Add(p.Amount)
	}
}

func (c *Controller) trim(at entities.SimTime) {
	cutoff := at.AddHours(-historyWindowHours)

	firstLive := 0
	for firstLive < len(c.history) && !c.history[firstLive].at.After(cutoff) {
		firstLive++
	}
	c.history = c.history[firstLive:]

	firstLive = 0
	for firstLive < len(c.roundTotals) && !c.roundTotals[firstLive].at.After(cutoff) {
		firstLive++
	}
	c.roundTotals = c.roundTotals[firstLive:]
}

// BufferPercent returns the effective destination buffer for an airport
// and class: the calibrated base scaled by the global mode multiplier,
// reduced by the economy boost and by the risk penalty for airports that
// keep overflowing, clamped to the operating band.
func (c *Controller) BufferPercent(airport string, class entities.KitClass, baseBuffer float64) float64 {
	v := baseBuffer * c.globalMultiplier()
	if class == entities.Economy {
		v -= economyBufferBoost
	}
	if perf, ok := c.airports[airport]; ok && perf.riskScore > riskPenaltyThreshold {
		v -= (perf.riskScore - riskPenaltyThreshold) * riskPenaltyScale
	}
	return clamp(v, bufferMin, bufferMax)
}

func (c *Controller) globalMultiplier() float64 {
	if !c.cfg.ModeSwitchingEnabled {
		return 1.0
	}
	switch c.mode {
	case ModeConservative:
		return 0.9
	case ModeAggressive:
		return 1.1
	default:
		return 1.0
	}
}

func (c *Controller) selectMode(day int) Mode {
	elapsed := float64(day)
	if elapsed < 1 {
		elapsed = 1
	}
	unfRate := c.classStats[int(entities.Economy)].unfulfilledCost.InexactFloat64() / elapsed
	ovfRate := c.totalOverflowCost().InexactFloat64() / elapsed

	switch {
	case ovfRate > 5*c.cfg.LowOverflowRate:
		return ModeConservative
	case unfRate > c.cfg.HighUnfulfilledRate:
		return ModeAggressive
	default:
		return ModeBalanced
	}
}

// IsHotAirport reports whether an airport overflowed within the last two
// days AND has accumulated more than three overflow events in total.
// Recency alone is not enough.
func (c *Controller) IsHotAirport(airport string, currentDay int) bool {
	perf, ok := c.airports[airport]
	if !ok || perf.lastOverflowDay < 0 {
		return false
	}
	return currentDay-perf.lastOverflowDay <= hotAirportRecencyDays &&
		perf.overflowCount > hotAirportMinOverflows
}

// SuggestLoadFactorAdjustment runs the once-per-day bounded control step
// and returns the cumulative economy load-factor adjustment. Calling it
// again on the same calendar day returns the already-computed value
// without re-adjusting; nothing moves during the warm-up days.
func (c *Controller) SuggestLoadFactorAdjustment(currentDay int) float64 {
	if currentDay < warmupDays {
		return c.adjustment
	}
	if currentDay == c.lastAdjustDay {
		return c.adjustment
	}

	elapsed := float64(currentDay)
	if elapsed < 1 {
		elapsed = 1
	}
	unfRate := c.classStats[int(entities.Economy)].unfulfilledCost.InexactFloat64() / elapsed
	ovfRate := c.totalOverflowCost().InexactFloat64() / elapsed

	switch {
	case unfRate > c.cfg.HighUnfulfilledRate && ovfRate < c.cfg.LowOverflowRate:
		c.adjustment = clamp(c.adjustment+adjustmentStep, -maxCumulativeAdjustment, maxCumulativeAdjustment)
	case ovfRate > 5*c.cfg.LowOverflowRate:
		c.adjustment = clamp(c.adjustment-adjustmentStep, -maxCumulativeAdjustment, maxCumulativeAdjustment)
	}
	c.lastAdjustDay = currentDay
	return c.adjustment
}

// LoadFactorAdjustment returns the current cumulative adjustment without
// running a control step
func (c *Controller) LoadFactorAdjustment() float64 {
	return c.adjustment
}

// EffectiveLoadFactor is the calibrated baseline plus the cumulative
// adjustment, clamped to the policy band. The stored baseline is never
// mutated; the sum is recomputed at every read.
func (c *Controller) EffectiveLoadFactor() float64 {
	policy := c.chars.LoadFactor
	return clamp(policy.Baseline+c.adjustment, policy.Min, policy.Max)
}

// ClassPenalties returns the accumulated penalty exposure for one class
func (c *Controller) ClassPenalties(class entities.KitClass) dto.ClassPenaltySnapshot {
	stats := c.classStats[int(class)]
	return dto.ClassPenaltySnapshot{
		UnfulfilledCount: stats.unfulfilledCount,
		UnfulfilledCost:  stats.unfulfilledCost,
		OverflowCount:    stats.overflowCount,
		OverflowCost:     stats.overflowCost,
	}
}

// AirportPerformance returns the tracked state for one airport
func (c *Controller) AirportPerformance(airport string) (dto.AirportPerformanceSnapshot, bool) {
	perf, ok := c.airports[airport]
	if !ok {
		return dto.AirportPerformanceSnapshot{}, false
	}
	return dto.AirportPerformanceSnapshot{
		Code:             airport,
		OverflowCount:    perf.overflowCount,
		UnfulfilledCount: perf.unfulfilledCount,
		LastOverflowDay:  perf.lastOverflowDay,
		RiskScore:        perf.riskScore,
	}, true
}

// RecentPenaltyCount returns how many penalty events remain inside the
// rolling observation window
func (c *Controller) RecentPenaltyCount() int {
	return len(c.history)
}

// PreviousDayCosts returns the last completed day's economy-unfulfilled
// and total-overflow costs, as snapshotted at the day boundary
func (c *Controller) PreviousDayCosts() (econUnfulfilled, overflow decimal.Decimal) {
	return c.prevDayEconUnf, c.prevDayOverflow
}

// StrategyMode returns the current global stocking posture
func (c *Controller) StrategyMode() Mode {
	return c.mode
}

// Summary returns a point-in-time snapshot of the controller state
func (c *Controller) Summary(currentDay int) dto.ControllerSummary {
	hot := make([]string, 0)
	for code := range c.airports {
		if c.IsHotAirport(code, currentDay) {
			hot = append(hot, code)
		}
	}
	sort.Strings(hot)

	avgRound := decimal.Zero
	if len(c.roundTotals) > 0 {
		sum := decimal.Zero
		for _, rt := range c.roundTotals {
			sum = sum.Add(rt.total)
		}
		avgRound = sum.Div(decimal.NewFromInt(int64(len(c.roundTotals))))
	}

	return dto.ControllerSummary{
		StrategyMode:          string(c.mode),
		HotAirports:           hot,
		RecentAvgRoundPenalty: avgRound,
		LoadFactorAdjustment:  c.adjustment,
	}
}

func (c *Controller) totalOverflowCost() decimal.Decimal {
	total := decimal.Zero
	for i := range c.classStats {
		total = total.Add(c.classStats[i].overflowCost)
	}
	return total
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
