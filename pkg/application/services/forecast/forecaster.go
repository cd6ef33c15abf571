package forecast

import (
	"math"

	"github.com/aviokit/rotable/pkg/application/dto"
	"github.com/aviokit/rotable/pkg/application/services/calibration"
	"github.com/aviokit/rotable/pkg/domain/entities"
	"github.com/aviokit/rotable/pkg/domain/repositories"
	"github.com/aviokit/rotable/pkg/domain/services"
)

const (
	// observationWindow bounds the per-class recent-demand window used
	// for the dynamic per-flight estimate
	observationWindow = 100

	// safetyBuffer deliberately over-provisions observed demand: some
	// overflow risk is cheaper than unfulfilled-demand penalties
	safetyBuffer = 1.3

	// dynamicEstimateMinObs gates the window average; below it the
	// calibrated seed estimate is used per flight
	dynamicEstimateMinObs = 5

	// blendMinObs gates the blended estimate update
	blendMinObs    = 20
	observedWeight = 0.7

	// recalibration trigger: enough observations and a large deviation
	// from the calibrated estimate
	recalibrateMinObs    = 50
	recalibrateDeviation = 0.25

	fallbackDistanceKm = 1000.0
)

// Forecaster predicts per-class kit demand at an airport over a future
// horizon, combining exact counts from already-revealed flight events
// with extrapolation from the recurring flight plan. Its per-flight
// estimate adapts as real passenger counts are observed.
//
// Not safe for concurrent use; the driving loop serializes all calls.
type Forecaster struct {
	planRepo repositories.FlightPlanRepository
	chars    *dto.DatasetCharacteristics

	windows    [len(entities.AllClasses)][]float64
	aggregates services.ClassStats

	windowMeans      entities.PerClassAmount
	windowMeansValid bool
}

// NewForecaster creates a Forecaster over the given flight schedule.
// Characteristics may be attached later via SetCharacteristics; until
// then the fixed fallback demand estimates seed every prediction.
func NewForecaster(planRepo repositories.FlightPlanRepository) *Forecaster {
	return &Forecaster{planRepo: planRepo}
}

// SetCharacteristics attaches the calibration output. The forecaster
// only ever reads it.
func (f *Forecaster) SetCharacteristics(chars *dto.DatasetCharacteristics) {
	f.chars = chars
}

// RecordObservedDemand folds one flight's actual per-class passenger
// counts into the bounded window and the unbounded aggregates.
func (f *Forecaster) RecordObservedDemand(passengers entities.PerClassAmount) {
	for i, class := range entities.AllClasses {
		window := append(f.windows[i], passengers.Get(class))
		if len(window) > observationWindow {
			window = window[len(window)-observationWindow:]
		}
		f.windows[i] = window
	}
	f.aggregates.Observe(passengers)
	f.windowMeansValid = false
}

// ObservationCount returns how many demand observations have been
// recorded for a class
func (f *Forecaster) ObservationCount(class entities.KitClass) int {
	return f.aggregates.Class(class).Count
}

// ObservedMean returns the full-run mean observed demand for a class
func (f *Forecaster) ObservedMean(class entities.KitClass) float64 {
	return f.aggregates.Class(class).Mean()
}

// ObservedVariance returns the full-run population variance of observed
// demand for a class; 0 below two observations.
func (f *Forecaster) ObservedVariance(class entities.KitClass) float64 {
	return f.aggregates.Class(class).Variance()
}

// ShouldRecalibrate reports whether observed demand has drifted far
// enough from the calibrated estimates to justify a recalibration pass:
// at least recalibrateMinObs observations and any class more than
// ±recalibrateDeviation away from its seed.
func (f *Forecaster) ShouldRecalibrate() bool {
	seeds := f.seedEstimates()
	for _, class := range entities.AllClasses {
		stats := f.aggregates.Class(class)
		if stats.Count < recalibrateMinObs {
			continue
		}
		seed := seeds.Get(class)
		if seed <= 0 {
			continue
		}
		deviation := math.Abs(stats.Mean()-seed) / seed
		if deviation > recalibrateDeviation {
			return true
		}
	}
	return false
}

// UpdatedDemandEstimates returns the current best per-flight demand
// estimates. Below blendMinObs observations the seed estimates pass
// through unchanged; beyond that the observed mean (with the safety
// buffer applied) is blended 70/30 with the seed and rounded up to whole
// kits.
func (f *Forecaster) UpdatedDemandEstimates() entities.PerClassAmount {
	seeds := f.seedEstimates()
	var updated entities.PerClassAmount
	for _, class := range entities.AllClasses {
		stats := f.aggregates.Class(class)
		seed := seeds.Get(class)
		if stats.Count < blendMinObs {
			updated.Set(class, seed)
			continue
		}
		blended := observedWeight*stats.Mean()*safetyBuffer + (1-observedWeight)*seed
		updated.Set(class, math.Ceil(blended))
	}
	return updated
}

// OutboundDemand forecasts kit demand for flights departing the airport
// within the half-open window (now, now+horizonHours]. Known flight
// events contribute their exact passenger counts; every other scheduled
// departure contributes the dynamic per-flight estimate. A scheduled
// occurrence already covered by a known event is skipped so revealed
// flights replace their template rather than adding to it.
func (f *Forecaster) OutboundDemand(airport string, now entities.SimTime, horizonHours int, class entities.KitClass, known map[string]*entities.FlightEvent) float64 {
	end := now.AddHours(horizonHours)
	total := 0.0
	covered := make(map[occurrenceKey]bool)

	for _, event := range known {
		if event.Origin != airport {
			continue
		}
		if event.Departure.After(now) && !event.Departure.After(end) {
			total += event.Passengers.Get(class)
			covered[occurrenceKey{event.Destination, event.Departure.Day, event.Departure.Hour}] = true
		}
	}

	plans, err := f.planRepo.PlansFrom(airport)
	if err != nil {
		return total
	}
	for h := 1; h <= horizonHours; h++ {
		at := now.AddHours(h)
		for _, plan := range plans {
			if plan.DepartureHour != at.Hour || !plan.ActiveOn(at.Weekday()) {
				continue
			}
			if covered[occurrenceKey{plan.Destination, at.Day, at.Hour}] {
				continue
			}
			total += f.dynamicEstimate(class)
		}
	}
	return total
}

// InboundDemand forecasts kit demand from flights arriving at the
// airport within (now, now+horizonHours]. Kits are consumed by arriving
// passengers at spokes, so this is a separate code path from
// OutboundDemand, matching arrivals against the destination side of the
// schedule; for overnight plans the weekday mask is checked against the
// departure day.
func (f *Forecaster) InboundDemand(airport string, now entities.SimTime, horizonHours int, class entities.KitClass, known map[string]*entities.FlightEvent) float64 {
	end := now.AddHours(horizonHours)
	total := 0.0
	covered := make(map[occurrenceKey]bool)

	for _, event := range known {
		if event.Destination != airport {
			continue
		}
		if event.Arrival.After(now) && !event.Arrival.After(end) {
			total += event.Passengers.Get(class)
			covered[occurrenceKey{event.Origin, event.Arrival.Day, event.Arrival.Hour}] = true
		}
	}

	plans, err := f.planRepo.PlansTo(airport)
	if err != nil {
		return total
	}
	for h := 1; h <= horizonHours; h++ {
		at := now.AddHours(h)
		for _, plan := range plans {
			if plan.ArrivalHour != at.Hour {
				continue
			}
			departureDay := at.Day
			if plan.OvernightArrival() {
				departureDay--
			}
			if !plan.ActiveOn((entities.SimTime{Day: departureDay}).Weekday()) {
				continue
			}
			if covered[occurrenceKey{plan.Origin, at.Day, at.Hour}] {
				continue
			}
			total += f.dynamicEstimate(class)
		}
	}
	return total
}

// TotalDemand returns the combined outbound and inbound forecast for all
// four classes at once
func (f *Forecaster) TotalDemand(airport string, now entities.SimTime, horizonHours int, known map[string]*entities.FlightEvent) entities.PerClassAmount {
	var demand entities.PerClassAmount
	for _, class := range entities.AllClasses {
		demand.Set(class,
			f.OutboundDemand(airport, now, horizonHours, class, known)+
				f.InboundDemand(airport, now, horizonHours, class, known))
	}
	return demand
}

// ScheduledDemand returns the forecast for all four classes using only
// the recurring flight plan, ignoring revealed events
func (f *Forecaster) ScheduledDemand(airport string, now entities.SimTime, horizonHours int) entities.PerClassAmount {
	var demand entities.PerClassAmount
	for _, class := range entities.AllClasses {
		demand.Set(class,
			f.OutboundDemand(airport, now, horizonHours, class, nil)+
				f.InboundDemand(airport, now, horizonHours, class, nil))
	}
	return demand
}

// FlightDistance returns the scheduled distance between two airports,
// falling back to the network average, then to the fixed default
func (f *Forecaster) FlightDistance(origin, destination string) float64 {
	if distance, ok := f.planRepo.Distance(origin, destination); ok {
		return distance
	}
	return f.AverageFlightDistance()
}

// AverageFlightDistance returns the mean scheduled distance, or the
// fixed default when no plans exist
func (f *Forecaster) AverageFlightDistance() float64 {
	if avg, ok := f.planRepo.AverageDistance(); ok {
		return avg
	}
	return fallbackDistanceKm
}

// dynamicEstimate is the per-flight contribution of one scheduled
// departure: the bounded-window average with the safety buffer once
// enough observations exist, the calibrated seed before that.
func (f *Forecaster) dynamicEstimate(class entities.KitClass) float64 {
	window := f.windows[int(class)]
	if len(window) < dynamicEstimateMinObs {
		return f.seedEstimates().Get(class)
	}
	return f.windowMean(class) * safetyBuffer
}

func (f *Forecaster) windowMean(class entities.KitClass) float64 {
	if !f.windowMeansValid {
		for i, cl := range entities.AllClasses {
			window := f.windows[i]
			if len(window) == 0 {
				f.windowMeans.Set(cl, 0)
				continue
			}
			sum := 0.0
			for _, v := range window {
				sum += v
			}
			f.windowMeans.Set(cl, sum/float64(len(window)))
		}
		f.windowMeansValid = true
	}
	return f.windowMeans.Get(class)
}

func (f *Forecaster) seedEstimates() entities.PerClassAmount {
	if f.chars != nil {
		return f.chars.DemandEstimates
	}
	return calibration.FallbackDemandEstimates
}

// occurrenceKey identifies one concrete flight occurrence so that a
// revealed event suppresses its schedule-template counterpart
type occurrenceKey struct {
	counterpart string
	day         int
	hour        int
}
