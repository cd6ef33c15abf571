// Command rotable runs the kit-planning engine against a synthetic
// hub-and-spoke network: one calibration pass, then a replay of simulated
// days that exercises the forecaster and the feedback controller the way
// the live driver loop would.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/aviokit/rotable/pkg/application/services/adaptive"
	"github.com/aviokit/rotable/pkg/application/services/calibration"
	"github.com/aviokit/rotable/pkg/application/services/forecast"
	"github.com/aviokit/rotable/pkg/domain/entities"
	"github.com/aviokit/rotable/pkg/infrastructure/events"
	csvrepo "github.com/aviokit/rotable/pkg/infrastructure/repositories/csv"
	"github.com/aviokit/rotable/pkg/infrastructure/repositories/memory"
)

func main() {
	var (
		dataDir = flag.String("data", "", "Directory with airports.csv, aircraft.csv and flight_plans.csv (empty runs the built-in demo network)")
		spokes  = flag.Int("spokes", 12, "Number of spoke airports in the demo network")
		days    = flag.Int("days", 7, "Simulated days to replay")
		verbose = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if err := run(log, *dataDir, *spokes, *days); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func run(log zerolog.Logger, dataDir string, spokes, days int) error {
	var (
		airportRepo  *memory.AirportRepository
		aircraftRepo *memory.AircraftRepository
		planRepo     *memory.FlightPlanRepository
	)
	if dataDir != "" {
		var err error
		airportRepo, aircraftRepo, planRepo, err = loadNetwork(dataDir)
		if err != nil {
			return err
		}
	} else {
		airportRepo, aircraftRepo, planRepo = buildDemoNetwork(spokes)
	}

	calibrator := calibration.NewCalibrator()
	chars, err := calibrator.Calibrate(context.Background(), airportRepo, aircraftRepo, planRepo)
	if err != nil {
		return fmt.Errorf("calibration failed: %w", err)
	}

	log.Info().
		Str("hub", chars.Topology.HubCode).
		Int("spokes", chars.Topology.SpokeCount).
		Float64("avgFlightsPerDay", chars.Topology.AvgFlightsPerDay).
		Float64("penaltyCostRatio", chars.Economics.PenaltyCostRatio).
		Float64("loadFactor", chars.LoadFactor.Baseline).
		Float64("confidence", chars.Confidence).
		Msg("calibration complete")
	for _, warning := range chars.Warnings {
		log.Warn().Msg(warning)
	}
	log.Info().
		Float64("first", chars.DemandEstimates.First).
		Float64("business", chars.DemandEstimates.Business).
		Float64("premiumEconomy", chars.DemandEstimates.PremiumEconomy).
		Float64("economy", chars.DemandEstimates.Economy).
		Msg("demand estimates")

	forecaster := forecast.NewForecaster(planRepo)
	forecaster.SetCharacteristics(chars)
	controller := adaptive.NewController(chars)

	replay(log, chars.Topology.HubCode, planRepo, forecaster, controller, days)

	summary := controller.Summary(days)
	log.Info().
		Str("mode", summary.StrategyMode).
		Strs("hotAirports", summary.HotAirports).
		Str("avgRoundPenalty", summary.RecentAvgRoundPenalty.StringFixed(2)).
		Float64("loadFactorAdjustment", summary.LoadFactorAdjustment).
		Float64("effectiveLoadFactor", controller.EffectiveLoadFactor()).
		Bool("recalibrate", forecaster.ShouldRecalibrate()).
		Msg("replay complete")

	return nil
}

// replay walks the schedule hour by hour, revealing flight events with
// synthetic passenger counts and reporting penalties whenever a flight
// runs fuller than the calibrated estimate assumed.
func replay(
	log zerolog.Logger,
	hub string,
	planRepo *memory.FlightPlanRepository,
	forecaster *forecast.Forecaster,
	controller *adaptive.Controller,
	days int,
) {
	plans, _ := planRepo.GetAllPlans()
	flightSeq := 0

	for day := 0; day < days; day++ {
		for hour := 0; hour < 24; hour++ {
			now := entities.SimTime{Day: day, Hour: hour}
			var penalties []events.Penalty

			for _, plan := range plans {
				if plan.DepartureHour != hour || !plan.ActiveOn(now.Weekday()) {
					continue
				}
				flightSeq++
				passengers := syntheticLoad(plan, day)
				forecaster.RecordObservedDemand(passengers)

				// demand beyond the calibrated economy estimate shows up
				// as an unfulfilled-demand penalty at the destination
				excess := passengers.Economy - forecaster.UpdatedDemandEstimates().Economy
				if excess > 0 {
					penalties = append(penalties, events.Penalty{
						Type:         events.UnfulfilledDemand,
						Amount:       decimal.NewFromFloat(excess * plan.DistanceKm * 0.30),
						Airport:      plan.Destination,
						AirportKnown: true,
						Class:        entities.Economy,
						ClassKnown:   true,
					})
				}
			}

			controller.RecordPenalties(penalties, now)
		}

		adjustment := controller.SuggestLoadFactorAdjustment(day)
		outlook := forecaster.ScheduledDemand(hub, entities.SimTime{Day: day, Hour: 23}, 24)
		log.Debug().
			Int("day", day).
			Int("flights", flightSeq).
			Float64("loadFactorAdjustment", adjustment).
			Float64("hubEconomyOutlook", outlook.Economy).
			Int("recentPenalties", controller.RecentPenaltyCount()).
			Msg("day complete")
	}
}

// syntheticLoad produces deterministic passenger counts that run a little
// hotter than the calibration assumptions, so the feedback loop has
// something to react to
func syntheticLoad(plan *entities.FlightPlan, day int) entities.PerClassAmount {
	swing := 1.0 + 0.1*float64(day%3)
	base := entities.PerClassAmount{First: 7, Business: 38, PremiumEconomy: 22, Economy: 210}
	return base.Scale(swing * (0.9 + plan.DistanceKm/10000)).Ceil()
}

// loadNetwork reads a CSV dataset into the in-memory repositories
func loadNetwork(dir string) (*memory.AirportRepository, *memory.AircraftRepository, *memory.FlightPlanRepository, error) {
	loader := csvrepo.NewLoader()

	airports, err := loader.LoadAirports(filepath.Join(dir, "airports.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	aircraft, err := loader.LoadAircraft(filepath.Join(dir, "aircraft.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	plans, err := loader.LoadFlightPlans(filepath.Join(dir, "flight_plans.csv"))
	if err != nil {
		return nil, nil, nil, err
	}

	airportRepo := memory.NewAirportRepository(len(airports))
	if err := airportRepo.LoadAirports(airports); err != nil {
		return nil, nil, nil, err
	}
	aircraftRepo := memory.NewAircraftRepository(len(aircraft))
	if err := aircraftRepo.LoadAircraft(aircraft); err != nil {
		return nil, nil, nil, err
	}
	planRepo := memory.NewFlightPlanRepository(len(plans))
	if err := planRepo.LoadPlans(plans); err != nil {
		return nil, nil, nil, err
	}

	return airportRepo, aircraftRepo, planRepo, nil
}

// buildDemoNetwork assembles the synthetic star network the demo runs
// against
func buildDemoNetwork(spokes int) (*memory.AirportRepository, *memory.AircraftRepository, *memory.FlightPlanRepository) {
	airportRepo := memory.NewAirportRepository(spokes + 1)
	aircraftRepo := memory.NewAircraftRepository(3)
	planRepo := memory.NewFlightPlanRepository(spokes * 5)

	everyday := [7]bool{true, true, true, true, true, true, true}
	weekdaysOnly := [7]bool{true, true, true, true, true, false, false}

	_ = airportRepo.AddAirport(entities.Airport{
		Code:     "HUB",
		IsHub:    true,
		Capacity: entities.PerClassAmount{First: 1200, Business: 3600, PremiumEconomy: 1800, Economy: 24000},
		LoadingCost: entities.PerClassCost{
			First:          decimal.NewFromInt(9),
			Business:       decimal.NewFromInt(7),
			PremiumEconomy: decimal.NewFromInt(4),
			Economy:        decimal.NewFromInt(2),
		},
	})

	for i := 0; i < spokes; i++ {
		code := fmt.Sprintf("SP%02d", i)
		_ = airportRepo.AddAirport(entities.Airport{
			Code:     code,
			Capacity: entities.PerClassAmount{First: 90, Business: 280, PremiumEconomy: 140, Economy: 2000},
			LoadingCost: entities.PerClassCost{
				First:          decimal.NewFromInt(11),
				Business:       decimal.NewFromInt(8),
				PremiumEconomy: decimal.NewFromInt(5),
				Economy:        decimal.NewFromInt(3),
			},
		})

		distance := 500 + 140*float64(i)
		mask := everyday
		if i%4 == 3 {
			mask = weekdaysOnly
		}
		for p := 0; p < 4; p++ {
			dep := (6 + 4*p + i) % 24
			planRepo.AddPlan(entities.FlightPlan{
				Origin:        "HUB",
				Destination:   code,
				DepartureHour: dep,
				ArrivalHour:   (dep + 2) % 24,
				Weekdays:      mask,
				DistanceKm:    distance,
			})
		}
		planRepo.AddPlan(entities.FlightPlan{
			Origin:        code,
			Destination:   "HUB",
			DepartureHour: (19 + i) % 24,
			ArrivalHour:   (21 + i) % 24,
			Weekdays:      mask,
			DistanceKm:    distance,
		})
	}

	seats := []entities.PerClassAmount{
		{First: 8, Business: 42, PremiumEconomy: 24, Economy: 230},
		{First: 12, Business: 60, PremiumEconomy: 32, Economy: 290},
		{First: 0, Business: 24, PremiumEconomy: 16, Economy: 170},
	}
	for i, profile := range seats {
		_ = aircraftRepo.AddAircraft(entities.Aircraft{
			Model:       fmt.Sprintf("AC-%d", i+1),
			Seats:       profile,
			CostPerKgKm: decimal.NewFromFloat(0.004 + 0.001*float64(i)),
		})
	}

	return airportRepo, aircraftRepo, planRepo
}
