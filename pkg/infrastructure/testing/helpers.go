package testing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aviokit/rotable/pkg/domain/entities"
	"github.com/aviokit/rotable/pkg/infrastructure/repositories/memory"
)

// StarNetworkConfig shapes the synthetic hub-and-spoke fixture
type StarNetworkConfig struct {
	Spokes        int
	PlansPerSpoke int
	// BaseDistanceKm is the distance of the first spoke; each further
	// spoke adds DistanceStepKm
	BaseDistanceKm float64
	DistanceStepKm float64
	AircraftTypes  int
}

// DefaultStarNetwork is a mid-sized network that trips none of the
// calibrator's degenerate-input fallbacks
func DefaultStarNetwork() StarNetworkConfig {
	return StarNetworkConfig{
		Spokes:         10,
		PlansPerSpoke:  4,
		BaseDistanceKm: 600,
		DistanceStepKm: 150,
		AircraftTypes:  3,
	}
}

// BuildStarNetwork builds in-memory reference repositories for a
// synthetic hub-and-spoke network. Spokes are coded SP00, SP01, ...; each
// spoke gets PlansPerSpoke daily outbound plans from the hub plus one
// daily return.
func BuildStarNetwork(cfg StarNetworkConfig) (*memory.AirportRepository, *memory.AircraftRepository, *memory.FlightPlanRepository) {
	airportRepo := memory.NewAirportRepository(cfg.Spokes + 1)
	aircraftRepo := memory.NewAircraftRepository(cfg.AircraftTypes)
	planRepo := memory.NewFlightPlanRepository(cfg.Spokes * (cfg.PlansPerSpoke + 1))

	everyday := [7]bool{true, true, true, true, true, true, true}

	hubCost := entities.PerClassCost{
		First:          decimal.NewFromInt(8),
		Business:       decimal.NewFromInt(6),
		PremiumEconomy: decimal.NewFromInt(4),
		Economy:        decimal.NewFromInt(2),
	}
	_ = airportRepo.AddAirport(entities.Airport{
		Code:        "HUB",
		IsHub:       true,
		Capacity:    entities.PerClassAmount{First: 1000, Business: 3000, PremiumEconomy: 1500, Economy: 20000},
		LoadingCost: hubCost,
	})

	spokeCost := entities.PerClassCost{
		First:          decimal.NewFromInt(10),
		Business:       decimal.NewFromInt(8),
		PremiumEconomy: decimal.NewFromInt(5),
		Economy:        decimal.NewFromInt(3),
	}
	for i := 0; i < cfg.Spokes; i++ {
		code := fmt.Sprintf("SP%02d", i)
		_ = airportRepo.AddAirport(entities.Airport{
			Code:        code,
			Capacity:    entities.PerClassAmount{First: 80, Business: 250, PremiumEconomy: 120, Economy: 1800},
			LoadingCost: spokeCost,
		})

		distance := cfg.BaseDistanceKm + float64(i)*cfg.DistanceStepKm
		for p := 0; p < cfg.PlansPerSpoke; p++ {
			dep := (6 + 4*p) % 24
			arr := (dep + 2) % 24
			planRepo.AddPlan(entities.FlightPlan{
				Origin:        "HUB",
				Destination:   code,
				DepartureHour: dep,
				ArrivalHour:   arr,
				Weekdays:      everyday,
				DistanceKm:    distance,
			})
		}
		planRepo.AddPlan(entities.FlightPlan{
			Origin:        code,
			Destination:   "HUB",
			DepartureHour: 18,
			ArrivalHour:   20,
			Weekdays:      everyday,
			DistanceKm:    distance,
		})
	}

	seatProfiles := []entities.PerClassAmount{
		{First: 8, Business: 40, PremiumEconomy: 24, Economy: 220},
		{First: 12, Business: 60, PremiumEconomy: 32, Economy: 280},
		{First: 4, Business: 24, PremiumEconomy: 16, Economy: 160},
	}
	for i := 0; i < cfg.AircraftTypes; i++ {
		_ = aircraftRepo.AddAircraft(entities.Aircraft{
			Model:       fmt.Sprintf("AC-%d", i+1),
			Seats:       seatProfiles[i%len(seatProfiles)],
			CostPerKgKm: decimal.NewFromFloat(0.004 + 0.001*float64(i%3)),
		})
	}

	return airportRepo, aircraftRepo, planRepo
}

// BuildDegenerateNetwork builds the minimal dataset the calibrator must
// tolerate: one hub airport, no spokes, no aircraft, no flight plans.
func BuildDegenerateNetwork() (*memory.AirportRepository, *memory.AircraftRepository, *memory.FlightPlanRepository) {
	airportRepo := memory.NewAirportRepository(1)
	_ = airportRepo.AddAirport(entities.Airport{
		Code:     "HUB",
		IsHub:    true,
		Capacity: entities.PerClassAmount{First: 1000, Business: 3000, PremiumEconomy: 1500, Economy: 20000},
	})
	return airportRepo, memory.NewAircraftRepository(0), memory.NewFlightPlanRepository(0)
}
