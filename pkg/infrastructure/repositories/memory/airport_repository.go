package memory

import (
	"fmt"

	"github.com/aviokit/rotable/pkg/domain/entities"
	"github.com/aviokit/rotable/pkg/domain/repositories"
)

// AirportRepository provides in-memory airport storage
type AirportRepository struct {
	airports []entities.Airport
	byCode   map[string]int
	hubIndex int
}

// NewAirportRepository creates a new in-memory airport repository
func NewAirportRepository(expectedAirports int) *AirportRepository {
	return &AirportRepository{
		airports: make([]entities.Airport, 0, expectedAirports),
		byCode:   make(map[string]int, expectedAirports),
		hubIndex: -1,
	}
}

// Verify interface compliance
var _ repositories.AirportRepository = (*AirportRepository)(nil)

// LoadAirports loads airports into the repository
func (r *AirportRepository) LoadAirports(airports []*entities.Airport) error {
	for _, airport := range airports {
		if err := r.AddAirport(*airport); err != nil {
			return err
		}
	}
	return nil
}

// AddAirport adds a single airport to the repository
func (r *AirportRepository) AddAirport(airport entities.Airport) error {
	if _, exists := r.byCode[airport.Code]; exists {
		return fmt.Errorf("duplicate airport code: %s", airport.Code)
	}
	if airport.IsHub {
		if r.hubIndex >= 0 {
			return fmt.Errorf("duplicate hub airport: %s and %s",
				r.airports[r.hubIndex].Code, airport.Code)
		}
		r.hubIndex = len(r.airports)
	}
	r.byCode[airport.Code] = len(r.airports)
	r.airports = append(r.airports, airport)
	return nil
}

// GetAirport returns the airport with the given code
func (r *AirportRepository) GetAirport(code string) (*entities.Airport, error) {
	index, exists := r.byCode[code]
	if !exists {
		return nil, fmt.Errorf("airport not found: %s", code)
	}
	return &r.airports[index], nil
}

// GetHub returns the single hub airport
func (r *AirportRepository) GetHub() (*entities.Airport, error) {
	if r.hubIndex < 0 {
		return nil, entities.NewConfigurationError("no hub airport in dataset")
	}
	return &r.airports[r.hubIndex], nil
}

// GetAllAirports returns every airport
func (r *AirportRepository) GetAllAirports() ([]*entities.Airport, error) {
	airports := make([]*entities.Airport, 0, len(r.airports))
	for i := range r.airports {
		airports = append(airports, &r.airports[i])
	}
	return airports, nil
}

// GetSpokes returns every non-hub airport
func (r *AirportRepository) GetSpokes() ([]*entities.Airport, error) {
	spokes := make([]*entities.Airport, 0, len(r.airports))
	for i := range r.airports {
		if !r.airports[i].IsHub {
			spokes = append(spokes, &r.airports[i])
		}
	}
	return spokes, nil
}
