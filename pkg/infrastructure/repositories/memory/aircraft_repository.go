package memory

import (
	"fmt"

	"github.com/aviokit/rotable/pkg/domain/entities"
	"github.com/aviokit/rotable/pkg/domain/repositories"
)

// AircraftRepository provides in-memory aircraft storage
type AircraftRepository struct {
	aircraft []entities.Aircraft
	byModel  map[string]int
}

// NewAircraftRepository creates a new in-memory aircraft repository
func NewAircraftRepository(expectedAircraft int) *AircraftRepository {
	return &AircraftRepository{
		aircraft: make([]entities.Aircraft, 0, expectedAircraft),
		byModel:  make(map[string]int, expectedAircraft),
	}
}

// Verify interface compliance
var _ repositories.AircraftRepository = (*AircraftRepository)(nil)

// LoadAircraft loads aircraft into the repository
func (r *AircraftRepository) LoadAircraft(aircraft []*entities.Aircraft) error {
	for _, a := range aircraft {
		if err := r.AddAircraft(*a); err != nil {
			return err
		}
	}
	return nil
}

// AddAircraft adds a single aircraft type to the repository
func (r *AircraftRepository) AddAircraft(aircraft entities.Aircraft) error {
	if _, exists := r.byModel[aircraft.Model]; exists {
		return fmt.Errorf("duplicate aircraft model: %s", aircraft.Model)
	}
	r.byModel[aircraft.Model] = len(r.aircraft)
	r.aircraft = append(r.aircraft, aircraft)
	return nil
}

// GetAircraft returns the aircraft with the given model name
func (r *AircraftRepository) GetAircraft(model string) (*entities.Aircraft, error) {
	index, exists := r.byModel[model]
	if !exists {
		return nil, fmt.Errorf("aircraft not found: %s", model)
	}
	return &r.aircraft[index], nil
}

// GetAllAircraft returns every aircraft type
func (r *AircraftRepository) GetAllAircraft() ([]*entities.Aircraft, error) {
	aircraft := make([]*entities.Aircraft, 0, len(r.aircraft))
	for i := range r.aircraft {
		aircraft = append(aircraft, &r.aircraft[i])
	}
	return aircraft, nil
}
