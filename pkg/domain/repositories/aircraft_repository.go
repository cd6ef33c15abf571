package repositories

import "github.com/aviokit/rotable/pkg/domain/entities"

// AircraftRepository provides access to aircraft reference data
type AircraftRepository interface {
	GetAircraft(model string) (*entities.Aircraft, error)
	GetAllAircraft() ([]*entities.Aircraft, error)
	LoadAircraft(aircraft []*entities.Aircraft) error
}
