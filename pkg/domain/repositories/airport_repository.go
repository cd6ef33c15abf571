package repositories

import "github.com/aviokit/rotable/pkg/domain/entities"

// AirportRepository provides access to airport reference data
type AirportRepository interface {
	GetAirport(code string) (*entities.Airport, error)
	GetHub() (*entities.Airport, error)
	GetAllAirports() ([]*entities.Airport, error)
	GetSpokes() ([]*entities.Airport, error)
	LoadAirports(airports []*entities.Airport) error
}
