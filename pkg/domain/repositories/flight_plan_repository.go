package repositories

import "github.com/aviokit/rotable/pkg/domain/entities"

// FlightPlanRepository provides access to the recurring flight schedule
type FlightPlanRepository interface {
	GetAllPlans() ([]*entities.FlightPlan, error)
	// PlansFrom returns every plan departing the given airport
	PlansFrom(origin string) ([]*entities.FlightPlan, error)
	// PlansTo returns every plan arriving at the given airport
	PlansTo(destination string) ([]*entities.FlightPlan, error)
	// Distance returns the scheduled distance between two airports and
	// whether any plan connects them
	Distance(origin, destination string) (float64, bool)
	// AverageDistance returns the mean distance across all plans and
	// whether any plans exist
	AverageDistance() (float64, bool)
	LoadPlans(plans []*entities.FlightPlan) error
}
