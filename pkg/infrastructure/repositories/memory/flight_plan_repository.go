package memory

import (
	"github.com/aviokit/rotable/pkg/domain/entities"
	"github.com/aviokit/rotable/pkg/domain/repositories"
)

// FlightPlanRepository provides in-memory flight schedule storage with
// origin and destination indexes
type FlightPlanRepository struct {
	plans         []entities.FlightPlan
	byOrigin      map[string][]int
	byDestination map[string][]int
	distanceSum   float64
}

// NewFlightPlanRepository creates a new in-memory flight plan repository
func NewFlightPlanRepository(expectedPlans int) *FlightPlanRepository {
	return &FlightPlanRepository{
		plans:         make([]entities.FlightPlan, 0, expectedPlans),
		byOrigin:      make(map[string][]int),
		byDestination: make(map[string][]int),
	}
}

// Verify interface compliance
var _ repositories.FlightPlanRepository = (*FlightPlanRepository)(nil)

// LoadPlans loads flight plans into the repository
func (r *FlightPlanRepository) LoadPlans(plans []*entities.FlightPlan) error {
	for _, plan := range plans {
		r.AddPlan(*plan)
	}
	return nil
}

// AddPlan adds a single flight plan to the repository
func (r *FlightPlanRepository) AddPlan(plan entities.FlightPlan) {
	index := len(r.plans)
	r.plans = append(r.plans, plan)
	r.byOrigin[plan.Origin] = append(r.byOrigin[plan.Origin], index)
	r.byDestination[plan.Destination] = append(r.byDestination[plan.Destination], index)
	r.distanceSum += plan.DistanceKm
}

// GetAllPlans returns every flight plan
func (r *FlightPlanRepository) GetAllPlans() ([]*entities.FlightPlan, error) {
	plans := make([]*entities.FlightPlan, 0, len(r.plans))
	for i := range r.plans {
		plans = append(plans, &r.plans[i])
	}
	return plans, nil
}

// PlansFrom returns every plan departing the given airport
func (r *FlightPlanRepository) PlansFrom(origin string) ([]*entities.FlightPlan, error) {
	return r.collect(r.byOrigin[origin]), nil
}

// PlansTo returns every plan arriving at the given airport
func (r *FlightPlanRepository) PlansTo(destination string) ([]*entities.FlightPlan, error) {
	return r.collect(r.byDestination[destination]), nil
}

func (r *FlightPlanRepository) collect(indexes []int) []*entities.FlightPlan {
	plans := make([]*entities.FlightPlan, 0, len(indexes))
	for _, i := range indexes {
		plans = append(plans, &r.plans[i])
	}
	return plans
}

// Distance returns the scheduled distance between two airports. The first
// plan connecting them wins; all plans on a city pair share one distance.
func (r *FlightPlanRepository) Distance(origin, destination string) (float64, bool) {
	for _, i := range r.byOrigin[origin] {
		if r.plans[i].Destination == destination {
			return r.plans[i].DistanceKm, true
		}
	}
	return 0, false
}

// AverageDistance returns the mean distance across all plans
func (r *FlightPlanRepository) AverageDistance() (float64, bool) {
	if len(r.plans) == 0 {
		return 0, false
	}
	return r.distanceSum / float64(len(r.plans)), true
}
