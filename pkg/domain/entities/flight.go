package entities

import "fmt"

// FlightPlan is a recurring scheduled route: the template from which
// concrete flights are forecast. Immutable reference data.
type FlightPlan struct {
	Origin        string
	Destination   string
	DepartureHour int
	ArrivalHour   int
	// Weekdays is the 7-element activity mask; Weekdays[d] reports whether
	// the flight departs on weekday d.
	Weekdays   [7]bool
	DistanceKm float64
}

// NewFlightPlan creates a validated FlightPlan
func NewFlightPlan(origin, destination string, departureHour, arrivalHour int, weekdays [7]bool, distanceKm float64) (*FlightPlan, error) {
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("flight plan endpoints cannot be empty")
	}
	if origin == destination {
		return nil, fmt.Errorf("flight plan %s-%s: origin and destination must differ", origin, destination)
	}
	if departureHour < 0 || departureHour > 23 {
		return nil, fmt.Errorf("flight plan %s-%s: departure hour out of range, got %d", origin, destination, departureHour)
	}
	if arrivalHour < 0 || arrivalHour > 23 {
		return nil, fmt.Errorf("flight plan %s-%s: arrival hour out of range, got %d", origin, destination, arrivalHour)
	}
	if distanceKm <= 0 {
		return nil, fmt.Errorf("flight plan %s-%s: distance must be positive, got %v", origin, destination, distanceKm)
	}
	return &FlightPlan{
		Origin:        origin,
		Destination:   destination,
		DepartureHour: departureHour,
		ArrivalHour:   arrivalHour,
		Weekdays:      weekdays,
		DistanceKm:    distanceKm,
	}, nil
}

// ActiveOn reports whether the plan departs on the given weekday index
func (p *FlightPlan) ActiveOn(weekday int) bool {
	if weekday < 0 || weekday > 6 {
		return false
	}
	return p.Weekdays[weekday]
}

// DaysPerWeek returns how many weekdays the plan is active
func (p *FlightPlan) DaysPerWeek() int {
	n := 0
	for _, active := range p.Weekdays {
		if active {
			n++
		}
	}
	return n
}

// OvernightArrival reports whether the flight lands on the day after it
// departs (arrival hour earlier than departure hour).
func (p *FlightPlan) OvernightArrival() bool {
	return p.ArrivalHour < p.DepartureHour
}

// FlightEvent is a concrete, observed flight instance revealed by the
// simulation. The planning core only ever reads these; it never creates
// them.
type FlightEvent struct {
	ID          string
	Origin      string
	Destination string
	Departure   SimTime
	Arrival     SimTime
	Passengers  PerClassAmount
}
