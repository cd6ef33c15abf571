package entities

import "testing"

func TestFlightPlan_Validation(t *testing.T) {
	weekdays := [7]bool{true, true, true, true, true, false, false}

	plan, err := NewFlightPlan("HUB", "AAA", 8, 10, weekdays, 850)
	if err != nil {
		t.Fatalf("Expected valid plan creation to succeed: %v", err)
	}
	if plan.Origin != "HUB" || plan.Destination != "AAA" {
		t.Errorf("Unexpected endpoints: %s-%s", plan.Origin, plan.Destination)
	}

	testCases := []struct {
		name         string
		origin, dest string
		depHour      int
		arrHour      int
		distance     float64
	}{
		{"empty origin", "", "AAA", 8, 10, 850},
		{"same endpoints", "HUB", "HUB", 8, 10, 850},
		{"departure hour too large", "HUB", "AAA", 24, 10, 850},
		{"negative arrival hour", "HUB", "AAA", 8, -1, 850},
		{"zero distance", "HUB", "AAA", 8, 10, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFlightPlan(tc.origin, tc.dest, tc.depHour, tc.arrHour, weekdays, tc.distance)
			if err == nil {
				t.Error("Expected validation error but got none")
			}
		})
	}
}

func TestFlightPlan_ActiveOn(t *testing.T) {
	plan := &FlightPlan{Weekdays: [7]bool{true, false, true, false, false, false, true}}

	if !plan.ActiveOn(0) || plan.ActiveOn(1) || !plan.ActiveOn(6) {
		t.Error("ActiveOn does not match weekday mask")
	}
	if plan.ActiveOn(-1) || plan.ActiveOn(7) {
		t.Error("Out-of-range weekday should never be active")
	}
	if plan.DaysPerWeek() != 3 {
		t.Errorf("DaysPerWeek = %d, want 3", plan.DaysPerWeek())
	}
}

func TestFlightPlan_OvernightArrival(t *testing.T) {
	overnight := &FlightPlan{DepartureHour: 23, ArrivalHour: 1}
	sameDay := &FlightPlan{DepartureHour: 8, ArrivalHour: 10}

	if !overnight.OvernightArrival() {
		t.Error("23->01 should be an overnight arrival")
	}
	if sameDay.OvernightArrival() {
		t.Error("08->10 should not be an overnight arrival")
	}
}
