package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviokit/rotable/pkg/domain/entities"
)

func weekdaysAll() [7]bool {
	return [7]bool{true, true, true, true, true, true, true}
}

func TestFlightPlanRepository_Indexes(t *testing.T) {
	repo := NewFlightPlanRepository(4)

	repo.AddPlan(entities.FlightPlan{Origin: "HUB", Destination: "AAA", DepartureHour: 8, ArrivalHour: 10, Weekdays: weekdaysAll(), DistanceKm: 800})
	repo.AddPlan(entities.FlightPlan{Origin: "HUB", Destination: "BBB", DepartureHour: 9, ArrivalHour: 12, Weekdays: weekdaysAll(), DistanceKm: 1200})
	repo.AddPlan(entities.FlightPlan{Origin: "AAA", Destination: "HUB", DepartureHour: 14, ArrivalHour: 16, Weekdays: weekdaysAll(), DistanceKm: 800})

	from, err := repo.PlansFrom("HUB")
	require.NoError(t, err)
	assert.Len(t, from, 2)

	to, err := repo.PlansTo("HUB")
	require.NoError(t, err)
	require.Len(t, to, 1)
	assert.Equal(t, "AAA", to[0].Origin)

	none, err := repo.PlansFrom("ZZZ")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.GetAllPlans()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFlightPlanRepository_Distances(t *testing.T) {
	repo := NewFlightPlanRepository(2)

	_, ok := repo.AverageDistance()
	assert.False(t, ok, "empty repository has no average distance")

	repo.AddPlan(entities.FlightPlan{Origin: "HUB", Destination: "AAA", Weekdays: weekdaysAll(), DistanceKm: 600})
	repo.AddPlan(entities.FlightPlan{Origin: "HUB", Destination: "BBB", Weekdays: weekdaysAll(), DistanceKm: 1400})

	avg, ok := repo.AverageDistance()
	require.True(t, ok)
	assert.Equal(t, float64(1000), avg)

	dist, ok := repo.Distance("HUB", "BBB")
	require.True(t, ok)
	assert.Equal(t, float64(1400), dist)

	_, ok = repo.Distance("AAA", "BBB")
	assert.False(t, ok)
}
