package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAirports(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "airports.csv",
		"code,is_hub,cap_first,cap_business,cap_premium_economy,cap_economy,cost_first,cost_business,cost_premium_economy,cost_economy\n"+
			"HUB,true,1000,3000,1500,20000,8,6,4,2\n"+
			"SP00,false,80,250,120,1800,10,8,5,3\n")

	airports, err := NewLoader().LoadAirports(path)
	require.NoError(t, err)
	require.Len(t, airports, 2)

	assert.Equal(t, "HUB", airports[0].Code)
	assert.True(t, airports[0].IsHub)
	assert.Equal(t, 20000.0, airports[0].Capacity.Economy)
	assert.Equal(t, "2", airports[0].LoadingCost.Economy.String())

	assert.Equal(t, "SP00", airports[1].Code)
	assert.False(t, airports[1].IsHub)
}

func TestLoadAirportsHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "airports.csv",
		"code,hub\nHUB,true\n")

	_, err := NewLoader().LoadAirports(path)
	assert.ErrorContains(t, err, "header mismatch")
}

func TestLoadAirportsBadRow(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "airports.csv",
		"code,is_hub,cap_first,cap_business,cap_premium_economy,cap_economy,cost_first,cost_business,cost_premium_economy,cost_economy\n"+
			"HUB,yes?,1000,3000,1500,20000,8,6,4,2\n")

	_, err := NewLoader().LoadAirports(path)
	assert.ErrorContains(t, err, "row 2")
}

func TestLoadAircraft(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "aircraft.csv",
		"model,seats_first,seats_business,seats_premium_economy,seats_economy,cost_per_kg_km\n"+
			"A330,8,42,24,230,0.004\n")

	aircraft, err := NewLoader().LoadAircraft(path)
	require.NoError(t, err)
	require.Len(t, aircraft, 1)
	assert.Equal(t, "A330", aircraft[0].Model)
	assert.Equal(t, 230.0, aircraft[0].Seats.Economy)
	assert.Equal(t, "0.004", aircraft[0].CostPerKgKm.String())
}

func TestLoadFlightPlans(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "flight_plans.csv",
		"origin,destination,departure_hour,arrival_hour,weekdays,distance_km\n"+
			"HUB,SP00,6,8,1111111,600\n"+
			"SP00,HUB,19,21,1111100,600\n")

	plans, err := NewLoader().LoadFlightPlans(path)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, "HUB", plans[0].Origin)
	assert.Equal(t, 6, plans[0].DepartureHour)
	assert.Equal(t, [7]bool{true, true, true, true, true, true, true}, plans[0].Weekdays)
	assert.Equal(t, [7]bool{true, true, true, true, true, false, false}, plans[1].Weekdays)
	assert.Equal(t, 600.0, plans[1].DistanceKm)
}

func TestLoadFlightPlansBadWeekdayMask(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "flight_plans.csv",
		"origin,destination,departure_hour,arrival_hour,weekdays,distance_km\n"+
			"HUB,SP00,6,8,11x1100,600\n")

	_, err := NewLoader().LoadFlightPlans(path)
	assert.ErrorContains(t, err, "weekdays mask")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().LoadAirports(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorContains(t, err, "failed to open")
}
