package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aviokit/rotable/pkg/domain/entities"
)

// Loader handles loading network datasets from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadAirports loads airports from a CSV file
func (l *Loader) LoadAirports(filename string) ([]*entities.Airport, error) {
	records, err := readAll(filename, "airports")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{
		"code", "is_hub",
		"cap_first", "cap_business", "cap_premium_economy", "cap_economy",
		"cost_first", "cost_business", "cost_premium_economy", "cost_economy",
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("airports CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var airports []*entities.Airport
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("airports CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		airport, err := parseAirport(record)
		if err != nil {
			return nil, fmt.Errorf("airports CSV row %d: %w", i+2, err)
		}

		airports = append(airports, airport)
	}

	return airports, nil
}

// LoadAircraft loads aircraft types from a CSV file
func (l *Loader) LoadAircraft(filename string) ([]*entities.Aircraft, error) {
	records, err := readAll(filename, "aircraft")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{
		"model",
		"seats_first", "seats_business", "seats_premium_economy", "seats_economy",
		"cost_per_kg_km",
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("aircraft CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var aircraft []*entities.Aircraft
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("aircraft CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		a, err := parseAircraft(record)
		if err != nil {
			return nil, fmt.Errorf("aircraft CSV row %d: %w", i+2, err)
		}

		aircraft = append(aircraft, a)
	}

	return aircraft, nil
}

// LoadFlightPlans loads the flight schedule from a CSV file
func (l *Loader) LoadFlightPlans(filename string) ([]*entities.FlightPlan, error) {
	records, err := readAll(filename, "flight plans")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"origin", "destination", "departure_hour", "arrival_hour", "weekdays", "distance_km"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("flight plans CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var plans []*entities.FlightPlan
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("flight plans CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		plan, err := parseFlightPlan(record)
		if err != nil {
			return nil, fmt.Errorf("flight plans CSV row %d: %w", i+2, err)
		}

		plans = append(plans, plan)
	}

	return plans, nil
}

// Helper functions for parsing CSV records

func readAll(filename, kind string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", kind)
	}

	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseAirport(record []string) (*entities.Airport, error) {
	code := strings.TrimSpace(record[0])

	isHub, err := strconv.ParseBool(record[1])
	if err != nil {
		return nil, fmt.Errorf("invalid is_hub: %s", record[1])
	}

	capacity, err := parsePerClass(record[2:6], "cap")
	if err != nil {
		return nil, err
	}

	var costs [4]decimal.Decimal
	for i, field := range record[6:10] {
		costs[i], err = decimal.NewFromString(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid cost column: %s", field)
		}
	}

	loadingCost := entities.PerClassCost{
		First:          costs[0],
		Business:       costs[1],
		PremiumEconomy: costs[2],
		Economy:        costs[3],
	}

	return entities.NewAirport(code, isHub, capacity, loadingCost)
}

func parseAircraft(record []string) (*entities.Aircraft, error) {
	model := strings.TrimSpace(record[0])

	seats, err := parsePerClass(record[1:5], "seats")
	if err != nil {
		return nil, err
	}

	costPerKgKm, err := decimal.NewFromString(strings.TrimSpace(record[5]))
	if err != nil {
		return nil, fmt.Errorf("invalid cost_per_kg_km: %s", record[5])
	}

	return entities.NewAircraft(model, seats, costPerKgKm)
}

func parseFlightPlan(record []string) (*entities.FlightPlan, error) {
	origin := strings.TrimSpace(record[0])
	destination := strings.TrimSpace(record[1])

	departureHour, err := strconv.Atoi(record[2])
	if err != nil {
		return nil, fmt.Errorf("invalid departure_hour: %s", record[2])
	}

	arrivalHour, err := strconv.Atoi(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid arrival_hour: %s", record[3])
	}

	weekdays, err := parseWeekdayMask(record[4])
	if err != nil {
		return nil, err
	}

	distanceKm, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid distance_km: %s", record[5])
	}

	return entities.NewFlightPlan(origin, destination, departureHour, arrivalHour, weekdays, distanceKm)
}

// parseWeekdayMask reads a 7-character mask starting on Monday, where
// '1' marks an operating day: "1111100" is weekdays only.
func parseWeekdayMask(s string) ([7]bool, error) {
	var mask [7]bool
	s = strings.TrimSpace(s)
	if len(s) != 7 {
		return mask, fmt.Errorf("invalid weekdays mask: %s (expected 7 characters of 0/1)", s)
	}

	for i, ch := range s {
		switch ch {
		case '1':
			mask[i] = true
		case '0':
			mask[i] = false
		default:
			return mask, fmt.Errorf("invalid weekdays mask: %s (expected 7 characters of 0/1)", s)
		}
	}

	return mask, nil
}

func parsePerClass(fields []string, prefix string) (entities.PerClassAmount, error) {
	var values [4]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return entities.PerClassAmount{}, fmt.Errorf("invalid %s column: %s", prefix, field)
		}
		values[i] = v
	}

	return entities.PerClassAmount{
		First:          values[0],
		Business:       values[1],
		PremiumEconomy: values[2],
		Economy:        values[3],
	}, nil
}
