package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Aircraft is immutable reference data describing one aircraft type.
type Aircraft struct {
	Model       string
	Seats       PerClassAmount
	CostPerKgKm decimal.Decimal
}

// NewAircraft creates a validated Aircraft
func NewAircraft(model string, seats PerClassAmount, costPerKgKm decimal.Decimal) (*Aircraft, error) {
	if model == "" {
		return nil, fmt.Errorf("aircraft model cannot be empty")
	}
	for _, class := range AllClasses {
		if seats.Get(class) < 0 {
			return nil, fmt.Errorf("aircraft %s: %s seat count cannot be negative, got %v",
				model, class, seats.Get(class))
		}
	}
	if costPerKgKm.IsNegative() {
		return nil, fmt.Errorf("aircraft %s: cost per kg-km cannot be negative, got %s",
			model, costPerKgKm)
	}
	return &Aircraft{
		Model:       model,
		Seats:       seats,
		CostPerKgKm: costPerKgKm,
	}, nil
}
