package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PerClassCost is a fixed four-field vector of monetary values, one per
// kit class. Money is always held as decimal, never float.
type PerClassCost struct {
	First          decimal.Decimal
	Business       decimal.Decimal
	PremiumEconomy decimal.Decimal
	Economy        decimal.Decimal
}

// Get returns the cost for a class
func (c PerClassCost) Get(class KitClass) decimal.Decimal {
	switch class {
	case First:
		return c.First
	case Business:
		return c.Business
	case PremiumEconomy:
		return c.PremiumEconomy
	case Economy:
		return c.Economy
	default:
		return decimal.Zero
	}
}

// Airport is immutable reference data describing one node of the network.
// Exactly one airport in a dataset carries the hub flag; all others are
// spokes.
type Airport struct {
	Code        string
	IsHub       bool
	Capacity    PerClassAmount
	LoadingCost PerClassCost
}

// NewAirport creates a validated Airport
func NewAirport(code string, isHub bool, capacity PerClassAmount, loadingCost PerClassCost) (*Airport, error) {
	if code == "" {
		return nil, fmt.Errorf("airport code cannot be empty")
	}
	for _, class := range AllClasses {
		if capacity.Get(class) < 0 {
			return nil, fmt.Errorf("airport %s: %s capacity cannot be negative, got %v",
				code, class, capacity.Get(class))
		}
	}
	return &Airport{
		Code:        code,
		IsHub:       isHub,
		Capacity:    capacity,
		LoadingCost: loadingCost,
	}, nil
}
