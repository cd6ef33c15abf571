package entities

import (
	"math"
	"strings"
)

// KitClass identifies one of the four fixed passenger-service tiers
type KitClass int

const (
	First KitClass = iota
	Business
	PremiumEconomy
	Economy
)

// AllClasses lists every kit class in canonical order. All per-class
// consumers iterate this fixed set; there is no dynamic class registry.
var AllClasses = [4]KitClass{First, Business, PremiumEconomy, Economy}

// String method for KitClass enum
func (c KitClass) String() string {
	switch c {
	case First:
		return "first"
	case Business:
		return "business"
	case PremiumEconomy:
		return "premiumEconomy"
	case Economy:
		return "economy"
	default:
		return "unknown"
	}
}

// ParseKitClass maps boundary text to a kit class. Accepts the canonical
// names plus the "premium economy" / "premium-economy" spellings used by
// external event feeds.
func ParseKitClass(s string) (KitClass, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return First, true
	case "business":
		return Business, true
	case "premiumeconomy", "premium economy", "premium-economy", "premium_economy":
		return PremiumEconomy, true
	case "economy":
		return Economy, true
	default:
		return Economy, false
	}
}

// PerClassAmount is a fixed four-field vector of non-negative quantities,
// used uniformly for demand, stock, capacity, seats and thresholds.
type PerClassAmount struct {
	First          float64
	Business       float64
	PremiumEconomy float64
	Economy        float64
}

// Get returns the amount for a class
func (a PerClassAmount) Get(c KitClass) float64 {
	switch c {
	case First:
		return a.First
	case Business:
		return a.Business
	case PremiumEconomy:
		return a.PremiumEconomy
	case Economy:
		return a.Economy
	default:
		return 0
	}
}

// Set replaces the amount for a class
func (a *PerClassAmount) Set(c KitClass, v float64) {
	switch c {
	case First:
		a.First = v
	case Business:
		a.Business = v
	case PremiumEconomy:
		a.PremiumEconomy = v
	case Economy:
		a.Economy = v
	}
}

// Add increments the amount for a class
func (a *PerClassAmount) Add(c KitClass, v float64) {
	a.Set(c, a.Get(c)+v)
}

// Plus returns the element-wise sum of two amounts
func (a PerClassAmount) Plus(b PerClassAmount) PerClassAmount {
	return PerClassAmount{
		First:          a.First + b.First,
		Business:       a.Business + b.Business,
		PremiumEconomy: a.PremiumEconomy + b.PremiumEconomy,
		Economy:        a.Economy + b.Economy,
	}
}

// Scale returns the amount with every class multiplied by f
func (a PerClassAmount) Scale(f float64) PerClassAmount {
	return PerClassAmount{
		First:          a.First * f,
		Business:       a.Business * f,
		PremiumEconomy: a.PremiumEconomy * f,
		Economy:        a.Economy * f,
	}
}

// Ceil rounds every class up to a whole kit count
func (a PerClassAmount) Ceil() PerClassAmount {
	return PerClassAmount{
		First:          math.Ceil(a.First),
		Business:       math.Ceil(a.Business),
		PremiumEconomy: math.Ceil(a.PremiumEconomy),
		Economy:        math.Ceil(a.Economy),
	}
}

// Total returns the sum across all four classes
func (a PerClassAmount) Total() float64 {
	return a.First + a.Business + a.PremiumEconomy + a.Economy
}
