package events

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aviokit/rotable/pkg/domain/entities"
)

// PenaltyType classifies a penalty reported by the environment
type PenaltyType int

const (
	PenaltyUnknown PenaltyType = iota
	CapacityExceeded
	UnfulfilledDemand
	NegativeInventory
)

// String method for PenaltyType enum
func (t PenaltyType) String() string {
	switch t {
	case CapacityExceeded:
		return "capacity-exceeded"
	case UnfulfilledDemand:
		return "unfulfilled-demand"
	case NegativeInventory:
		return "negative-inventory"
	default:
		return "unknown"
	}
}

// ParsePenaltyType maps an external penalty-type code to its
// classification. Unrecognized codes classify as PenaltyUnknown rather
// than failing the batch.
func ParsePenaltyType(code string) PenaltyType {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "capacity_exceeded", "capacity-exceeded", "capacityexceeded":
		return CapacityExceeded
	case "unfulfilled_demand", "unfulfilled-demand", "unfulfilleddemand":
		return UnfulfilledDemand
	case "negative_inventory", "negative-inventory", "negativeinventory":
		return NegativeInventory
	default:
		return PenaltyUnknown
	}
}

// Penalty is one penalty event with explicit attribution fields. This is
// the primary payload of the live feed: airport and class arrive as
// structured data, not as text to re-parse. AirportKnown/ClassKnown are
// false when the source could not attribute the event; consumers skip the
// per-airport/per-class bookkeeping for such events.
type Penalty struct {
	Type         PenaltyType
	Amount       decimal.Decimal
	Airport      string
	AirportKnown bool
	Class        entities.KitClass
	ClassKnown   bool
	Reason       string
}
