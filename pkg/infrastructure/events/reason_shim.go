package events

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/aviokit/rotable/pkg/domain/entities"
)

// Compatibility shim for legacy event sources that report penalties as
// {code, amount, reason} tuples with the attribution buried in free text,
// e.g. "capacity exceeded at BOS for premium economy kits". Structured
// Penalty payloads are the primary path; this parser exists only at the
// boundary.

var (
	reasonAirportRe = regexp.MustCompile(`(?:\bat|\bairport)\s+([A-Z]{2,4})\b`)
	reasonClassRe   = regexp.MustCompile(`(?i)\b(premium[\s_-]?economy|first|business|economy)\b`)
)

// ParsePenalty builds a structured Penalty from a legacy reason string.
// A pattern miss leaves the corresponding attribution field unset; it is
// never an error.
func ParsePenalty(code string, amount decimal.Decimal, reason string) Penalty {
	p := Penalty{
		Type:   ParsePenaltyType(code),
		Amount: amount,
		Reason: reason,
	}

	if m := reasonAirportRe.FindStringSubmatch(reason); m != nil {
		p.Airport = m[1]
		p.AirportKnown = true
	}
	if m := reasonClassRe.FindStringSubmatch(reason); m != nil {
		if class, ok := entities.ParseKitClass(m[1]); ok {
			p.Class = class
			p.ClassKnown = true
		}
	}
	return p
}

// ParsePenaltyBatch converts one round's worth of legacy tuples
func ParsePenaltyBatch(tuples []LegacyPenalty) []Penalty {
	penalties := make([]Penalty, 0, len(tuples))
	for _, tuple := range tuples {
		penalties = append(penalties, ParsePenalty(tuple.Code, tuple.Amount, tuple.Reason))
	}
	return penalties
}

// LegacyPenalty is the raw tuple shape emitted by the external
// environment
type LegacyPenalty struct {
	Code   string
	Amount decimal.Decimal
	Reason string
}
