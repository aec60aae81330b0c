package hotel

import (
	"hotel-pricing/internal/pkg/calendar"

	"github.com/shopspring/decimal"
)

// DateWindow is an inclusive [From, To] range of dates.
type DateWindow struct {
	From calendar.Date
	To   calendar.Date
}

func (w DateWindow) Contains(d calendar.Date) bool {
	return d.Between(w.From, w.To)
}

// Overlaps reports whether the window shares at least one day with [from, to].
func (w DateWindow) Overlaps(from, to calendar.Date) bool {
	return !w.To.Before(from) && !w.From.After(to)
}

// Bounds is an optional min/max pair; a nil side is unbounded.
type Bounds struct {
	Min *int
	Max *int
}

func (b Bounds) Contains(v int) bool {
	if b.Min != nil && v < *b.Min {
		return false
	}
	if b.Max != nil && v > *b.Max {
		return false
	}
	return true
}

type Restrictions struct {
	BookingCutOff *Bounds
	LengthOfStay  *Bounds
}

type Occupancy struct {
	Min int
	Max int
}

func (o Occupancy) Allows(guests int) bool {
	return guests >= o.Min && guests <= o.Max
}

type ModifierConditions struct {
	From            *calendar.Date
	To              *calendar.Date
	MinLengthOfStay *int
	MinOccupants    *int
	MaxAge          *int
}

func (c ModifierConditions) CoversDate(d calendar.Date) bool {
	if c.From != nil && d.Before(*c.From) {
		return false
	}
	if c.To != nil && d.After(*c.To) {
		return false
	}
	return true
}

func (c ModifierConditions) IsAgeSpecific() bool {
	return c.MaxAge != nil
}

// Modifier adjusts a rate plan's nightly price for a single guest. A nil
// Conditions makes the modifier inapplicable; use an empty value for "always".
type Modifier struct {
	Type       ModifierType
	Adjustment decimal.Decimal
	Conditions *ModifierConditions
}

// Change returns the signed amount the modifier adds to basePrice.
func (m Modifier) Change(basePrice decimal.Decimal) decimal.Decimal {
	switch m.Type {
	case ModifierPercentage:
		return m.Adjustment.Shift(-2).Mul(basePrice)
	case ModifierAbsolute:
		return m.Adjustment
	default:
		return decimal.Zero
	}
}

type Guest struct {
	ID  string
	Age int
}
