package pricing

import (
	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/internal/pkg/money"
)

// GuestPrice is one guest's price for one night under one rate plan.
// Modifier is nil when the base price applies unchanged.
type GuestPrice struct {
	GuestID        string
	RatePlanID     string
	BasePrice      money.Money
	ResultingPrice money.Money
	Modifier       *hotel.Modifier
}

// ComputeDailyPrice prices every guest for a single night. Resulting prices
// are not clamped and may be negative.
func ComputeDailyPrice(guests []hotel.Guest, lengthOfStay int, date calendar.Date, ratePlan hotel.RatePlan, currency string) []GuestPrice {
	applicable := SelectApplicableModifiers(ratePlan.Modifiers, date, lengthOfStay, len(guests))
	base := money.New(ratePlan.Price, currency)

	lines := make([]GuestPrice, 0, len(guests))
	for _, g := range guests {
		line := GuestPrice{
			GuestID:        g.ID,
			RatePlanID:     ratePlan.ID,
			BasePrice:      base,
			ResultingPrice: base,
		}
		if mod, ok := SelectBestGuestModifier(ratePlan.Price, applicable, g.Age); ok {
			line.ResultingPrice = base.Plus(mod.Change(ratePlan.Price))
			line.Modifier = &mod
		}
		lines = append(lines, line)
	}
	return lines
}
