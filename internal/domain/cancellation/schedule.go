package cancellation

import (
	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/pkg/calendar"

	"github.com/shopspring/decimal"
)

// Period charges Amount for cancellations made between From and To inclusive.
type Period struct {
	From   calendar.Date
	To     calendar.Date
	Amount decimal.Decimal
}

// ComputeCancellationFees builds the fee schedule between booking and arrival.
// Each day takes the highest amount of the policies covering it, or
// defaultAmount when none does; equal neighbouring days are merged.
func ComputeCancellationFees(bookingDate, arrivalDate calendar.Date, policies []hotel.CancellationPolicy, defaultAmount decimal.Decimal) []Period {
	if bookingDate.After(arrivalDate) {
		return []Period{}
	}

	days := calendar.DaysBetween(bookingDate, arrivalDate) + 1
	fees := make([]*decimal.Decimal, days)
	for _, p := range policies {
		from, to, ok := effectiveWindow(bookingDate, arrivalDate, p)
		if !ok {
			continue
		}
		for d := from; !d.After(to); d = d.AddDays(1) {
			i := calendar.DaysBetween(bookingDate, d)
			if fees[i] == nil || p.Amount.GreaterThan(*fees[i]) {
				amount := p.Amount
				fees[i] = &amount
			}
		}
	}

	periods := make([]Period, 0)
	for i, fee := range fees {
		amount := defaultAmount
		if fee != nil {
			amount = *fee
		}
		day := bookingDate.AddDays(i)
		if n := len(periods); n > 0 && periods[n-1].Amount.Equal(amount) {
			periods[n-1].To = day
			continue
		}
		periods = append(periods, Period{From: day, To: day, Amount: amount})
	}
	return periods
}

// effectiveWindow clamps a policy to [bookingDate, arrivalDate]. The policy
// starts no earlier than its deadline before arrival.
func effectiveWindow(bookingDate, arrivalDate calendar.Date, p hotel.CancellationPolicy) (from, to calendar.Date, ok bool) {
	from = calendar.Max(bookingDate, arrivalDate.AddDays(-p.Deadline))
	if p.From != nil {
		from = calendar.Max(from, *p.From)
	}
	to = arrivalDate
	if p.To != nil {
		to = calendar.Min(to, *p.To)
	}
	return from, to, !from.After(to)
}
