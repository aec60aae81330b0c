package pricing

import (
	"slices"

	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// DayEntry is one priced candidate for one night of the stay.
type DayEntry struct {
	Date        calendar.Date
	RatePlan    hotel.RatePlan
	Total       money.Money
	GuestPrices []GuestPrice
}

// StayMatrix holds candidate entries indexed by currency and night. Once
// built, every currency it exposes has at least one entry for every night.
type StayMatrix struct {
	nights     int
	currencies []string
	slots      map[string][][]DayEntry
}

func newStayMatrix(nights int) *StayMatrix {
	return &StayMatrix{
		nights: nights,
		slots:  make(map[string][][]DayEntry),
	}
}

func (m *StayMatrix) add(currency string, night int, e DayEntry) {
	days, ok := m.slots[currency]
	if !ok {
		days = make([][]DayEntry, m.nights)
		m.currencies = append(m.currencies, currency)
	}
	days[night] = append(days[night], e)
	m.slots[currency] = days
}

// Nights is the length of stay the matrix was built for.
func (m *StayMatrix) Nights() int { return m.nights }

// Currencies lists currencies in the order they were first seen.
func (m *StayMatrix) Currencies() []string {
	return slices.Clone(m.currencies)
}

// Days returns the per-night candidates for currency, or nil if absent.
func (m *StayMatrix) Days(currency string) [][]DayEntry {
	return m.slots[currency]
}

func (m *StayMatrix) IsEmpty() bool { return len(m.currencies) == 0 }

// Covers reports whether every night has at least one candidate in currency.
func (m *StayMatrix) Covers(currency string) bool {
	days, ok := m.slots[currency]
	if !ok {
		return false
	}
	for _, entries := range days {
		if len(entries) == 0 {
			return false
		}
	}
	return true
}

func (m *StayMatrix) dropIncomplete() {
	kept := m.currencies[:0]
	for _, c := range m.currencies {
		if m.Covers(c) {
			kept = append(kept, c)
			continue
		}
		delete(m.slots, c)
	}
	m.currencies = kept
}

// StayInput is the stay a matrix is built for.
type StayInput struct {
	ArrivalDate      calendar.Date
	DepartureDate    calendar.Date
	Guests           []hotel.Guest
	FallbackCurrency string
}

// ComputeDailyRatePlans prices every night of the stay under every candidate
// rate plan, grouped by the plan's currency. Currencies that leave any night
// without a candidate are removed.
func ComputeDailyRatePlans(in StayInput, ratePlans []hotel.RatePlan) *StayMatrix {
	lengthOfStay := calendar.Nights(in.ArrivalDate, in.DepartureDate)
	matrix := newStayMatrix(lengthOfStay)

	for night := 0; night < lengthOfStay; night++ {
		date := in.ArrivalDate.AddDays(night)
		for _, rp := range ratePlans {
			if !rp.IsTravelDate(date) {
				continue
			}
			currency := rp.EffectiveCurrency(in.FallbackCurrency)
			lines := ComputeDailyPrice(in.Guests, lengthOfStay, date, rp, currency)
			matrix.add(currency, night, DayEntry{
				Date:        date,
				RatePlan:    rp,
				Total:       sumResulting(currency, lines),
				GuestPrices: lines,
			})
		}
	}

	matrix.dropIncomplete()
	return matrix
}

func sumResulting(currency string, lines []GuestPrice) money.Money {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.ResultingPrice.Amount)
	}
	return money.New(total, currency)
}
