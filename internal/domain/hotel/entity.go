package hotel

import (
	"slices"

	"hotel-pricing/internal/pkg/calendar"

	"github.com/shopspring/decimal"
)

type RoomType struct {
	ID        string
	Occupancy *Occupancy
}

type RatePlan struct {
	ID                      string
	Price                   decimal.Decimal
	Currency                string
	RoomTypeIDs             []string
	AvailableForReservation *DateWindow
	AvailableForTravel      *DateWindow
	Restrictions            *Restrictions
	Modifiers               []Modifier
}

// EffectiveCurrency falls back to the hotel default when the plan declares none.
func (rp RatePlan) EffectiveCurrency(fallback string) string {
	if rp.Currency != "" {
		return rp.Currency
	}
	return fallback
}

func (rp RatePlan) AppliesTo(roomTypeID string) bool {
	return slices.Contains(rp.RoomTypeIDs, roomTypeID)
}

// IsTravelDate re-evaluates a single stay date. Plans without a travel window
// are valid for any date.
func (rp RatePlan) IsTravelDate(d calendar.Date) bool {
	if rp.AvailableForTravel == nil {
		return true
	}
	return rp.AvailableForTravel.Contains(d)
}

type CancellationPolicy struct {
	From     *calendar.Date
	To       *calendar.Date
	Deadline int
	Amount   decimal.Decimal
}

type AvailabilityRestrictions struct {
	NoArrival   bool
	NoDeparture bool
}

type AvailabilityRecord struct {
	RoomTypeID   string
	Date         calendar.Date
	Quantity     int
	Restrictions *AvailabilityRestrictions
}

// Hotel bundles the static configuration every calculation reads from.
type Hotel struct {
	ID                        string
	Name                      string
	DefaultCurrency           string
	RoomTypes                 []RoomType
	RatePlans                 []RatePlan
	Availability              []AvailabilityRecord
	CancellationPolicies      []CancellationPolicy
	DefaultCancellationAmount decimal.Decimal
}

func (h *Hotel) RoomType(id string) (RoomType, bool) {
	for _, rt := range h.RoomTypes {
		if rt.ID == id {
			return rt, true
		}
	}
	return RoomType{}, false
}
