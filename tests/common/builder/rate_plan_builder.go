//go:build unit

package builder

import (
	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/internal/pkg/ptr"

	"github.com/shopspring/decimal"
)

type RatePlanBuilder struct {
	ID                      string
	Price                   decimal.Decimal
	Currency                string
	RoomTypeIDs             []string
	AvailableForReservation *hotel.DateWindow
	AvailableForTravel      *hotel.DateWindow
	Restrictions            *hotel.Restrictions
	Modifiers               []hotel.Modifier
}

func NewRatePlanBuilder() *RatePlanBuilder {
	return &RatePlanBuilder{
		ID:          "standard",
		Price:       decimal.NewFromInt(100),
		Currency:    "CZK",
		RoomTypeIDs: []string{"double"},
	}
}

func (b *RatePlanBuilder) With(mutate func(*RatePlanBuilder)) *RatePlanBuilder {
	mutate(b)
	return b
}

func (b *RatePlanBuilder) WithID(id string) *RatePlanBuilder {
	b.ID = id
	return b
}

func (b *RatePlanBuilder) WithPrice(price int64) *RatePlanBuilder {
	b.Price = decimal.NewFromInt(price)
	return b
}

func (b *RatePlanBuilder) WithCurrency(currency string) *RatePlanBuilder {
	b.Currency = currency
	return b
}

func (b *RatePlanBuilder) WithRoomTypes(ids ...string) *RatePlanBuilder {
	b.RoomTypeIDs = ids
	return b
}

func (b *RatePlanBuilder) WithReservationWindow(from, to string) *RatePlanBuilder {
	b.AvailableForReservation = &hotel.DateWindow{From: calendar.MustParse(from), To: calendar.MustParse(to)}
	return b
}

func (b *RatePlanBuilder) WithTravelWindow(from, to string) *RatePlanBuilder {
	b.AvailableForTravel = &hotel.DateWindow{From: calendar.MustParse(from), To: calendar.MustParse(to)}
	return b
}

func (b *RatePlanBuilder) WithBookingCutOff(minDays, maxDays *int) *RatePlanBuilder {
	b.ensureRestrictions().BookingCutOff = &hotel.Bounds{Min: minDays, Max: maxDays}
	return b
}

func (b *RatePlanBuilder) WithLengthOfStay(minNights, maxNights *int) *RatePlanBuilder {
	b.ensureRestrictions().LengthOfStay = &hotel.Bounds{Min: minNights, Max: maxNights}
	return b
}

func (b *RatePlanBuilder) WithModifiers(mods ...hotel.Modifier) *RatePlanBuilder {
	b.Modifiers = append(b.Modifiers, mods...)
	return b
}

func (b *RatePlanBuilder) ensureRestrictions() *hotel.Restrictions {
	if b.Restrictions == nil {
		b.Restrictions = &hotel.Restrictions{}
	}
	return b.Restrictions
}

// Build methods
func (b *RatePlanBuilder) BuildDomain() hotel.RatePlan {
	return hotel.RatePlan{
		ID:                      b.ID,
		Price:                   b.Price,
		Currency:                b.Currency,
		RoomTypeIDs:             b.RoomTypeIDs,
		AvailableForReservation: b.AvailableForReservation,
		AvailableForTravel:      b.AvailableForTravel,
		Restrictions:            b.Restrictions,
		Modifiers:               b.Modifiers,
	}
}

// Modifier helpers

func Percentage(adjustment int64, conditions hotel.ModifierConditions) hotel.Modifier {
	return hotel.Modifier{
		Type:       hotel.ModifierPercentage,
		Adjustment: decimal.NewFromInt(adjustment),
		Conditions: &conditions,
	}
}

func Absolute(adjustment int64, conditions hotel.ModifierConditions) hotel.Modifier {
	return hotel.Modifier{
		Type:       hotel.ModifierAbsolute,
		Adjustment: decimal.NewFromInt(adjustment),
		Conditions: &conditions,
	}
}

func MaxAge(age int) hotel.ModifierConditions {
	return hotel.ModifierConditions{MaxAge: ptr.Of(age)}
}

func MinLengthOfStay(nights int) hotel.ModifierConditions {
	return hotel.ModifierConditions{MinLengthOfStay: ptr.Of(nights)}
}

func MinOccupants(guests int) hotel.ModifierConditions {
	return hotel.ModifierConditions{MinOccupants: ptr.Of(guests)}
}
