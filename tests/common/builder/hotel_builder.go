//go:build unit

package builder

import (
	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/pkg/calendar"

	"github.com/shopspring/decimal"
)

type HotelBuilder struct {
	ID                        string
	Name                      string
	DefaultCurrency           string
	RoomTypes                 []hotel.RoomType
	RatePlans                 []hotel.RatePlan
	Availability              []hotel.AvailabilityRecord
	CancellationPolicies      []hotel.CancellationPolicy
	DefaultCancellationAmount decimal.Decimal
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:              "hotel-1",
		Name:            "Test Hotel",
		DefaultCurrency: "CZK",
		RoomTypes: []hotel.RoomType{
			{ID: "double", Occupancy: &hotel.Occupancy{Min: 1, Max: 3}},
		},
		RatePlans:                 []hotel.RatePlan{NewRatePlanBuilder().BuildDomain()},
		DefaultCancellationAmount: decimal.NewFromInt(100),
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) WithRatePlans(plans ...hotel.RatePlan) *HotelBuilder {
	b.RatePlans = plans
	return b
}

func (b *HotelBuilder) WithAvailability(roomTypeID string, quantities map[string]int) *HotelBuilder {
	for date, qty := range quantities {
		b.Availability = append(b.Availability, hotel.AvailabilityRecord{
			RoomTypeID: roomTypeID,
			Date:       calendar.MustParse(date),
			Quantity:   qty,
		})
	}
	return b
}

func (b *HotelBuilder) WithCancellationPolicy(deadline int, amount int64) *HotelBuilder {
	b.CancellationPolicies = append(b.CancellationPolicies, hotel.CancellationPolicy{
		Deadline: deadline,
		Amount:   decimal.NewFromInt(amount),
	})
	return b
}

// Build methods
func (b *HotelBuilder) BuildDomain() *hotel.Hotel {
	return &hotel.Hotel{
		ID:                        b.ID,
		Name:                      b.Name,
		DefaultCurrency:           b.DefaultCurrency,
		RoomTypes:                 b.RoomTypes,
		RatePlans:                 b.RatePlans,
		Availability:              b.Availability,
		CancellationPolicies:      b.CancellationPolicies,
		DefaultCancellationAmount: b.DefaultCancellationAmount,
	}
}
