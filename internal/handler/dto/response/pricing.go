package response

import (
	"hotel-pricing/internal/domain/availability"
	"hotel-pricing/internal/domain/cancellation"
	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/pkg/calendar"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ModifierResponse struct {
	Type            string          `json:"type"`
	Adjustment      decimal.Decimal `json:"adjustment"`
	From            *string         `json:"from,omitempty"`
	To              *string         `json:"to,omitempty"`
	MaxAge          *int            `json:"maxAge,omitempty"`
	MinLengthOfStay *int            `json:"minLengthOfStay,omitempty"`
	MinOccupants    *int            `json:"minOccupants,omitempty"`
}

type GuestPriceResponse struct {
	GuestID        string            `json:"guestId"`
	RatePlanID     string            `json:"ratePlanId"`
	BasePrice      decimal.Decimal   `json:"basePrice"`
	ResultingPrice decimal.Decimal   `json:"resultingPrice"`
	Modifier       *ModifierResponse `json:"modifier,omitempty"`
}

type StayComponentResponse struct {
	Date     string               `json:"date"`
	Subtotal decimal.Decimal      `json:"subtotal"`
	Guests   []GuestPriceResponse `json:"guests"`
}

type PriceResponse struct {
	Currency   string                  `json:"currency"`
	RatePlanID *string                 `json:"ratePlanId,omitempty"`
	Total      decimal.Decimal         `json:"total"`
	Stay       []StayComponentResponse `json:"stay"`
}

type RoomTypePricesResponse struct {
	RoomTypeID string          `json:"roomTypeId"`
	Prices     []PriceResponse `json:"prices"`
}

type QuoteResponse struct {
	RoomTypes []RoomTypePricesResponse `json:"roomTypes"`
}

// Quantity is null when the room type has no availability data for the stay.
type RoomTypeAvailabilityResponse struct {
	RoomTypeID string `json:"roomTypeId"`
	Quantity   *int   `json:"quantity"`
}

type AvailabilityResponse struct {
	RoomTypes []RoomTypeAvailabilityResponse `json:"roomTypes"`
}

type CancellationPeriodResponse struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

type CancellationFeesResponse struct {
	Periods []CancellationPeriodResponse `json:"periods"`
}

func FromRoomTypePrices(items []pricing.RoomTypePrices) QuoteResponse {
	out := QuoteResponse{RoomTypes: make([]RoomTypePricesResponse, 0, len(items))}
	for _, item := range items {
		rt := RoomTypePricesResponse{
			RoomTypeID: item.RoomTypeID,
			Prices:     make([]PriceResponse, 0, len(item.Prices)),
		}
		for _, p := range item.Prices {
			rt.Prices = append(rt.Prices, fromPrice(p))
		}
		out.RoomTypes = append(out.RoomTypes, rt)
	}
	return out
}

func fromPrice(p pricing.Price) PriceResponse {
	res := PriceResponse{
		Currency: p.Currency,
		Total:    p.Total.Amount,
		Stay:     make([]StayComponentResponse, 0, len(p.Components.Stay)),
	}
	if p.RatePlan != nil {
		id := p.RatePlan.ID
		res.RatePlanID = &id
	}
	for _, sc := range p.Components.Stay {
		comp := StayComponentResponse{
			Date:     sc.Date.String(),
			Subtotal: sc.Subtotal.Amount,
			Guests:   make([]GuestPriceResponse, 0, len(sc.Guests)),
		}
		for _, g := range sc.Guests {
			comp.Guests = append(comp.Guests, GuestPriceResponse{
				GuestID:        g.GuestID,
				RatePlanID:     g.RatePlanID,
				BasePrice:      g.BasePrice.Amount,
				ResultingPrice: g.ResultingPrice.Amount,
				Modifier:       fromModifier(g.Modifier),
			})
		}
		res.Stay = append(res.Stay, comp)
	}
	return res
}

func fromModifier(m *hotel.Modifier) *ModifierResponse {
	if m == nil {
		return nil
	}
	res := &ModifierResponse{
		Type:       m.Type.String(),
		Adjustment: m.Adjustment,
	}
	if m.Conditions != nil {
		res.From = dateString(m.Conditions.From)
		res.To = dateString(m.Conditions.To)
		res.MaxAge = m.Conditions.MaxAge
		res.MinLengthOfStay = m.Conditions.MinLengthOfStay
		res.MinOccupants = m.Conditions.MinOccupants
	}
	return res
}

func dateString(d *calendar.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func FromAvailability(items []availability.RoomTypeAvailability) (AvailabilityResponse, error) {
	out := AvailabilityResponse{RoomTypes: make([]RoomTypeAvailabilityResponse, 0, len(items))}
	if err := copier.Copy(&out.RoomTypes, &items); err != nil {
		return AvailabilityResponse{}, err
	}
	return out, nil
}

func FromCancellationPeriods(periods []cancellation.Period) CancellationFeesResponse {
	out := CancellationFeesResponse{Periods: make([]CancellationPeriodResponse, 0, len(periods))}
	for _, p := range periods {
		out.Periods = append(out.Periods, CancellationPeriodResponse{
			From:   p.From.String(),
			To:     p.To.String(),
			Amount: p.Amount,
		})
	}
	return out
}
