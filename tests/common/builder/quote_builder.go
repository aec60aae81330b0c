//go:build unit

package builder

import (
	"hotel-pricing/internal/domain/hotel"
	reqdto "hotel-pricing/internal/handler/dto/request"
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/internal/pkg/ptr"
	"hotel-pricing/internal/usecase/queries"
)

type QuoteBuilder struct {
	HotelID       string
	Strategy      queries.Strategy
	BookingDate   string
	ArrivalDate   string
	DepartureDate string
	Guests        []hotel.Guest
	Currency      string
	RoomTypeID    string
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		HotelID:       "hotel-1",
		Strategy:      queries.StrategyBestPrice,
		BookingDate:   "2026-05-01",
		ArrivalDate:   "2026-06-10",
		DepartureDate: "2026-06-12",
		Guests:        []hotel.Guest{{ID: "g1", Age: 30}},
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *QuoteBuilder) BuildParams() queries.QuoteParams {
	params := queries.QuoteParams{
		HotelID:       b.HotelID,
		Strategy:      b.Strategy,
		ArrivalDate:   calendar.MustParse(b.ArrivalDate),
		DepartureDate: calendar.MustParse(b.DepartureDate),
		Guests:        b.Guests,
		Currency:      b.Currency,
		RoomTypeID:    b.RoomTypeID,
	}
	if b.BookingDate != "" {
		params.BookingDate = ptr.Of(calendar.MustParse(b.BookingDate))
	}
	return params
}

func (b *QuoteBuilder) BuildDTO() reqdto.QuoteRequest {
	req := reqdto.QuoteRequest{
		Strategy:      b.Strategy.String(),
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		Currency:      b.Currency,
		RoomTypeID:    b.RoomTypeID,
	}
	if b.BookingDate != "" {
		req.BookingDate = ptr.Of(b.BookingDate)
	}
	for _, g := range b.Guests {
		req.Guests = append(req.Guests, reqdto.GuestRequest{ID: g.ID, Age: ptr.Of(g.Age)})
	}
	return req
}
