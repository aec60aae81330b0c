package queries

import (
	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/pkg/calendar"
)

type Strategy string

const (
	StrategyBestPrice          Strategy = "best"
	StrategyBestSingleRatePlan Strategy = "best-single"
	StrategyPossibleRatePlans  Strategy = "possible"
)

func (s Strategy) String() string {
	return string(s)
}

func (s Strategy) IsValid() bool {
	switch s {
	case StrategyBestPrice, StrategyBestSingleRatePlan, StrategyPossibleRatePlans:
		return true
	default:
		return false
	}
}

// QuoteParams is a price enquiry for one hotel. A nil BookingDate means today.
type QuoteParams struct {
	HotelID       string
	Strategy      Strategy
	BookingDate   *calendar.Date
	ArrivalDate   calendar.Date
	DepartureDate calendar.Date
	Guests        []hotel.Guest
	Currency      string
	RoomTypeID    string
}

type AvailabilityParams struct {
	HotelID       string
	ArrivalDate   calendar.Date
	DepartureDate calendar.Date
	GuestCount    int
}

type CancellationParams struct {
	HotelID     string
	BookingDate *calendar.Date
	ArrivalDate calendar.Date
}
