package request

import (
	"strings"

	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestRequest struct {
	ID  string `json:"id,omitempty"`
	Age *int   `json:"age" binding:"required,gte=0,lte=150"`
}

type QuoteRequest struct {
	Strategy      string         `json:"strategy" binding:"required,oneof=best best-single possible"`
	BookingDate   *string        `json:"bookingDate,omitempty"`
	ArrivalDate   string         `json:"arrivalDate" binding:"required"`
	DepartureDate string         `json:"departureDate" binding:"required"`
	Guests        []GuestRequest `json:"guests" binding:"required,min=1,max=50,dive"`
	Currency      string         `json:"currency,omitempty"`
	RoomTypeID    string         `json:"roomTypeId,omitempty"`
}

type AvailabilityRequest struct {
	ArrivalDate   string `json:"arrivalDate" binding:"required"`
	DepartureDate string `json:"departureDate" binding:"required"`
	GuestCount    int    `json:"guestCount" binding:"required,min=1,max=50"`
}

type CancellationFeesRequest struct {
	BookingDate *string `json:"bookingDate,omitempty"`
	ArrivalDate string  `json:"arrivalDate" binding:"required"`
}

// ToParams converts the request to query params. Guests sent without an id
// receive a generated one so every priced line can be attributed.
func (r QuoteRequest) ToParams(hotelID string) (queries.QuoteParams, error) {
	arrival, departure, err := parseStay(r.ArrivalDate, r.DepartureDate)
	if err != nil {
		return queries.QuoteParams{}, err
	}
	booking, err := parseOptionalDate(r.BookingDate)
	if err != nil {
		return queries.QuoteParams{}, err
	}

	guests := make([]hotel.Guest, 0, len(r.Guests))
	for _, g := range r.Guests {
		guest := hotel.Guest{ID: strings.TrimSpace(g.ID)}
		if guest.ID == "" {
			guest.ID = uuid.NewString()
		}
		if g.Age != nil {
			guest.Age = *g.Age
		}
		guests = append(guests, guest)
	}

	return queries.QuoteParams{
		HotelID:       hotelID,
		Strategy:      queries.Strategy(r.Strategy),
		BookingDate:   booking,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Guests:        guests,
		Currency:      strings.TrimSpace(r.Currency),
		RoomTypeID:    strings.TrimSpace(r.RoomTypeID),
	}, nil
}

func (r AvailabilityRequest) ToParams(hotelID string) (queries.AvailabilityParams, error) {
	var params queries.AvailabilityParams
	if err := copier.CopyWithOption(&params, &r, copier.Option{Converters: dateConverters}); err != nil {
		return queries.AvailabilityParams{}, errs.Wrap(err, "stay dates")
	}
	params.HotelID = hotelID
	return params, nil
}

var dateConverters = []copier.TypeConverter{
	{
		SrcType: copier.String,
		DstType: calendar.Date{},
		Fn: func(src any) (any, error) {
			s, ok := src.(string)
			if !ok {
				return nil, calendar.ErrInvalidDate
			}
			return calendar.Parse(s)
		},
	},
}

func (r CancellationFeesRequest) ToParams(hotelID string) (queries.CancellationParams, error) {
	arrival, err := calendar.Parse(r.ArrivalDate)
	if err != nil {
		return queries.CancellationParams{}, errs.Wrap(err, "arrivalDate")
	}
	booking, err := parseOptionalDate(r.BookingDate)
	if err != nil {
		return queries.CancellationParams{}, err
	}
	return queries.CancellationParams{
		HotelID:     hotelID,
		BookingDate: booking,
		ArrivalDate: arrival,
	}, nil
}

func parseStay(arrival, departure string) (calendar.Date, calendar.Date, error) {
	a, err := calendar.Parse(arrival)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, errs.Wrap(err, "arrivalDate")
	}
	d, err := calendar.Parse(departure)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, errs.Wrap(err, "departureDate")
	}
	return a, d, nil
}

func parseOptionalDate(s *string) (*calendar.Date, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := calendar.Parse(*s)
	if err != nil {
		return nil, errs.Wrap(err, "bookingDate")
	}
	return &d, nil
}
