package queries

import (
	"context"
	"log/slog"
	"time"

	"hotel-pricing/internal/domain/availability"
	"hotel-pricing/internal/domain/cancellation"
	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/internal/pkg/clock"
	"hotel-pricing/internal/pkg/config"
	"hotel-pricing/internal/pkg/errs"
)

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing.go -package=queriesmock

type HotelReadStore interface {
	FindByID(ctx context.Context, id string) (*hotel.Hotel, error)
}

type PricingQueries interface {
	Quote(ctx context.Context, params QuoteParams) ([]pricing.RoomTypePrices, error)
	Availability(ctx context.Context, params AvailabilityParams) ([]availability.RoomTypeAvailability, error)
	CancellationFees(ctx context.Context, params CancellationParams) ([]cancellation.Period, error)
}

type pricingQueriesImpl struct {
	store     HotelReadStore
	clock     clock.Clock
	loc       *time.Location
	maxNights int
	logger    *slog.Logger
}

func NewPricingQueries(store HotelReadStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) (PricingQueries, error) {
	loc, err := cfg.Catalog.Location()
	if err != nil {
		return nil, err
	}
	return &pricingQueriesImpl{
		store:     store,
		clock:     clk,
		loc:       loc,
		maxNights: cfg.Query.MaxStayNights,
		logger:    logger,
	}, nil
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, params QuoteParams) ([]pricing.RoomTypePrices, error) {
	if !params.Strategy.IsValid() {
		return nil, errs.Mark(errs.Newf("strategy %q", params.Strategy), errs.ErrUnknownStrategy)
	}
	if err := q.validateStay(params.ArrivalDate, params.DepartureDate); err != nil {
		return nil, err
	}
	if len(params.Guests) == 0 {
		return nil, errs.Mark(errs.New("at least one guest is required"), errs.ErrInvalidQuery)
	}

	h, err := q.findHotel(ctx, params.HotelID)
	if err != nil {
		return nil, err
	}

	computer, err := pricing.NewPriceComputer(h.RoomTypes, h.RatePlans, h.DefaultCurrency)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "hotel %s", h.ID), errs.ErrPricingUnavailable)
	}

	req := pricing.PriceRequest{
		BookingDate:   q.bookingDate(params.BookingDate),
		ArrivalDate:   params.ArrivalDate,
		DepartureDate: params.DepartureDate,
		Guests:        params.Guests,
		Currency:      params.Currency,
		RoomTypeID:    params.RoomTypeID,
	}

	var result []pricing.RoomTypePrices
	switch params.Strategy {
	case StrategyBestPrice:
		result = computer.BestPrice(req)
	case StrategyBestSingleRatePlan:
		result = computer.BestPriceWithSingleRatePlan(req)
	case StrategyPossibleRatePlans:
		result = computer.PossiblePricesWithSingleRatePlan(req)
	}

	q.logger.DebugContext(ctx, "quote computed",
		slog.String("hotel_id", h.ID),
		slog.String("strategy", params.Strategy.String()),
		slog.String("booking_date", req.BookingDate.String()),
		slog.Int("room_types", len(result)),
	)
	return result, nil
}

func (q *pricingQueriesImpl) Availability(ctx context.Context, params AvailabilityParams) ([]availability.RoomTypeAvailability, error) {
	if err := q.validateStay(params.ArrivalDate, params.DepartureDate); err != nil {
		return nil, err
	}
	if params.GuestCount <= 0 {
		return nil, errs.Mark(errs.New("guest count must be positive"), errs.ErrInvalidQuery)
	}

	h, err := q.findHotel(ctx, params.HotelID)
	if err != nil {
		return nil, err
	}

	idx, err := availability.IndexAvailability(h.Availability)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "hotel %s", h.ID), errs.ErrAvailabilityCorrupted)
	}

	return availability.ComputeAvailability(availability.StayQuery{
		ArrivalDate:   params.ArrivalDate,
		DepartureDate: params.DepartureDate,
		GuestCount:    params.GuestCount,
	}, h.RoomTypes, idx), nil
}

func (q *pricingQueriesImpl) CancellationFees(ctx context.Context, params CancellationParams) ([]cancellation.Period, error) {
	if params.ArrivalDate.IsZero() {
		return nil, errs.Mark(errs.New("arrival date is required"), errs.ErrInvalidQuery)
	}

	h, err := q.findHotel(ctx, params.HotelID)
	if err != nil {
		return nil, err
	}

	bookingDate := q.bookingDate(params.BookingDate)
	if bookingDate.After(params.ArrivalDate) {
		return nil, errs.Mark(errs.New("booking date is after arrival"), errs.ErrInvalidQuery)
	}

	return cancellation.ComputeCancellationFees(
		bookingDate,
		params.ArrivalDate,
		h.CancellationPolicies,
		h.DefaultCancellationAmount,
	), nil
}

func (q *pricingQueriesImpl) findHotel(ctx context.Context, id string) (*hotel.Hotel, error) {
	h, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHotelNotFound)
		}
		return nil, errs.Mark(err, errs.ErrCatalogOperationFailed)
	}
	return h, nil
}

func (q *pricingQueriesImpl) bookingDate(d *calendar.Date) calendar.Date {
	if d != nil && !d.IsZero() {
		return *d
	}
	return clock.Today(q.clock, q.loc)
}

// validateStay also caps the stay length; a non-positive maxNights disables the cap.
func (q *pricingQueriesImpl) validateStay(arrival, departure calendar.Date) error {
	if arrival.IsZero() || departure.IsZero() {
		return errs.Mark(errs.New("arrival and departure dates are required"), errs.ErrInvalidQuery)
	}
	if !departure.After(arrival) {
		return errs.Mark(errs.New("departure must be after arrival"), errs.ErrInvalidQuery)
	}
	if nights := calendar.Nights(arrival, departure); q.maxNights > 0 && nights > q.maxNights {
		return errs.Mark(errs.Newf("stay of %d nights exceeds the maximum of %d", nights, q.maxNights), errs.ErrInvalidQuery)
	}
	return nil
}
