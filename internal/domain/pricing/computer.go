package pricing

import (
	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var ErrPriceComputer = errs.New("price computer misconfigured")

// PriceRequest is a single booking enquiry. Currency and RoomTypeID are
// optional filters.
type PriceRequest struct {
	BookingDate   calendar.Date
	ArrivalDate   calendar.Date
	DepartureDate calendar.Date
	Guests        []hotel.Guest
	Currency      string
	RoomTypeID    string
}

type StayComponent struct {
	Date     calendar.Date
	Subtotal money.Money
	Guests   []GuestPrice
}

type Components struct {
	Stay []StayComponent
}

// Price is one offer in one currency. RatePlan is nil for blended prices
// where nights may come from different plans.
type Price struct {
	Currency   string
	RatePlan   *hotel.RatePlan
	Total      money.Money
	Components Components
}

type RoomTypePrices struct {
	RoomTypeID string
	Prices     []Price
}

// PriceComputer resolves stay prices for a fixed hotel configuration. It is
// immutable and safe for concurrent use.
type PriceComputer struct {
	roomTypes       []hotel.RoomType
	ratePlans       []hotel.RatePlan
	defaultCurrency string
}

func NewPriceComputer(roomTypes []hotel.RoomType, ratePlans []hotel.RatePlan, defaultCurrency string) (*PriceComputer, error) {
	if roomTypes == nil {
		return nil, errs.Mark(errs.New("room types are required"), ErrPriceComputer)
	}
	if ratePlans == nil {
		return nil, errs.Mark(errs.New("rate plans are required"), ErrPriceComputer)
	}
	if defaultCurrency == "" {
		return nil, errs.Mark(errs.New("default currency is required"), ErrPriceComputer)
	}
	return &PriceComputer{
		roomTypes:       roomTypes,
		ratePlans:       ratePlans,
		defaultCurrency: defaultCurrency,
	}, nil
}

func (pc *PriceComputer) DefaultCurrency() string { return pc.defaultCurrency }

// BestPrice combines the cheapest candidate of every night, so different
// nights may use different rate plans.
func (pc *PriceComputer) BestPrice(req PriceRequest) []RoomTypePrices {
	return pc.resolve(req, func(m *StayMatrix, currency string) []Price {
		days := m.Days(currency)
		stay := make([]StayComponent, 0, len(days))
		total := money.Zero(currency)
		for _, entries := range days {
			best := entries[0]
			for _, e := range entries[1:] {
				if e.Total.LessThan(best.Total) {
					best = e
				}
			}
			total = total.Plus(best.Total.Amount)
			stay = append(stay, stayComponent(best))
		}
		return []Price{{
			Currency:   currency,
			Total:      total,
			Components: Components{Stay: stay},
		}}
	})
}

// BestPriceWithSingleRatePlan returns, per currency, the cheapest rate plan
// that covers every night on its own.
func (pc *PriceComputer) BestPriceWithSingleRatePlan(req PriceRequest) []RoomTypePrices {
	return pc.resolve(req, func(m *StayMatrix, currency string) []Price {
		candidates := singleRatePlanPrices(m, currency)
		if len(candidates) == 0 {
			return nil
		}
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.Total.LessThan(best.Total) {
				best = c
			}
		}
		return []Price{best}
	})
}

// PossiblePricesWithSingleRatePlan returns every rate plan that covers every
// night on its own, in the order plans were first seen.
func (pc *PriceComputer) PossiblePricesWithSingleRatePlan(req PriceRequest) []RoomTypePrices {
	return pc.resolve(req, singleRatePlanPrices)
}

type reducer func(m *StayMatrix, currency string) []Price

func (pc *PriceComputer) resolve(req PriceRequest, reduce reducer) []RoomTypePrices {
	result := make([]RoomTypePrices, 0, len(pc.roomTypes))
	for _, rtm := range pc.determinePrices(req) {
		prices := make([]Price, 0)
		if rtm.matrix != nil {
			for _, currency := range rtm.matrix.Currencies() {
				prices = append(prices, reduce(rtm.matrix, currency)...)
			}
		}
		result = append(result, RoomTypePrices{RoomTypeID: rtm.roomTypeID, Prices: prices})
	}
	return result
}

type roomTypeMatrix struct {
	roomTypeID string
	matrix     *StayMatrix
}

func (pc *PriceComputer) determinePrices(req PriceRequest) []roomTypeMatrix {
	out := make([]roomTypeMatrix, 0, len(pc.roomTypes))
	for _, rt := range pc.roomTypes {
		if req.RoomTypeID != "" && rt.ID != req.RoomTypeID {
			continue
		}
		plans := SelectApplicableRatePlans(SelectionInput{
			RoomTypeID:        rt.ID,
			BookingDate:       req.BookingDate,
			ArrivalDate:       req.ArrivalDate,
			DepartureDate:     req.DepartureDate,
			FallbackCurrency:  pc.defaultCurrency,
			PreferredCurrency: req.Currency,
		}, pc.ratePlans)

		rtm := roomTypeMatrix{roomTypeID: rt.ID}
		if len(plans) > 0 {
			rtm.matrix = ComputeDailyRatePlans(StayInput{
				ArrivalDate:      req.ArrivalDate,
				DepartureDate:    req.DepartureDate,
				Guests:           req.Guests,
				FallbackCurrency: pc.defaultCurrency,
			}, plans)
		}
		out = append(out, rtm)
	}
	return out
}

type planStay struct {
	plan    hotel.RatePlan
	entries []DayEntry
}

func singleRatePlanPrices(m *StayMatrix, currency string) []Price {
	var order []string
	byPlan := map[string]*planStay{}
	for _, entries := range m.Days(currency) {
		for _, e := range entries {
			ps, ok := byPlan[e.RatePlan.ID]
			if !ok {
				ps = &planStay{plan: e.RatePlan}
				byPlan[e.RatePlan.ID] = ps
				order = append(order, e.RatePlan.ID)
			}
			ps.entries = append(ps.entries, e)
		}
	}

	prices := make([]Price, 0, len(order))
	for _, id := range order {
		ps := byPlan[id]
		if len(ps.entries) != m.Nights() {
			continue
		}
		total := decimal.Zero
		stay := make([]StayComponent, 0, len(ps.entries))
		for _, e := range ps.entries {
			total = total.Add(e.Total.Amount)
			stay = append(stay, stayComponent(e))
		}
		plan := ps.plan
		prices = append(prices, Price{
			Currency:   currency,
			RatePlan:   &plan,
			Total:      money.New(total, currency),
			Components: Components{Stay: stay},
		})
	}
	return prices
}

func stayComponent(e DayEntry) StayComponent {
	return StayComponent{
		Date:     e.Date,
		Subtotal: e.Total,
		Guests:   e.GuestPrices,
	}
}
