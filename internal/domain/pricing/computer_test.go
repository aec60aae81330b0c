//go:build unit

package pricing_test

import (
	"testing"

	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var doubleRoom = []hotel.RoomType{{ID: "double"}}

func priceRequest(guests ...hotel.Guest) pricing.PriceRequest {
	if len(guests) == 0 {
		guests = []hotel.Guest{{ID: "g1", Age: 30}}
	}
	return pricing.PriceRequest{
		BookingDate:   calendar.MustParse("2026-05-01"),
		ArrivalDate:   calendar.MustParse("2026-06-10"),
		DepartureDate: calendar.MustParse("2026-06-12"),
		Guests:        guests,
	}
}

func newComputer(t *testing.T, roomTypes []hotel.RoomType, plans ...hotel.RatePlan) *pricing.PriceComputer {
	t.Helper()
	pc, err := pricing.NewPriceComputer(roomTypes, plans, "CZK")
	require.NoError(t, err)
	return pc
}

func TestNewPriceComputer(t *testing.T) {
	plans := []hotel.RatePlan{builder.NewRatePlanBuilder().BuildDomain()}

	tests := []struct {
		name      string
		roomTypes []hotel.RoomType
		ratePlans []hotel.RatePlan
		currency  string
		wantErr   bool
	}{
		{name: "valid", roomTypes: doubleRoom, ratePlans: plans, currency: "CZK"},
		{name: "empty collections are allowed", roomTypes: []hotel.RoomType{}, ratePlans: []hotel.RatePlan{}, currency: "CZK"},
		{name: "missing room types", ratePlans: plans, currency: "CZK", wantErr: true},
		{name: "missing rate plans", roomTypes: doubleRoom, currency: "CZK", wantErr: true},
		{name: "missing default currency", roomTypes: doubleRoom, ratePlans: plans, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := pricing.NewPriceComputer(tt.roomTypes, tt.ratePlans, tt.currency)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, pricing.ErrPriceComputer))
				assert.Nil(t, pc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.currency, pc.DefaultCurrency())
		})
	}
}

func TestBestPrice(t *testing.T) {
	t.Run("single plan without modifiers", func(t *testing.T) {
		pc := newComputer(t, doubleRoom, builder.NewRatePlanBuilder().BuildDomain())

		got := pc.BestPrice(priceRequest())

		require.Len(t, got, 1)
		assert.Equal(t, "double", got[0].RoomTypeID)
		require.Len(t, got[0].Prices, 1)
		price := got[0].Prices[0]
		assert.Equal(t, "CZK", price.Currency)
		assert.Equal(t, "200 CZK", price.Total.String())
		assert.Nil(t, price.RatePlan)
		assert.Len(t, price.Components.Stay, 2)
	})

	t.Run("age discount on the cheaper plan", func(t *testing.T) {
		pc := newComputer(t, doubleRoom,
			builder.NewRatePlanBuilder().WithID("rp-100").BuildDomain(),
			builder.NewRatePlanBuilder().WithID("rp-60").WithPrice(60).
				WithModifiers(builder.Percentage(-50, builder.MaxAge(20))).BuildDomain(),
		)

		got := pc.BestPrice(priceRequest(hotel.Guest{ID: "a", Age: 18}, hotel.Guest{ID: "b", Age: 21}))

		price := got[0].Prices[0]
		assert.Equal(t, "180 CZK", price.Total.String())
		for _, night := range price.Components.Stay {
			assert.Equal(t, "90 CZK", night.Subtotal.String())
			assert.Equal(t, "rp-60", night.Guests[0].RatePlanID)
		}
	})

	t.Run("repeated calls return identical results", func(t *testing.T) {
		pc := newComputer(t, doubleRoom,
			builder.NewRatePlanBuilder().WithID("rp-100").BuildDomain(),
			builder.NewRatePlanBuilder().WithID("rp-60").WithPrice(60).
				WithModifiers(builder.Percentage(-50, builder.MaxAge(20))).BuildDomain(),
		)
		req := priceRequest(hotel.Guest{ID: "a", Age: 18}, hotel.Guest{ID: "b", Age: 21})

		first := pc.BestPrice(req)
		second := pc.BestPrice(req)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("BestPrice is not idempotent (-first +second):\n%s", diff)
		}
	})

	t.Run("nights may use different plans", func(t *testing.T) {
		pc := newComputer(t, doubleRoom,
			builder.NewRatePlanBuilder().WithID("first").WithTravelWindow("2026-06-10", "2026-06-10").BuildDomain(),
			builder.NewRatePlanBuilder().WithID("flex").WithPrice(150).BuildDomain(),
			builder.NewRatePlanBuilder().WithID("second").WithPrice(80).WithTravelWindow("2026-06-11", "2026-06-11").BuildDomain(),
		)

		price := pc.BestPrice(priceRequest())[0].Prices[0]

		assert.Equal(t, "180 CZK", price.Total.String())
		assert.Equal(t, "first", price.Components.Stay[0].Guests[0].RatePlanID)
		assert.Equal(t, "second", price.Components.Stay[1].Guests[0].RatePlanID)
	})

	t.Run("one price per covering currency", func(t *testing.T) {
		pc := newComputer(t, doubleRoom,
			builder.NewRatePlanBuilder().WithID("czk").BuildDomain(),
			builder.NewRatePlanBuilder().WithID("eur").WithCurrency("EUR").WithPrice(4).BuildDomain(),
		)

		prices := pc.BestPrice(priceRequest())[0].Prices
		var currencies []string
		for _, p := range prices {
			currencies = append(currencies, p.Currency)
		}
		if diff := cmp.Diff([]string{"CZK", "EUR"}, currencies); diff != "" {
			t.Errorf("currencies mismatch (-want +got):\n%s", diff)
		}

		req := priceRequest()
		req.Currency = "EUR"
		filtered := pc.BestPrice(req)[0].Prices
		require.Len(t, filtered, 1)
		assert.Equal(t, "8 EUR", filtered[0].Total.String())
	})

	t.Run("room types without plans get an empty price list", func(t *testing.T) {
		pc := newComputer(t, []hotel.RoomType{{ID: "double"}, {ID: "suite"}}, builder.NewRatePlanBuilder().BuildDomain())

		got := pc.BestPrice(priceRequest())

		require.Len(t, got, 2)
		assert.Equal(t, "suite", got[1].RoomTypeID)
		assert.NotNil(t, got[1].Prices)
		assert.Empty(t, got[1].Prices)
	})

	t.Run("room type filter", func(t *testing.T) {
		pc := newComputer(t, []hotel.RoomType{{ID: "double"}, {ID: "suite"}}, builder.NewRatePlanBuilder().BuildDomain())

		req := priceRequest()
		req.RoomTypeID = "suite"
		got := pc.BestPrice(req)

		require.Len(t, got, 1)
		assert.Equal(t, "suite", got[0].RoomTypeID)

		req.RoomTypeID = "unknown"
		assert.Empty(t, pc.BestPrice(req))
	})
}

func TestBestPriceWithSingleRatePlan(t *testing.T) {
	t.Run("cheapest plan covering the whole stay", func(t *testing.T) {
		pc := newComputer(t, doubleRoom,
			builder.NewRatePlanBuilder().WithID("first").WithTravelWindow("2026-06-10", "2026-06-10").BuildDomain(),
			builder.NewRatePlanBuilder().WithID("flex").WithPrice(150).BuildDomain(),
			builder.NewRatePlanBuilder().WithID("standard").WithPrice(120).BuildDomain(),
		)

		prices := pc.BestPriceWithSingleRatePlan(priceRequest())[0].Prices

		require.Len(t, prices, 1)
		require.NotNil(t, prices[0].RatePlan)
		assert.Equal(t, "standard", prices[0].RatePlan.ID)
		assert.Equal(t, "240 CZK", prices[0].Total.String())
	})

	t.Run("equal totals keep the first plan", func(t *testing.T) {
		pc := newComputer(t, doubleRoom,
			builder.NewRatePlanBuilder().WithID("a").BuildDomain(),
			builder.NewRatePlanBuilder().WithID("b").BuildDomain(),
		)

		prices := pc.BestPriceWithSingleRatePlan(priceRequest())[0].Prices
		assert.Equal(t, "a", prices[0].RatePlan.ID)
	})

	t.Run("no plan covers every night", func(t *testing.T) {
		pc := newComputer(t, doubleRoom,
			builder.NewRatePlanBuilder().WithID("first").WithTravelWindow("2026-06-10", "2026-06-10").BuildDomain(),
			builder.NewRatePlanBuilder().WithID("second").WithTravelWindow("2026-06-11", "2026-06-11").BuildDomain(),
		)

		assert.Empty(t, pc.BestPriceWithSingleRatePlan(priceRequest())[0].Prices)
	})
}

func TestPossiblePricesWithSingleRatePlan(t *testing.T) {
	pc := newComputer(t, doubleRoom,
		builder.NewRatePlanBuilder().WithID("rp-100").BuildDomain(),
		builder.NewRatePlanBuilder().WithID("partial").WithTravelWindow("2026-06-11", "2026-06-30").BuildDomain(),
		builder.NewRatePlanBuilder().WithID("rp-60").WithPrice(60).
			WithModifiers(builder.Percentage(-50, builder.MaxAge(20))).BuildDomain(),
	)

	prices := pc.PossiblePricesWithSingleRatePlan(priceRequest(hotel.Guest{ID: "a", Age: 18}, hotel.Guest{ID: "b", Age: 21}))[0].Prices

	var got []string
	for _, p := range prices {
		got = append(got, p.RatePlan.ID+"="+p.Total.String())
	}
	if diff := cmp.Diff([]string{"rp-100=400 CZK", "rp-60=180 CZK"}, got); diff != "" {
		t.Errorf("prices mismatch (-want +got):\n%s", diff)
	}
}
