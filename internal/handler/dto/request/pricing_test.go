//go:build unit

package request_test

import (
	"testing"

	"hotel-pricing/internal/handler/dto/request"
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityRequest_ToParams(t *testing.T) {
	params, err := request.AvailabilityRequest{
		ArrivalDate:   "2026-06-10",
		DepartureDate: "2026-06-12T10:00:00+02:00",
		GuestCount:    3,
	}.ToParams("hotel-1")
	require.NoError(t, err)

	assert.Equal(t, queries.AvailabilityParams{
		HotelID:       "hotel-1",
		ArrivalDate:   calendar.MustParse("2026-06-10"),
		DepartureDate: calendar.MustParse("2026-06-12"),
		GuestCount:    3,
	}, params)

	_, err = request.AvailabilityRequest{ArrivalDate: "June 10", DepartureDate: "2026-06-12", GuestCount: 1}.ToParams("hotel-1")
	assert.Error(t, err)
}

func TestQuoteRequest_ToParams(t *testing.T) {
	age := 4
	blank := "  "
	params, err := request.QuoteRequest{
		Strategy:      "possible",
		BookingDate:   &blank,
		ArrivalDate:   "2026-06-10",
		DepartureDate: "2026-06-12",
		Guests:        []request.GuestRequest{{ID: " kid ", Age: &age}},
		Currency:      " EUR ",
	}.ToParams("hotel-1")
	require.NoError(t, err)

	assert.Equal(t, queries.StrategyPossibleRatePlans, params.Strategy)
	assert.Nil(t, params.BookingDate)
	assert.Equal(t, "kid", params.Guests[0].ID)
	assert.Equal(t, 4, params.Guests[0].Age)
	assert.Equal(t, "EUR", params.Currency)
}

func TestCancellationFeesRequest_ToParams(t *testing.T) {
	booking := "2026-05-01"
	params, err := request.CancellationFeesRequest{BookingDate: &booking, ArrivalDate: "2026-06-10"}.ToParams("hotel-1")
	require.NoError(t, err)
	require.NotNil(t, params.BookingDate)
	assert.Equal(t, "2026-05-01", params.BookingDate.String())

	bad := "01/05/2026"
	_, err = request.CancellationFeesRequest{BookingDate: &bad, ArrivalDate: "2026-06-10"}.ToParams("hotel-1")
	assert.Error(t, err)
}
