//go:build unit

package pricing_test

import (
	"testing"

	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDailyPrice(t *testing.T) {
	date := calendar.MustParse("2026-06-10")
	guests := []hotel.Guest{{ID: "teen", Age: 18}, {ID: "adult", Age: 21}}

	t.Run("age modifier applies only to qualifying guests", func(t *testing.T) {
		plan := builder.NewRatePlanBuilder().
			WithID("rp-60").
			WithPrice(60).
			WithModifiers(builder.Percentage(-50, builder.MaxAge(20))).
			BuildDomain()

		lines := pricing.ComputeDailyPrice(guests, 2, date, plan, "CZK")
		require.Len(t, lines, 2)

		assert.Equal(t, "teen", lines[0].GuestID)
		assert.Equal(t, "rp-60", lines[0].RatePlanID)
		assert.Equal(t, "60 CZK", lines[0].BasePrice.String())
		assert.Equal(t, "30 CZK", lines[0].ResultingPrice.String())
		require.NotNil(t, lines[0].Modifier)
		assert.Equal(t, hotel.ModifierPercentage, lines[0].Modifier.Type)

		assert.Equal(t, "adult", lines[1].GuestID)
		assert.Equal(t, "60 CZK", lines[1].ResultingPrice.String())
		assert.Nil(t, lines[1].Modifier)
	})

	t.Run("occupancy modifier sees the whole party", func(t *testing.T) {
		plan := builder.NewRatePlanBuilder().
			WithModifiers(builder.Absolute(-25, builder.MinOccupants(2))).
			BuildDomain()

		lines := pricing.ComputeDailyPrice(guests, 1, date, plan, "EUR")
		for _, l := range lines {
			assert.Equal(t, "75 EUR", l.ResultingPrice.String())
		}

		alone := pricing.ComputeDailyPrice(guests[:1], 1, date, plan, "EUR")
		assert.Equal(t, "100 EUR", alone[0].ResultingPrice.String())
	})

	t.Run("resulting price is not clamped at zero", func(t *testing.T) {
		plan := builder.NewRatePlanBuilder().
			WithPrice(60).
			WithModifiers(builder.Absolute(-80, hotel.ModifierConditions{})).
			BuildDomain()

		lines := pricing.ComputeDailyPrice(guests[:1], 1, date, plan, "CZK")
		assert.Equal(t, "-20 CZK", lines[0].ResultingPrice.String())
	})

	t.Run("no guests yields no lines", func(t *testing.T) {
		lines := pricing.ComputeDailyPrice(nil, 1, date, builder.NewRatePlanBuilder().BuildDomain(), "CZK")
		assert.Empty(t, lines)
	})
}
