//go:build unit

package converter_test

import (
	"testing"

	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/infra/catalog"
	"hotel-pricing/internal/infra/converter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadHotel(t *testing.T, idx int) catalog.HotelRecord {
	t.Helper()
	f, err := catalog.LoadFile("../catalog/testdata/catalog.yaml")
	require.NoError(t, err)
	return f.Hotels[idx]
}

func TestHotelToDomain(t *testing.T) {
	h := converter.HotelToDomain(loadHotel(t, 0))

	assert.Equal(t, "hotel-1", h.ID)
	assert.Equal(t, "100", h.DefaultCancellationAmount.String())

	rt, ok := h.RoomType("double")
	require.True(t, ok)
	assert.Equal(t, &hotel.Occupancy{Min: 1, Max: 3}, rt.Occupancy)
	_, ok = h.RoomType("penthouse")
	assert.False(t, ok)

	require.Len(t, h.RatePlans, 2)
	early := h.RatePlans[1]
	assert.Equal(t, "CZK", early.EffectiveCurrency(h.DefaultCurrency))
	assert.True(t, early.AppliesTo("double"))
	assert.False(t, early.AppliesTo("suite"))
	require.NotNil(t, early.Restrictions.LengthOfStay)
	assert.Equal(t, 14, *early.Restrictions.LengthOfStay.Max)

	require.Len(t, early.Modifiers, 2)
	assert.Equal(t, hotel.ModifierPercentage, early.Modifiers[0].Type)
	assert.True(t, early.Modifiers[0].Conditions.IsAgeSpecific())
	assert.Equal(t, hotel.ModifierAbsolute, early.Modifiers[1].Type)
	assert.Equal(t, "2026-06-01", early.Modifiers[1].Conditions.From.String())

	require.Len(t, h.Availability, 2)
	assert.Nil(t, h.Availability[0].Restrictions)
	assert.True(t, h.Availability[1].Restrictions.NoDeparture)

	require.Len(t, h.CancellationPolicies, 2)
	assert.Equal(t, "2026-12-20", h.CancellationPolicies[1].From.String())
}

func TestHotelToDomain_MissingCollectionsStayNil(t *testing.T) {
	h := converter.HotelToDomain(loadHotel(t, 1))

	assert.Nil(t, h.RoomTypes)
	assert.Nil(t, h.RatePlans)
	assert.Empty(t, h.Availability)
	assert.True(t, h.DefaultCancellationAmount.IsZero())
}
