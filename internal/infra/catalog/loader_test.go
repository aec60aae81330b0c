//go:build unit

package catalog_test

import (
	"strings"
	"testing"

	"hotel-pricing/internal/infra/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	f, err := catalog.LoadFile("testdata/catalog.yaml")
	require.NoError(t, err)
	require.Len(t, f.Hotels, 2)

	h := f.Hotels[0]
	assert.Equal(t, "hotel-1", h.ID)
	assert.Equal(t, "CZK", h.DefaultCurrency)
	assert.Equal(t, "100", h.DefaultCancellationAmount.String())
	require.Len(t, h.RoomTypes, 2)
	require.NotNil(t, h.RoomTypes[0].Occupancy)
	assert.Equal(t, 3, h.RoomTypes[0].Occupancy.Max)
	assert.Nil(t, h.RoomTypes[1].Occupancy)

	require.Len(t, h.RatePlans, 2)
	early := h.RatePlans[1]
	assert.Equal(t, "60.5", early.Price.String())
	assert.Empty(t, early.Currency)
	assert.Equal(t, []string{"double"}, early.RoomTypeIDs)
	require.NotNil(t, early.AvailableForTravel)
	assert.Equal(t, "2026-06-01", early.AvailableForTravel.From.String())
	require.NotNil(t, early.Restrictions)
	require.NotNil(t, early.Restrictions.BookingCutOff)
	assert.Equal(t, 14, *early.Restrictions.BookingCutOff.Min)
	assert.Nil(t, early.Restrictions.BookingCutOff.Max)
	require.Len(t, early.Modifiers, 2)
	assert.Equal(t, "-50", early.Modifiers[0].Adjustment.String())
	assert.Equal(t, 12, *early.Modifiers[0].Conditions.MaxAge)
	assert.Equal(t, "2026-06-30", early.Modifiers[1].Conditions.To.String())

	require.Len(t, h.Availability, 2)
	assert.True(t, h.Availability[1].Restrictions.NoDeparture)
	require.Len(t, h.CancellationPolicies, 2)
	assert.Nil(t, h.CancellationPolicies[0].From)
	assert.Equal(t, 30, h.CancellationPolicies[1].Deadline)

	assert.Nil(t, f.Hotels[1].RatePlans)
}

func TestDecode(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		f, err := catalog.Decode(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, f.Hotels)
	})

	t.Run("json is accepted", func(t *testing.T) {
		f, err := catalog.Decode(strings.NewReader(`{"hotels":[{"id":"h","defaultCurrency":"EUR","ratePlans":[{"id":"rp","price":"12.30","roomTypeIds":["r"]}]}]}`))
		require.NoError(t, err)
		require.Len(t, f.Hotels, 1)
		assert.Equal(t, "12.3", f.Hotels[0].RatePlans[0].Price.String())
	})

	errorCases := []struct {
		name string
		doc  string
	}{
		{name: "unknown field", doc: "hotels:\n  - id: h\n    currency: EUR\n"},
		{name: "invalid date", doc: "hotels:\n  - id: h\n    availability:\n      - { roomTypeId: r, date: 10.06.2026, quantity: 1 }\n"},
		{name: "invalid amount", doc: "hotels:\n  - id: h\n    ratePlans:\n      - { id: rp, price: cheap }\n"},
		{name: "malformed yaml", doc: "hotels: [\n"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Decode(strings.NewReader(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := catalog.LoadFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
