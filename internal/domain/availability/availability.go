package availability

import (
	"errors"

	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/pkg/calendar"
)

var ErrDuplicateRecord = errors.New("duplicate availability record for room type and date")

// Index maps room type id and date to the availability record for that day.
type Index map[string]map[calendar.Date]hotel.AvailabilityRecord

func IndexAvailability(records []hotel.AvailabilityRecord) (Index, error) {
	idx := make(Index)
	for _, r := range records {
		days, ok := idx[r.RoomTypeID]
		if !ok {
			days = make(map[calendar.Date]hotel.AvailabilityRecord)
			idx[r.RoomTypeID] = days
		}
		if _, dup := days[r.Date]; dup {
			return nil, ErrDuplicateRecord
		}
		days[r.Date] = r
	}
	return idx, nil
}

func (idx Index) lookup(roomTypeID string, d calendar.Date) (hotel.AvailabilityRecord, bool) {
	r, ok := idx[roomTypeID][d]
	return r, ok
}

type StayQuery struct {
	ArrivalDate   calendar.Date
	DepartureDate calendar.Date
	GuestCount    int
}

// RoomTypeAvailability carries a nil Quantity when availability is unknown
// for at least one night of the stay.
type RoomTypeAvailability struct {
	RoomTypeID string
	Quantity   *int
}

// ComputeAvailability reduces daily quantities to the minimum over the stay.
// An arrival-day noArrival or a departure-day noDeparture restriction, or an
// occupancy range excluding the party, makes the room type unavailable.
func ComputeAvailability(q StayQuery, roomTypes []hotel.RoomType, idx Index) []RoomTypeAvailability {
	out := make([]RoomTypeAvailability, 0, len(roomTypes))
	for _, rt := range roomTypes {
		out = append(out, RoomTypeAvailability{
			RoomTypeID: rt.ID,
			Quantity:   roomTypeQuantity(q, rt, idx),
		})
	}
	return out
}

func roomTypeQuantity(q StayQuery, rt hotel.RoomType, idx Index) *int {
	if rt.Occupancy != nil && !rt.Occupancy.Allows(q.GuestCount) {
		return zero()
	}
	if r, ok := idx.lookup(rt.ID, q.ArrivalDate); ok && r.Restrictions != nil && r.Restrictions.NoArrival {
		return zero()
	}
	if r, ok := idx.lookup(rt.ID, q.DepartureDate); ok && r.Restrictions != nil && r.Restrictions.NoDeparture {
		return zero()
	}

	nights := calendar.Nights(q.ArrivalDate, q.DepartureDate)
	if nights == 0 {
		return nil
	}
	quantity := -1
	for i := 0; i < nights; i++ {
		r, ok := idx.lookup(rt.ID, q.ArrivalDate.AddDays(i))
		if !ok {
			return nil
		}
		if quantity < 0 || r.Quantity < quantity {
			quantity = r.Quantity
		}
	}
	return &quantity
}

func zero() *int {
	v := 0
	return &v
}
