package converter

import (
	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/infra/catalog"
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/internal/pkg/ptr"
)

func HotelToDomain(rec catalog.HotelRecord) *hotel.Hotel {
	h := &hotel.Hotel{
		ID:                        rec.ID,
		Name:                      rec.Name,
		DefaultCurrency:           rec.DefaultCurrency,
		DefaultCancellationAmount: rec.DefaultCancellationAmount.Decimal,
	}

	if rec.RoomTypes != nil {
		h.RoomTypes = make([]hotel.RoomType, 0, len(rec.RoomTypes))
		for _, rt := range rec.RoomTypes {
			h.RoomTypes = append(h.RoomTypes, hotel.RoomType{
				ID: rt.ID,
				Occupancy: ptr.Map(rt.Occupancy, func(o catalog.OccupancyRecord) hotel.Occupancy {
					return hotel.Occupancy{Min: o.Min, Max: o.Max}
				}),
			})
		}
	}

	if rec.RatePlans != nil {
		h.RatePlans = make([]hotel.RatePlan, 0, len(rec.RatePlans))
		for _, rp := range rec.RatePlans {
			h.RatePlans = append(h.RatePlans, RatePlanToDomain(rp))
		}
	}

	for _, a := range rec.Availability {
		h.Availability = append(h.Availability, hotel.AvailabilityRecord{
			RoomTypeID: a.RoomTypeID,
			Date:       a.Date.Date,
			Quantity:   a.Quantity,
			Restrictions: ptr.Map(a.Restrictions, func(r catalog.AvailabilityRestrictionsRecord) hotel.AvailabilityRestrictions {
				return hotel.AvailabilityRestrictions{NoArrival: r.NoArrival, NoDeparture: r.NoDeparture}
			}),
		})
	}

	for _, p := range rec.CancellationPolicies {
		h.CancellationPolicies = append(h.CancellationPolicies, hotel.CancellationPolicy{
			From:     ptr.Map(p.From, toDate),
			To:       ptr.Map(p.To, toDate),
			Deadline: p.Deadline,
			Amount:   p.Amount.Decimal,
		})
	}

	return h
}

func RatePlanToDomain(rec catalog.RatePlanRecord) hotel.RatePlan {
	rp := hotel.RatePlan{
		ID:                      rec.ID,
		Price:                   rec.Price.Decimal,
		Currency:                rec.Currency,
		RoomTypeIDs:             rec.RoomTypeIDs,
		AvailableForReservation: ptr.Map(rec.AvailableForReservation, toWindow),
		AvailableForTravel:      ptr.Map(rec.AvailableForTravel, toWindow),
	}

	if r := rec.Restrictions; r != nil {
		rp.Restrictions = &hotel.Restrictions{
			BookingCutOff: ptr.Map(r.BookingCutOff, toBounds),
			LengthOfStay:  ptr.Map(r.LengthOfStay, toBounds),
		}
	}

	for _, m := range rec.Modifiers {
		rp.Modifiers = append(rp.Modifiers, hotel.Modifier{
			Type:       hotel.ModifierType(m.Type),
			Adjustment: m.Adjustment.Decimal,
			Conditions: ptr.Map(m.Conditions, toConditions),
		})
	}

	return rp
}

func toDate(d catalog.Date) calendar.Date {
	return d.Date
}

func toWindow(w catalog.WindowRecord) hotel.DateWindow {
	return hotel.DateWindow{From: w.From.Date, To: w.To.Date}
}

func toBounds(b catalog.BoundsRecord) hotel.Bounds {
	return hotel.Bounds{Min: b.Min, Max: b.Max}
}

func toConditions(c catalog.ConditionsRecord) hotel.ModifierConditions {
	return hotel.ModifierConditions{
		From:            ptr.Map(c.From, toDate),
		To:              ptr.Map(c.To, toDate),
		MinLengthOfStay: c.MinLengthOfStay,
		MinOccupants:    c.MinOccupants,
		MaxAge:          c.MaxAge,
	}
}
