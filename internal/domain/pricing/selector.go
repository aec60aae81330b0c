package pricing

import (
	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/pkg/calendar"
)

// SelectionInput describes the booking a rate plan must be sellable for.
type SelectionInput struct {
	RoomTypeID        string
	BookingDate       calendar.Date
	ArrivalDate       calendar.Date
	DepartureDate     calendar.Date
	FallbackCurrency  string
	PreferredCurrency string
}

// SelectApplicableRatePlans keeps, in input order, the plans usable for the
// room type and stay. The travel window check is a coarse overlap test; the
// per-night check happens while building the stay matrix.
func SelectApplicableRatePlans(in SelectionInput, ratePlans []hotel.RatePlan) []hotel.RatePlan {
	lengthOfStay := calendar.Nights(in.ArrivalDate, in.DepartureDate)
	selected := make([]hotel.RatePlan, 0, len(ratePlans))
	for _, rp := range ratePlans {
		if isApplicableRatePlan(in, rp, lengthOfStay) {
			selected = append(selected, rp)
		}
	}
	return selected
}

func isApplicableRatePlan(in SelectionInput, rp hotel.RatePlan, lengthOfStay int) bool {
	if !rp.AppliesTo(in.RoomTypeID) {
		return false
	}
	if in.PreferredCurrency != "" && rp.EffectiveCurrency(in.FallbackCurrency) != in.PreferredCurrency {
		return false
	}
	if w := rp.AvailableForReservation; w != nil && !w.Contains(in.BookingDate) {
		return false
	}
	if w := rp.AvailableForTravel; w != nil && !w.Overlaps(in.ArrivalDate, in.DepartureDate) {
		return false
	}
	if rp.Restrictions == nil {
		return true
	}
	if cutOff := rp.Restrictions.BookingCutOff; cutOff != nil {
		if cutOff.Min != nil && in.ArrivalDate.AddDays(-*cutOff.Min).Before(in.BookingDate) {
			return false
		}
		if cutOff.Max != nil && in.ArrivalDate.AddDays(-*cutOff.Max).After(in.BookingDate) {
			return false
		}
	}
	if los := rp.Restrictions.LengthOfStay; los != nil && !los.Contains(lengthOfStay) {
		return false
	}
	return true
}
