package pricing

import (
	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/pkg/calendar"

	"github.com/shopspring/decimal"
)

type thresholdKind int

const (
	thresholdLengthOfStay thresholdKind = iota
	thresholdOccupants
)

func threshold(c *hotel.ModifierConditions, kind thresholdKind) *int {
	switch kind {
	case thresholdLengthOfStay:
		return c.MinLengthOfStay
	case thresholdOccupants:
		return c.MinOccupants
	default:
		return nil
	}
}

// SelectApplicableModifiers returns the modifiers active on date for a stay of
// lengthOfStay nights and guestCount guests.
//
// The first pass drops every modifier that is individually unsatisfied. The
// second pass keeps, per threshold kind, only the first modifier carrying the
// highest threshold; a modifier carrying both kinds must win both. maxAge is
// not evaluated here.
func SelectApplicableModifiers(modifiers []hotel.Modifier, date calendar.Date, lengthOfStay, guestCount int) []hotel.Modifier {
	candidates := make([]hotel.Modifier, 0, len(modifiers))
	for _, m := range modifiers {
		if isSatisfied(m, date, lengthOfStay, guestCount) {
			candidates = append(candidates, m)
		}
	}

	winners := map[thresholdKind]int{}
	for _, kind := range []thresholdKind{thresholdLengthOfStay, thresholdOccupants} {
		best, found := -1, false
		for i, m := range candidates {
			v := threshold(m.Conditions, kind)
			if v == nil {
				continue
			}
			if !found || *v > best {
				best, found = *v, true
				winners[kind] = i
			}
		}
	}

	selected := make([]hotel.Modifier, 0, len(candidates))
	for i, m := range candidates {
		if winsEveryGroup(m, i, winners) {
			selected = append(selected, m)
		}
	}
	return selected
}

func isSatisfied(m hotel.Modifier, date calendar.Date, lengthOfStay, guestCount int) bool {
	if !m.Type.IsValid() || m.Conditions == nil {
		return false
	}
	c := m.Conditions
	if !c.CoversDate(date) {
		return false
	}
	if c.MinLengthOfStay != nil && lengthOfStay < *c.MinLengthOfStay {
		return false
	}
	if c.MinOccupants != nil && guestCount < *c.MinOccupants {
		return false
	}
	return true
}

func winsEveryGroup(m hotel.Modifier, idx int, winners map[thresholdKind]int) bool {
	for kind, winner := range winners {
		if threshold(m.Conditions, kind) != nil && winner != idx {
			return false
		}
	}
	return true
}

// SelectBestGuestModifier picks the modifier most favourable to a guest of
// guestAge. Age-specific modifiers win over generic ones; among them the
// tightest qualifying maxAge bracket is used. Remaining ties go to the most
// negative change, then to input order. ok is false when nothing qualifies.
func SelectBestGuestModifier(basePrice decimal.Decimal, modifiers []hotel.Modifier, guestAge int) (best hotel.Modifier, ok bool) {
	var ageSpecific, generic []hotel.Modifier
	for _, m := range modifiers {
		if m.Conditions == nil || !m.Type.IsValid() {
			continue
		}
		if m.Conditions.IsAgeSpecific() {
			if *m.Conditions.MaxAge >= guestAge {
				ageSpecific = append(ageSpecific, m)
			}
			continue
		}
		generic = append(generic, m)
	}

	if len(ageSpecific) > 0 {
		tightest := *ageSpecific[0].Conditions.MaxAge
		for _, m := range ageSpecific[1:] {
			if *m.Conditions.MaxAge < tightest {
				tightest = *m.Conditions.MaxAge
			}
		}
		bracket := make([]hotel.Modifier, 0, len(ageSpecific))
		for _, m := range ageSpecific {
			if *m.Conditions.MaxAge == tightest {
				bracket = append(bracket, m)
			}
		}
		return cheapest(basePrice, bracket), true
	}

	if len(generic) > 0 {
		return cheapest(basePrice, generic), true
	}
	return hotel.Modifier{}, false
}

// cheapest keeps the first modifier with the lowest change; mods must not be empty.
func cheapest(basePrice decimal.Decimal, mods []hotel.Modifier) hotel.Modifier {
	best := mods[0]
	bestChange := best.Change(basePrice)
	for _, m := range mods[1:] {
		if change := m.Change(basePrice); change.LessThan(bestChange) {
			best, bestChange = m, change
		}
	}
	return best
}
