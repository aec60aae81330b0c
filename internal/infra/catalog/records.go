package catalog

import (
	"hotel-pricing/internal/pkg/calendar"
	"hotel-pricing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog layout. JSON documents are accepted as well.
type File struct {
	Hotels []HotelRecord `yaml:"hotels"`
}

type HotelRecord struct {
	ID                        string                     `yaml:"id"`
	Name                      string                     `yaml:"name"`
	DefaultCurrency           string                     `yaml:"defaultCurrency"`
	RoomTypes                 []RoomTypeRecord           `yaml:"roomTypes"`
	RatePlans                 []RatePlanRecord           `yaml:"ratePlans"`
	Availability              []AvailabilityRecord       `yaml:"availability"`
	CancellationPolicies      []CancellationPolicyRecord `yaml:"cancellationPolicies"`
	DefaultCancellationAmount Decimal                    `yaml:"defaultCancellationAmount"`
}

type RoomTypeRecord struct {
	ID        string           `yaml:"id"`
	Occupancy *OccupancyRecord `yaml:"occupancy"`
}

type OccupancyRecord struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type WindowRecord struct {
	From Date `yaml:"from"`
	To   Date `yaml:"to"`
}

type BoundsRecord struct {
	Min *int `yaml:"min"`
	Max *int `yaml:"max"`
}

type RestrictionsRecord struct {
	BookingCutOff *BoundsRecord `yaml:"bookingCutOff"`
	LengthOfStay  *BoundsRecord `yaml:"lengthOfStay"`
}

type ConditionsRecord struct {
	From            *Date `yaml:"from"`
	To              *Date `yaml:"to"`
	MinLengthOfStay *int  `yaml:"minLengthOfStay"`
	MinOccupants    *int  `yaml:"minOccupants"`
	MaxAge          *int  `yaml:"maxAge"`
}

type ModifierRecord struct {
	Type       string            `yaml:"type"`
	Adjustment Decimal           `yaml:"adjustment"`
	Conditions *ConditionsRecord `yaml:"conditions"`
}

type RatePlanRecord struct {
	ID                      string              `yaml:"id"`
	Price                   Decimal             `yaml:"price"`
	Currency                string              `yaml:"currency"`
	RoomTypeIDs             []string            `yaml:"roomTypeIds"`
	AvailableForReservation *WindowRecord       `yaml:"availableForReservation"`
	AvailableForTravel      *WindowRecord       `yaml:"availableForTravel"`
	Restrictions            *RestrictionsRecord `yaml:"restrictions"`
	Modifiers               []ModifierRecord    `yaml:"modifiers"`
}

type AvailabilityRestrictionsRecord struct {
	NoArrival   bool `yaml:"noArrival"`
	NoDeparture bool `yaml:"noDeparture"`
}

type AvailabilityRecord struct {
	RoomTypeID   string                          `yaml:"roomTypeId"`
	Date         Date                            `yaml:"date"`
	Quantity     int                             `yaml:"quantity"`
	Restrictions *AvailabilityRestrictionsRecord `yaml:"restrictions"`
}

type CancellationPolicyRecord struct {
	From     *Date   `yaml:"from"`
	To       *Date   `yaml:"to"`
	Deadline int     `yaml:"deadline"`
	Amount   Decimal `yaml:"amount"`
}

// Date decodes any YAML scalar holding an ISO date or RFC3339 timestamp.
type Date struct {
	calendar.Date
}

func (d *Date) UnmarshalYAML(n *yaml.Node) error {
	parsed, err := calendar.Parse(n.Value)
	if err != nil {
		return errs.Wrapf(err, "line %d: %q", n.Line, n.Value)
	}
	d.Date = parsed
	return nil
}

// Decimal decodes quoted and unquoted numbers without a float round trip.
type Decimal struct {
	decimal.Decimal
}

func (d *Decimal) UnmarshalYAML(n *yaml.Node) error {
	v, err := decimal.NewFromString(n.Value)
	if err != nil {
		return errs.Wrapf(err, "line %d: invalid amount %q", n.Line, n.Value)
	}
	d.Decimal = v
	return nil
}
