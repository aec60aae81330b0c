package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount tagged with its currency code.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func New(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: strings.TrimSpace(currency)}
}

func Zero(currency string) Money {
	return New(decimal.Zero, currency)
}

// Parse builds Money from a decimal string such as "99.90".
func Parse(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}
	return New(d, currency), nil
}

// MustParse is intended for fixtures and tests.
func MustParse(amount, currency string) Money {
	m, err := Parse(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Plus adds a bare decimal in the receiver's currency.
func (m Money) Plus(d decimal.Decimal) Money {
	return Money{Amount: m.Amount.Add(d), Currency: m.Currency}
}

func (m Money) LessThan(other Money) bool {
	return m.Amount.LessThan(other.Amount)
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency
}
