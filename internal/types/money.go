// README: Common money value object used across modules (integer euro cents).
package types

import "fmt"

type Money struct {
	Amount   int64  `json:"amount"` // cents
	Currency string `json:"currency"`
}

func EUR(cents int64) Money {
	return Money{Amount: cents, Currency: "EUR"}
}

func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}
}

// Percent returns pct% of m. Callers keep amounts in multiples of 5 euros so
// the result is exact in cents for the percentages used here.
func (m Money) Percent(pct int64) Money {
	return Money{Amount: m.Amount * pct / 100, Currency: m.Currency}
}

// DivideBy splits m into n equal shares, rounding half-up to a cent.
// n must be positive.
func (m Money) DivideBy(n int64) Money {
	return Money{Amount: (m.Amount*2 + n) / (n * 2), Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

// String renders the amount with a currency symbol and two decimals, e.g. "€45.00".
func (m Money) String() string {
	symbol := m.Currency
	if m.Currency == "EUR" || m.Currency == "" {
		symbol = "€"
	}
	amount := m.Amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, amount/100, amount%100)
}
