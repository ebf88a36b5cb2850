package money

import (
	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits every stored amount carries.
const Scale = 2

var hundred = decimal.NewFromInt(100)

// Round2 rounds half away from zero to two decimals. For the non-negative
// amounts a till produces this is the financial round-half-up rule.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// LineTotal returns round2(price * quantity).
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return Round2(price.Mul(decimal.NewFromInt(int64(quantity))))
}

// Percent returns round2(amount * rate / 100).
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate).Div(hundred))
}

// Sum adds the amounts and rounds the result to two decimals.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return Round2(total)
}

// Format renders symbol + fixed two-decimal amount, e.g. "Rs.12.50".
func Format(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(Scale)
}
