package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		want   string
	}{
		{"cafe example", "3.75", "8.5", "0.32"},
		{"half rounds up", "0.50", "1", "0.01"},
		{"below half rounds down", "0.40", "1", "0.00"},
		{"zero rate", "12.99", "0", "0.00"},
		{"zero amount", "0", "18", "0.00"},
		{"whole percent", "100", "5", "5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(dec(tt.amount), dec(tt.rate))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestLineTotalAndSum(t *testing.T) {
	assert.Equal(t, "11.25", LineTotal(dec("3.75"), 3).StringFixed(2))
	assert.Equal(t, "0.30", Sum(dec("0.1"), dec("0.2")).StringFixed(2))
	assert.Equal(t, "4.07", Sum(dec("3.75"), dec("0.32"), decimal.Zero).StringFixed(2))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$4.07", Format("$", dec("4.07")))
	assert.Equal(t, "Rs.12.50", Format("Rs.", dec("12.5")))
}

func TestRenderSafeSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"$", "$"},
		{"₹", "Rs."},
		{"€", "EUR"},
		{"£", "GBP"},
		{"¥", "JPY"},
		{"A$", "A$"},
		{"RM", "RM"},
		{"₿", BaseSymbol},
		{"", BaseSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderSafeSymbol(tt.symbol))
		})
	}
}

func TestLookupSafeSymbol_UnknownSign(t *testing.T) {
	_, ok := LookupSafeSymbol("₿")
	assert.False(t, ok)

	safe, ok := LookupSafeSymbol("₩")
	assert.True(t, ok)
	assert.Equal(t, "KRW", safe)
}

func TestSymbolOrCode(t *testing.T) {
	assert.Equal(t, "Rs.", SymbolOrCode("₹", "INR"))
	assert.Equal(t, "BTC", SymbolOrCode("₿", "BTC"))
	assert.Equal(t, BaseSymbol, SymbolOrCode("₿", ""))
	assert.Equal(t, "S$", SymbolOrCode("S$", "SGD"))
}
