package money

// BaseSymbol is used whenever no currency setting can be resolved.
const BaseSymbol = "$"

// safeSymbols maps currency signs the PDF core fonts cannot draw to an ASCII
// abbreviation. Add an entry here when a new currency is offered.
var safeSymbols = map[string]string{
	"₹":   "Rs.",
	"€":   "EUR",
	"£":   "GBP",
	"¥":   "JPY",
	"元":   "CNY",
	"₩":   "KRW",
	"₱":   "PHP",
	"฿":   "THB",
	"د.إ": "AED",
	"₽":   "RUB",
	"₺":   "TRY",
	"₫":   "VND",
	"₦":   "NGN",
	"₪":   "ILS",
}

// LookupSafeSymbol returns the render-safe form of symbol. ASCII symbols pass
// through unchanged; non-ASCII symbols resolve through the substitution table.
// ok is false for a non-ASCII symbol the table does not know.
func LookupSafeSymbol(symbol string) (safe string, ok bool) {
	if s, found := safeSymbols[symbol]; found {
		return s, true
	}
	if symbol != "" && isASCII(symbol) {
		return symbol, true
	}
	return "", false
}

// RenderSafeSymbol is LookupSafeSymbol with BaseSymbol as the last resort.
func RenderSafeSymbol(symbol string) string {
	if s, ok := LookupSafeSymbol(symbol); ok {
		return s
	}
	return BaseSymbol
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7e || s[i] < 0x20 {
			return false
		}
	}
	return true
}

// SymbolOrCode is RenderSafeSymbol for a known currency: an unknown sign is
// printed as the ISO code instead of the base symbol, so the amount is never
// shown in the wrong currency.
func SymbolOrCode(symbol, code string) string {
	if s, ok := LookupSafeSymbol(symbol); ok {
		return s
	}
	if len(code) == 3 && isASCII(code) {
		return code
	}
	return BaseSymbol
}
