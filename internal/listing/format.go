package listing

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultCurrency = "USD"

// Symbols as en-US currency formatting renders them.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"CAD": "CA$",
	"AUD": "A$",
	"MXN": "MX$",
	"CNY": "CN¥",
}

// FormatPrice renders price in en-US currency style without forced decimals:
// FormatPrice(450000, "USD") == "$450,000". An empty currency means USD.
// Decimals are capped at the currency's own digits, so yen has none.
func FormatPrice(price float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}
	digits := fractionDigits(code)
	amount := formatDecimal(roundHalfAway(price, digits), digits)
	if sym, ok := currencySymbols[code]; ok {
		return sym + amount
	}
	return code + " " + amount
}

// FormatNumber groups thousands and keeps at most two fraction digits.
func FormatNumber(n float64) string {
	return formatDecimal(n, 2)
}

func formatDecimal(n float64, maxDigits int) string {
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprint(number.Decimal(n, number.MaxFractionDigits(maxDigits)))
}

// fractionDigits is the CLDR minor-unit count for an ISO code, 2 when the
// code is unknown.
func fractionDigits(code string) int {
	u, err := currency.ParseISO(code)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(u)
	return scale
}

func roundHalfAway(n float64, digits int) float64 {
	f := math.Pow10(digits)
	return math.Round(n*f) / f
}
