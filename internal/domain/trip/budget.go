package trip

import (
	"math"
	"strings"
)

// Approximate USD → local conversion rates used for budget defaults.
// These are deliberately static heuristics, not live FX.
var currencyRates = map[string]float64{
	"USD": 1, "EUR": 0.92, "GBP": 0.79, "INR": 83, "AUD": 1.52, "JPY": 149,
	"AED": 3.67, "CAD": 1.36, "CHF": 0.90, "SGD": 1.34, "THB": 35, "MYR": 4.7,
	"IDR": 15700, "KES": 130, "ZAR": 18.5, "BRL": 4.97, "MXN": 17.2, "TRY": 31.8,
	"NOK": 10.6, "SEK": 10.4,
}

var luxuryCities = []string{
	"dubai", "maldives", "singapore", "monaco", "santorini", "mykonos",
	"bora bora", "st barts", "aspen", "zurich", "geneva", "london", "paris",
	"new york", "tokyo", "hong kong", "sydney", "amalfi", "positano",
}

var midrangeCities = []string{
	"bali", "barcelona", "rome", "amsterdam", "prague", "lisbon", "istanbul",
	"bangkok", "kyoto", "osaka", "seoul", "kuala lumpur", "mexico city",
	"buenos aires", "rio", "cape town", "marrakech", "cairo",
}

// Per-person-per-night baselines in USD by destination tier.
const (
	luxuryNightlyUSD   = 350
	midrangeNightlyUSD = 180
	standardNightlyUSD = 90
)

// FXRate returns the static conversion rate for a currency code,
// defaulting to 1.0 for unknown codes.
func FXRate(code string) float64 {
	if rate, ok := currencyRates[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return rate
	}
	return 1.0
}

// NightlyBaselineUSD classifies a destination into a spend tier by
// case-insensitive substring membership.
func NightlyBaselineUSD(destination string) int {
	dest := strings.ToLower(destination)
	for _, city := range luxuryCities {
		if strings.Contains(dest, city) {
			return luxuryNightlyUSD
		}
	}
	for _, city := range midrangeCities {
		if strings.Contains(dest, city) {
			return midrangeNightlyUSD
		}
	}
	return standardNightlyUSD
}

// DefaultBudget computes tier baseline × fx × guests × days, rounded.
func DefaultBudget(destination string, fxRate float64, guests, days int) int {
	perNight := int(math.Round(float64(NightlyBaselineUSD(destination)) * fxRate))
	return perNight * guests * days
}

// ResolveCurrency picks the currency code: an explicit field wins, then the
// leading token of a "CODE AMOUNT" budget string, then USD.
func ResolveCurrency(explicit, budget string) string {
	if c := strings.TrimSpace(explicit); c != "" {
		return strings.ToUpper(c)
	}
	if fields := strings.Fields(budget); len(fields) > 0 {
		if code := fields[0]; len(code) == 3 && !hasDigit(code) {
			return strings.ToUpper(code)
		}
	}
	return "USD"
}

// ResolveBudget applies the precedence order: adjusted override, explicit
// budget digits, computed default. Always returns a usable positive value.
func ResolveBudget(req Request, destination string, fxRate float64, guests, days int) int {
	if req.AdjustedBudget > 0 {
		return req.AdjustedBudget
	}
	if explicit := digitsOf(req.Budget); explicit > 0 {
		return explicit
	}
	return DefaultBudget(destination, fxRate, guests, days)
}

// digitsOf collapses every digit in s into one integer, mirroring the
// frontend's tolerant "USD 2,000" style parsing. Returns 0 when s holds
// no digits.
func digitsOf(s string) int {
	n := 0
	found := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			found = true
			if n > 1<<31 {
				break
			}
		}
	}
	if !found {
		return 0
	}
	return n
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
