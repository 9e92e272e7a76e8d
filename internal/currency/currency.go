// Package currency converts between the supported currencies using a static
// rate table. Rates are indicative only; conversion is simple multiplication.
package currency

import (
	"errors"

	"kuberax/internal/core"
)

var ErrUnsupportedPair = errors.New("unsupported currency pair")

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"AUD": "A$",
}

var rates = map[string]map[string]float64{
	"USD": {"EUR": 0.85, "GBP": 0.73, "JPY": 110.0, "INR": 74.5, "AUD": 1.35},
	"EUR": {"USD": 1.18, "GBP": 0.86, "JPY": 129.5, "INR": 87.8, "AUD": 1.59},
	"GBP": {"USD": 1.37, "EUR": 1.16, "JPY": 150.6, "INR": 102.1, "AUD": 1.85},
	"JPY": {"USD": 0.0091, "EUR": 0.0077, "GBP": 0.0066, "INR": 0.68, "AUD": 0.012},
	"INR": {"USD": 0.013, "EUR": 0.011, "GBP": 0.0098, "JPY": 1.47, "AUD": 0.018},
	"AUD": {"USD": 0.74, "EUR": 0.63, "GBP": 0.54, "JPY": 81.5, "INR": 54.9},
}

// Codes returns the supported currency codes.
func Codes() []string {
	out := make([]string, len(core.CurrencyCodes))
	copy(out, core.CurrencyCodes)
	return out
}

// Symbol returns the display symbol for a currency code, or the code itself
// when unknown.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

// Convert converts amount from one currency to another. Converting a
// currency to itself returns the amount unchanged.
func Convert(amount float64, from, to string) (float64, error) {
	if from == to {
		if !core.SupportedCurrency(from) {
			return 0, ErrUnsupportedPair
		}
		return amount, nil
	}
	rate, ok := rates[from][to]
	if !ok {
		return 0, ErrUnsupportedPair
	}
	return amount * rate, nil
}
