package core

// CurrencyCodes lists the currencies the onboarding flow offers.
var CurrencyCodes = []string{"USD", "EUR", "GBP", "JPY", "INR", "AUD"}

// SupportedCurrency reports whether code is one of the offered currencies.
func SupportedCurrency(code string) bool {
	for _, c := range CurrencyCodes {
		if c == code {
			return true
		}
	}
	return false
}
