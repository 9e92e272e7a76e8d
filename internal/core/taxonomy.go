package core

// taxonomy is the fixed tree of type -> main category -> subcategories the
// mobile client offers. Membership is enforced at the ledger boundary so a
// stored record can never reference a category outside its type.
var taxonomy = map[TransactionType]map[string][]string{
	Income: {
		"Salary":       {"Regular Job", "Part-time", "Bonus", "Overtime"},
		"Business":     {"Profit", "Sales", "Commission"},
		"Other Income": {"Freelance", "Rental", "Interest", "Gifts"},
	},
	Expense: {
		"Bills & Utilities": {"Electricity", "Water", "Internet", "Phone", "Gas"},
		"Housing":           {"Rent", "Mortgage", "Maintenance", "Property Tax"},
		"Food":              {"Groceries", "Dining Out", "Food Delivery", "Snacks"},
		"Transportation":    {"Fuel", "Public Transport", "Car Maintenance", "Parking"},
		"Healthcare":        {"Medicine", "Doctor Visit", "Hospital", "Insurance"},
		"Education":         {"School Fee", "College Fee", "Books", "Tuition", "Courses"},
		"Personal":          {"Clothing", "Grooming", "Gym", "Entertainment"},
		"Others":            {"Gifts", "Donations", "Miscellaneous"},
	},
	Savings: {
		"Emergency Fund": {"General Savings"},
		"Retirement":     {"Pension Fund", "401k", "IRA"},
		"Goals":          {"Travel", "Education", "House", "Car"},
	},
	Investment: {
		"Stocks":       {"Individual Stocks", "IPOs", "Day Trading"},
		"Mutual Funds": {"Index Funds", "ETFs", "Sector Funds"},
		"Real Estate":  {"Property", "REITs", "Land"},
		"Crypto":       {"Bitcoin", "Ethereum", "Altcoins"},
		"Commodities":  {"Gold", "Silver", "Oil"},
	},
}

// Categories returns the main categories available for a type.
func Categories(t TransactionType) []string {
	cats := make([]string, 0, len(taxonomy[t]))
	for name := range taxonomy[t] {
		cats = append(cats, name)
	}
	return cats
}

// Subcategories returns the subcategories under a type's main category.
func Subcategories(t TransactionType, main string) []string {
	subs := taxonomy[t][main]
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// ValidateCategory checks that (type, main, sub) is a path in the taxonomy.
func ValidateCategory(t TransactionType, main, sub string) error {
	if !t.Valid() {
		return ErrInvalidType
	}
	subs, ok := taxonomy[t][main]
	if !ok {
		return ErrUnknownCategory
	}
	for _, s := range subs {
		if s == sub {
			return nil
		}
	}
	return ErrUnknownSubcategory
}
