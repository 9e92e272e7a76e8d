package content

import "strings"

// Stock is one entry of the static catalog shown on the invest screen.
type Stock struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Change   float64 `json:"change"`
	Category string  `json:"category"`
}

// StockCategories are the filter tabs, "All" first.
var StockCategories = []string{"All", "Technology", "Finance", "Healthcare", "Energy", "Consumer"}

var stocks = []Stock{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: 173.57, Change: 1.23, Category: "Technology"},
	{Symbol: "TSLA", Name: "Tesla, Inc.", Price: 202.64, Change: -0.89, Category: "Technology"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Price: 178.22, Change: 2.45, Category: "Technology"},
	{Symbol: "JPM", Name: "JPMorgan Chase", Price: 147.31, Change: 0.67, Category: "Finance"},
	{Symbol: "JNJ", Name: "Johnson & Johnson", Price: 156.85, Change: -0.34, Category: "Healthcare"},
	{Symbol: "XOM", Name: "Exxon Mobil", Price: 104.76, Change: 1.56, Category: "Energy"},
}

// Stocks returns the catalog filtered by category ("All" or empty matches
// everything) and a case-insensitive search over symbol and name.
func Stocks(category, query string) []Stock {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Stock, 0, len(stocks))
	for _, s := range stocks {
		if category != "" && category != "All" && s.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(s.Name), query) &&
			!strings.Contains(strings.ToLower(s.Symbol), query) {
			continue
		}
		out = append(out, s)
	}
	return out
}
