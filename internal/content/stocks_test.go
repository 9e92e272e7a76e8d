package content

import "testing"

func TestStocksAll(t *testing.T) {
	all := Stocks("All", "")
	if len(all) != len(stocks) {
		t.Fatalf("got %d, want %d", len(all), len(stocks))
	}
	if got := Stocks("", ""); len(got) != len(stocks) {
		t.Fatalf("empty category should match all, got %d", len(got))
	}
}

func TestStocksByCategory(t *testing.T) {
	fin := Stocks("Finance", "")
	if len(fin) != 1 || fin[0].Symbol != "JPM" {
		t.Fatalf("finance: %+v", fin)
	}
	if got := Stocks("Consumer", ""); len(got) != 0 {
		t.Fatalf("consumer has no entries in the catalog, got %+v", got)
	}
}

func TestStocksSearch(t *testing.T) {
	byName := Stocks("All", "tesla")
	if len(byName) != 1 || byName[0].Symbol != "TSLA" {
		t.Fatalf("by name: %+v", byName)
	}
	bySymbol := Stocks("All", "jpm")
	if len(bySymbol) != 1 || bySymbol[0].Name != "JPMorgan Chase" {
		t.Fatalf("by symbol: %+v", bySymbol)
	}
	if got := Stocks("Healthcare", "tesla"); len(got) != 0 {
		t.Fatalf("filters must combine, got %+v", got)
	}
}

func TestGuideSections(t *testing.T) {
	guide := Guide()
	if len(guide) != 6 {
		t.Fatalf("got %d sections", len(guide))
	}
	for i, s := range guide {
		if s.Title == "" || s.Content == "" {
			t.Fatalf("section %d incomplete: %+v", i, s)
		}
	}
}
