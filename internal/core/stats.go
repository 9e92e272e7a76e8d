package core

import "sort"

// AggregateStats holds the per-type bucket sums derived from a record list.
// Total is the sum of all four buckets; Net is income minus expense. The
// home screen distribution views use Total, the balance header uses Net.
type AggregateStats struct {
	Income     Money `json:"income"`
	Expense    Money `json:"expense"`
	Savings    Money `json:"savings"`
	Investment Money `json:"investment"`
	Total      Money `json:"total"`
	Net        Money `json:"net"`
}

// CategoryShare is one slice of the top-category breakdown.
type CategoryShare struct {
	Category string  `json:"category"`
	Amount   Money   `json:"amount"`
	Percent  float64 `json:"percent"`
}

// ComputeStats derives aggregate statistics from a record list. It is a pure
// function; records with an unrecognized type contribute to no bucket.
func ComputeStats(records []Transaction) AggregateStats {
	var stats AggregateStats
	for _, r := range records {
		switch r.Type {
		case Income:
			stats.Income = stats.Income.Add(r.Amount)
		case Expense:
			stats.Expense = stats.Expense.Add(r.Amount)
		case Savings:
			stats.Savings = stats.Savings.Add(r.Amount)
		case Investment:
			stats.Investment = stats.Investment.Add(r.Amount)
		default:
			continue
		}
		stats.Total = stats.Total.Add(r.Amount)
	}
	stats.Net = stats.Income.Sub(stats.Expense)
	return stats
}

// Percent returns bucket as a percentage of the grand total, or 0 when the
// total is zero. Never NaN or Inf.
func (s AggregateStats) Percent(bucket Money) float64 {
	if s.Total.Cents == 0 {
		return 0
	}
	return bucket.Units() / s.Total.Units() * 100
}

// TopCategories groups records by main category, computes each group's share
// of the grand total and returns the largest groups, at most limit of them.
// Ties on amount break by category name ascending so the result is stable.
func TopCategories(records []Transaction, limit int) []CategoryShare {
	if limit <= 0 {
		limit = 5
	}

	totals := make(map[string]Money)
	order := make([]string, 0)
	var grand Money
	for _, r := range records {
		if _, seen := totals[r.MainCategory]; !seen {
			order = append(order, r.MainCategory)
		}
		totals[r.MainCategory] = totals[r.MainCategory].Add(r.Amount)
		grand = grand.Add(r.Amount)
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, name := range order {
		amount := totals[name]
		pct := 0.0
		if grand.Cents != 0 {
			pct = amount.Units() / grand.Units() * 100
		}
		shares = append(shares, CategoryShare{Category: name, Amount: amount, Percent: pct})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount.Cents != shares[j].Amount.Cents {
			return shares[i].Amount.Cents > shares[j].Amount.Cents
		}
		return shares[i].Category < shares[j].Category
	})

	if len(shares) > limit {
		shares = shares[:limit]
	}
	return shares
}
