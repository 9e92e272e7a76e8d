package core

import (
	"math"
	"testing"
)

func tx(typ TransactionType, main string, cents int64) Transaction {
	return Transaction{Amount: Money{Cents: cents}, Type: typ, MainCategory: main}
}

func TestComputeStatsBuckets(t *testing.T) {
	records := []Transaction{
		tx(Income, "Salary", 10000),
		tx(Expense, "Food", 4000),
	}
	stats := ComputeStats(records)

	if stats.Income.Cents != 10000 {
		t.Fatalf("income: got %d", stats.Income.Cents)
	}
	if stats.Expense.Cents != 4000 {
		t.Fatalf("expense: got %d", stats.Expense.Cents)
	}
	if stats.Total.Cents != 14000 {
		t.Fatalf("total: got %d", stats.Total.Cents)
	}
	if stats.Net.Cents != 6000 {
		t.Fatalf("net: got %d", stats.Net.Cents)
	}

	pct := stats.Percent(stats.Income)
	if math.Abs(pct-71.42857142857143) > 1e-9 {
		t.Fatalf("income percent: got %v", pct)
	}
}

func TestComputeStatsBucketSumEqualsTotal(t *testing.T) {
	records := []Transaction{
		tx(Income, "Salary", 12345),
		tx(Expense, "Food", 678),
		tx(Savings, "Goals", 910),
		tx(Investment, "Stocks", 1112),
		tx(Expense, "Housing", 1314),
	}
	stats := ComputeStats(records)
	sum := stats.Income.Cents + stats.Expense.Cents + stats.Savings.Cents + stats.Investment.Cents
	if sum != stats.Total.Cents {
		t.Fatalf("bucket sum %d != total %d", sum, stats.Total.Cents)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.Total.Cents != 0 || stats.Net.Cents != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
	if pct := stats.Percent(stats.Income); pct != 0 {
		t.Fatalf("expected 0 percent, got %v", pct)
	}
	if math.IsNaN(stats.Percent(Money{Cents: 0})) {
		t.Fatal("percent must never be NaN")
	}
}

func TestComputeStatsIdempotent(t *testing.T) {
	records := []Transaction{
		tx(Income, "Salary", 500),
		tx(Savings, "Retirement", 300),
	}
	a := ComputeStats(records)
	b := ComputeStats(records)
	if a != b {
		t.Fatalf("stats differ: %+v vs %+v", a, b)
	}
}

func TestComputeStatsIgnoresUnknownType(t *testing.T) {
	records := []Transaction{
		tx(Income, "Salary", 100),
		tx("loan", "Other", 999),
	}
	stats := ComputeStats(records)
	if stats.Total.Cents != 100 {
		t.Fatalf("unknown type must not contribute: got total %d", stats.Total.Cents)
	}
}

func TestTopCategories(t *testing.T) {
	records := []Transaction{
		tx(Expense, "Food", 5000),
		tx(Expense, "Housing", 3000),
		tx(Expense, "Personal", 2000),
	}
	top := TopCategories(records, 2)
	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].Category != "Food" || top[0].Amount.Cents != 5000 {
		t.Fatalf("first: %+v", top[0])
	}
	if top[1].Category != "Housing" || top[1].Amount.Cents != 3000 {
		t.Fatalf("second: %+v", top[1])
	}
	if math.Abs(top[0].Percent-50) > 1e-9 || math.Abs(top[1].Percent-30) > 1e-9 {
		t.Fatalf("percents: %v, %v", top[0].Percent, top[1].Percent)
	}
}

func TestTopCategoriesGroupsAcrossRecords(t *testing.T) {
	records := []Transaction{
		tx(Expense, "Food", 1000),
		tx(Expense, "Food", 1500),
		tx(Income, "Salary", 500),
	}
	top := TopCategories(records, 5)
	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].Category != "Food" || top[0].Amount.Cents != 2500 {
		t.Fatalf("first: %+v", top[0])
	}
}

func TestTopCategoriesTieBreakByName(t *testing.T) {
	records := []Transaction{
		tx(Expense, "Housing", 1000),
		tx(Expense, "Food", 1000),
	}
	top := TopCategories(records, 5)
	if top[0].Category != "Food" || top[1].Category != "Housing" {
		t.Fatalf("tie break not by name: %+v", top)
	}
}

func TestTopCategoriesEmpty(t *testing.T) {
	if top := TopCategories(nil, 5); len(top) != 0 {
		t.Fatalf("expected empty, got %+v", top)
	}
}
