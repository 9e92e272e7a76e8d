package currency

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		amount   float64
		from, to string
		want     float64
	}{
		{100, "USD", "INR", 7450},
		{100, "USD", "EUR", 85},
		{1, "JPY", "USD", 0.0091},
		{50, "USD", "USD", 50},
	}
	for _, tc := range cases {
		got, err := Convert(tc.amount, tc.from, tc.to)
		if err != nil {
			t.Fatalf("%s->%s: %v", tc.from, tc.to, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s->%s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestConvertUnsupported(t *testing.T) {
	if _, err := Convert(10, "USD", "CHF"); err == nil {
		t.Fatal("expected error for unsupported target")
	}
	if _, err := Convert(10, "CHF", "USD"); err == nil {
		t.Fatal("expected error for unsupported source")
	}
	if _, err := Convert(10, "CHF", "CHF"); err == nil {
		t.Fatal("expected error for unsupported identity pair")
	}
}

func TestSymbol(t *testing.T) {
	if Symbol("INR") != "₹" {
		t.Fatalf("got %q", Symbol("INR"))
	}
	if Symbol("XXX") != "XXX" {
		t.Fatalf("unknown code falls back to itself, got %q", Symbol("XXX"))
	}
}

func TestCodesCoverRateTable(t *testing.T) {
	for _, from := range Codes() {
		for _, to := range Codes() {
			if from == to {
				continue
			}
			if _, err := Convert(1, from, to); err != nil {
				t.Fatalf("missing rate %s->%s", from, to)
			}
		}
	}
}
