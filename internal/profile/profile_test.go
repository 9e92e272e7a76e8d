package profile

import (
	"context"
	"errors"
	"testing"

	"kuberax/internal/core"
	"kuberax/internal/store"
	"kuberax/internal/store/memory"
)

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	m := NewManager(memory.New())

	if _, err := m.Load(ctx); !errors.Is(err, ErrNotOnboarded) {
		t.Fatalf("got %v, want ErrNotOnboarded", err)
	}
	if ob, _ := m.Onboarded(ctx); ob {
		t.Fatal("onboarded must be false before save")
	}

	p := core.UserProfile{Name: "Ravi", Age: 31, Gender: "Male", Currency: "INR"}
	if err := m.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != p {
		t.Fatalf("got %+v, want %+v", got, p)
	}
	if ob, _ := m.Onboarded(ctx); !ob {
		t.Fatal("onboarded must be true after save")
	}
	if cur := m.Currency(ctx); cur != "INR" {
		t.Fatalf("currency: got %q", cur)
	}
}

func TestSaveRejectsInvalidProfile(t *testing.T) {
	ctx := context.Background()
	m := NewManager(memory.New())

	if err := m.Save(ctx, core.UserProfile{Name: "", Age: 30, Gender: "Other", Currency: "USD"}); err == nil {
		t.Fatal("expected validation error")
	}
	if ob, _ := m.Onboarded(ctx); ob {
		t.Fatal("rejected save must not mark onboarding complete")
	}
}

func TestCurrencyDefault(t *testing.T) {
	m := NewManager(memory.New())
	if cur := m.Currency(context.Background()); cur != DefaultCurrency {
		t.Fatalf("got %q, want %q", cur, DefaultCurrency)
	}
}

func TestLoadMalformed(t *testing.T) {
	ctx := context.Background()
	rs := memory.New()
	if err := rs.Set(ctx, store.KeyUserData, "][?"); err != nil {
		t.Fatal(err)
	}
	if _, err := NewManager(rs).Load(ctx); !errors.Is(err, ErrMalformedData) {
		t.Fatalf("got %v, want ErrMalformedData", err)
	}
}
