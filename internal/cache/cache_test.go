package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestGetMissingKey(t *testing.T) {
	c := NewLRU[int](2, time.Minute)
	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	c := NewLRU[string](2, time.Minute)
	c.Set("a", "alpha")
	got, ok := c.Get("a")
	if !ok || got != "alpha" {
		t.Fatalf("Get(a) = %q, %v", got, ok)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // refresh a, b is now oldest
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatal("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatal("a should survive eviction")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatal("c should be present")
	}
}

func TestExpiredEntryIsMiss(t *testing.T) {
	c := NewLRU[int](2, 10*time.Millisecond)
	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expired entry must be a miss")
	}
	if c.Len() != 0 {
		t.Fatalf("Len() = %d after expired read", c.Len())
	}
}

func TestPurge(t *testing.T) {
	c := NewLRU[int](10, time.Minute)
	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("Len() = %d after purge", c.Len())
	}
	if _, ok := c.Get("k0"); ok {
		t.Fatal("purged key still readable")
	}
}

func TestDelete(t *testing.T) {
	c := NewLRU[int](2, time.Minute)
	c.Set("a", 1)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("deleted key still readable")
	}
	c.Delete("a") // deleting again is a no-op
}
