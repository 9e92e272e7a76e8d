// Package profile persists the onboarding user profile and the
// onboarding-completed flag.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"kuberax/internal/core"
	"kuberax/internal/store"
)

var (
	ErrNotOnboarded  = errors.New("onboarding not completed")
	ErrMalformedData = errors.New("malformed stored profile")
)

// DefaultCurrency is assumed until onboarding stores a preference.
const DefaultCurrency = "USD"

type Manager struct {
	mu    sync.Mutex
	store store.RecordStore
}

func NewManager(rs store.RecordStore) *Manager {
	return &Manager{store: rs}
}

// Load returns the stored profile, or ErrNotOnboarded when none exists yet.
func (m *Manager) Load(ctx context.Context) (core.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok, err := m.store.Get(ctx, store.KeyUserData)
	if err != nil {
		return core.UserProfile{}, fmt.Errorf("load profile: %w", err)
	}
	if !ok {
		return core.UserProfile{}, ErrNotOnboarded
	}

	var p core.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return core.UserProfile{}, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return p, nil
}

// Save validates and persists the profile and marks onboarding complete.
func (m *Manager) Save(ctx context.Context, p core.UserProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := m.store.Set(ctx, store.KeyUserData, string(data)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if err := m.store.Set(ctx, store.KeyOnboarding, "true"); err != nil {
		return fmt.Errorf("save onboarding flag: %w", err)
	}
	return nil
}

// Onboarded reports whether the onboarding flow has been completed.
func (m *Manager) Onboarded(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok, err := m.store.Get(ctx, store.KeyOnboarding)
	if err != nil {
		return false, fmt.Errorf("load onboarding flag: %w", err)
	}
	return ok && v == "true", nil
}

// Currency returns the preferred currency, falling back to the default when
// no profile has been stored.
func (m *Manager) Currency(ctx context.Context) string {
	p, err := m.Load(ctx)
	if err != nil || p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}
