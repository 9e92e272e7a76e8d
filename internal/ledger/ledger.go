// Package ledger maintains the authoritative in-memory transaction list and
// its derived statistics, persisting through a RecordStore.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"kuberax/internal/core"
	"kuberax/internal/store"
)

var (
	// ErrNotFound is returned by Update for an unknown id. Remove
	// deliberately does not share this behavior: deleting an absent id is
	// a silent no-op.
	ErrNotFound = errors.New("transaction not found")

	// ErrPersistence wraps store failures. The in-memory mutation has
	// already been applied when this is returned; callers surface it to
	// the user without rolling back.
	ErrPersistence = errors.New("persistence failure")

	// ErrMalformedData is returned by Load when the stored payload cannot
	// be decoded. The ledger refuses to start from corrupt state.
	ErrMalformedData = errors.New("malformed stored transactions")
)

// Ledger serializes all access through a single mutex: the source model is a
// single event loop, so at most one writer may touch the record list.
type Ledger struct {
	mu      sync.Mutex
	store   store.RecordStore
	records []core.Transaction
	stats   core.AggregateStats
	loaded  bool

	now   func() time.Time
	newID func() string
}

func New(rs store.RecordStore) *Ledger {
	return &Ledger{
		store: rs,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Load reads the stored transaction list. A missing key yields an empty
// ledger; an undecodable payload fails with ErrMalformedData.
func (l *Ledger) Load(ctx context.Context) ([]core.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.loadLocked(ctx); err != nil {
		return nil, err
	}
	return l.snapshotLocked(), nil
}

func (l *Ledger) loadLocked(ctx context.Context) error {
	if l.loaded {
		return nil
	}

	raw, ok, err := l.store.Get(ctx, store.KeyTransactions)
	if err != nil {
		return fmt.Errorf("%w: load transactions: %v", ErrPersistence, err)
	}
	if !ok {
		l.records = nil
	} else {
		var records []core.Transaction
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedData, err)
		}
		l.records = records
	}

	l.stats = core.ComputeStats(l.records)
	l.loaded = true
	return nil
}

// Refresh drops the cached record list so the next read hits the store
// again. Needed by processes that share the store with another writer.
func (l *Ledger) Refresh() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loaded = false
}

// Add validates the draft against the taxonomy, synthesizes id and date,
// prepends the record (newest first) and persists the full list. The
// currency argument is the user's preference snapshot at creation time.
func (l *Ledger) Add(ctx context.Context, draft core.Draft, currency string) (core.Transaction, error) {
	if err := validateDraft(draft); err != nil {
		return core.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.loadLocked(ctx); err != nil {
		return core.Transaction{}, err
	}

	rec := core.Transaction{
		ID:           l.newID(),
		Amount:       draft.Amount,
		Type:         draft.Type,
		MainCategory: draft.MainCategory,
		SubCategory:  draft.SubCategory,
		Date:         l.now().UTC(),
		Currency:     currency,
	}

	l.records = append([]core.Transaction{rec}, l.records...)
	l.stats = core.ComputeStats(l.records)

	if err := l.persistLocked(ctx); err != nil {
		return rec, err
	}
	return rec, nil
}

// Update replaces the mutable fields of the record with the given id and
// stamps Modified. ID, original Date and Currency are untouched.
func (l *Ledger) Update(ctx context.Context, id string, draft core.Draft) (core.Transaction, error) {
	if err := validateDraft(draft); err != nil {
		return core.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.loadLocked(ctx); err != nil {
		return core.Transaction{}, err
	}

	idx := -1
	for i := range l.records {
		if l.records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Transaction{}, ErrNotFound
	}

	modified := l.now().UTC()
	rec := l.records[idx]
	rec.Amount = draft.Amount
	rec.Type = draft.Type
	rec.MainCategory = draft.MainCategory
	rec.SubCategory = draft.SubCategory
	rec.Modified = &modified
	l.records[idx] = rec
	l.stats = core.ComputeStats(l.records)

	if err := l.persistLocked(ctx); err != nil {
		return rec, err
	}
	return rec, nil
}

// Remove filters out the record with the given id. An absent id leaves the
// list unchanged and is not an error.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.loadLocked(ctx); err != nil {
		return err
	}

	kept := l.records[:0]
	for _, r := range l.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	l.records = kept
	l.stats = core.ComputeStats(l.records)

	return l.persistLocked(ctx)
}

// Clear empties the ledger and persists the empty state.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = nil
	l.stats = core.AggregateStats{}
	l.loaded = true

	return l.persistLocked(ctx)
}

// Stats returns the aggregate statistics, recomputed eagerly on every
// mutation.
func (l *Ledger) Stats(ctx context.Context) (core.AggregateStats, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.loadLocked(ctx); err != nil {
		return core.AggregateStats{}, err
	}
	return l.stats, nil
}

// TopCategories returns the limit largest main-category groups.
func (l *Ledger) TopCategories(ctx context.Context, limit int) ([]core.CategoryShare, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.loadLocked(ctx); err != nil {
		return nil, err
	}
	return core.TopCategories(l.records, limit), nil
}

// Get returns the record with the given id.
func (l *Ledger) Get(ctx context.Context, id string) (core.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.loadLocked(ctx); err != nil {
		return core.Transaction{}, err
	}
	for _, r := range l.records {
		if r.ID == id {
			return r, nil
		}
	}
	return core.Transaction{}, ErrNotFound
}

func (l *Ledger) snapshotLocked() []core.Transaction {
	out := make([]core.Transaction, len(l.records))
	copy(out, l.records)
	return out
}

// persistLocked writes the full list back to the store. The in-memory state
// is already mutated at this point and is not rolled back on failure.
func (l *Ledger) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(l.records)
	if err != nil {
		return fmt.Errorf("%w: encode transactions: %v", ErrPersistence, err)
	}
	if err := l.store.Set(ctx, store.KeyTransactions, string(data)); err != nil {
		return fmt.Errorf("%w: save transactions: %v", ErrPersistence, err)
	}
	return nil
}

func validateDraft(draft core.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	return core.ValidateCategory(draft.Type, draft.MainCategory, draft.SubCategory)
}
