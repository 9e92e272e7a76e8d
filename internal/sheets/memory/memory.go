// Package memory provides an in-memory export target used by tests and
// local runs without Google credentials.
package memory

import (
	"context"
	"fmt"
	"sync"

	"kuberax/internal/core"
)

type Exporter struct {
	mu   sync.Mutex
	rows []core.Transaction
}

func New() *Exporter {
	return &Exporter{}
}

func (e *Exporter) AppendTransaction(_ context.Context, tx core.Transaction) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rows = append(e.rows, tx)
	return fmt.Sprintf("mem:%d", len(e.rows)), nil
}

func (e *Exporter) RemoveTransaction(_ context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.rows[:0]
	for _, r := range e.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	e.rows = kept
	return nil
}

func (e *Exporter) ExportedIDs(_ context.Context) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]string, 0, len(e.rows))
	for _, r := range e.rows {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// Rows returns a snapshot of the exported rows.
func (e *Exporter) Rows() []core.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]core.Transaction, len(e.rows))
	copy(out, e.rows)
	return out
}
