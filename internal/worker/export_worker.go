// Package worker mirrors ledger mutations into the spreadsheet export
// target, driven by AMQP sync messages.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kuberax/internal/amqp"
	"kuberax/internal/ledger"
	"kuberax/internal/sheets"
)

// ExportWorker applies sync messages against the export target. Updates are
// exported as remove-then-append so the sheet never holds two rows for one
// transaction id.
type ExportWorker struct {
	ledger  *ledger.Ledger
	writer  sheets.ExportWriter
	deleter sheets.ExportDeleter
}

func NewExportWorker(l *ledger.Ledger, writer sheets.ExportWriter, deleter sheets.ExportDeleter) *ExportWorker {
	return &ExportWorker{
		ledger:  l,
		writer:  writer,
		deleter: deleter,
	}
}

// Handle processes one sync message. Returning an error requeues the
// delivery, so only transient failures should propagate.
func (w *ExportWorker) Handle(ctx context.Context, msg *amqp.TransactionSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message",
		"id", msg.ID,
		"action", msg.Action)

	switch msg.Action {
	case amqp.ActionCreate:
		return w.exportCreate(ctx, msg.ID)
	case amqp.ActionUpdate:
		return w.exportUpdate(ctx, msg.ID)
	case amqp.ActionDelete:
		return w.exportDelete(ctx, msg.ID)
	default:
		// Unknown actions are dropped rather than requeued forever.
		slog.WarnContext(ctx, "Dropping message with unknown action",
			"id", msg.ID, "action", msg.Action)
		return nil
	}
}

func (w *ExportWorker) exportCreate(ctx context.Context, id string) error {
	// The server process owns the store; drop our cached view first.
	w.ledger.Refresh()
	tx, err := w.ledger.Get(ctx, id)
	if errors.Is(err, ledger.ErrNotFound) {
		// Deleted between publish and consume; the delete message follows.
		slog.WarnContext(ctx, "Transaction gone before export, skipping", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load transaction %s: %w", id, err)
	}

	ref, err := w.writer.AppendTransaction(ctx, tx)
	if err != nil {
		return fmt.Errorf("append transaction %s: %w", id, err)
	}

	slog.InfoContext(ctx, "Exported transaction", "id", id, "ref", ref)
	return nil
}

func (w *ExportWorker) exportUpdate(ctx context.Context, id string) error {
	if w.deleter != nil {
		if err := w.deleter.RemoveTransaction(ctx, id); err != nil {
			return fmt.Errorf("remove stale row for %s: %w", id, err)
		}
	}
	return w.exportCreate(ctx, id)
}

// Reconcile appends ledger transactions missing from the export target, up
// to batchSize per call. Covers sync messages lost while the worker was
// down. Targets that cannot list their rows are skipped.
func (w *ExportWorker) Reconcile(ctx context.Context, batchSize int) error {
	lister, ok := w.writer.(sheets.ExportLister)
	if !ok {
		slog.DebugContext(ctx, "Export target cannot list rows, skipping reconcile")
		return nil
	}
	if batchSize < 1 {
		batchSize = 10
	}

	w.ledger.Refresh()
	records, err := w.ledger.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	ids, err := lister.ExportedIDs(ctx)
	if err != nil {
		return fmt.Errorf("list exported ids: %w", err)
	}
	exported := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		exported[id] = struct{}{}
	}

	appended := 0
	for _, tx := range records {
		if _, ok := exported[tx.ID]; ok {
			continue
		}
		if _, err := w.writer.AppendTransaction(ctx, tx); err != nil {
			return fmt.Errorf("append transaction %s: %w", tx.ID, err)
		}
		appended++
		if appended >= batchSize {
			break
		}
	}

	if appended > 0 {
		slog.InfoContext(ctx, "Reconciled missing exports", "appended", appended)
	}
	return nil
}

func (w *ExportWorker) exportDelete(ctx context.Context, id string) error {
	if w.deleter == nil {
		slog.WarnContext(ctx, "No export deleter configured, skipping delete", "id", id)
		return nil
	}
	if err := w.deleter.RemoveTransaction(ctx, id); err != nil {
		return fmt.Errorf("remove exported row for %s: %w", id, err)
	}
	slog.InfoContext(ctx, "Removed exported transaction", "id", id)
	return nil
}
