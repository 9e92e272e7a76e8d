package worker

import (
	"context"
	"testing"

	"kuberax/internal/amqp"
	"kuberax/internal/core"
	"kuberax/internal/ledger"
	sheetsmem "kuberax/internal/sheets/memory"
	storemem "kuberax/internal/store/memory"
)

func newFixture(t *testing.T) (*ExportWorker, *ledger.Ledger, *sheetsmem.Exporter) {
	t.Helper()
	l := ledger.New(storemem.New())
	exp := sheetsmem.New()
	return NewExportWorker(l, exp, exp), l, exp
}

func addTransaction(t *testing.T, l *ledger.Ledger) core.Transaction {
	t.Helper()
	tx, err := l.Add(context.Background(), core.Draft{
		Amount:       core.Money{Cents: 1500},
		Type:         core.Expense,
		MainCategory: "Food",
		SubCategory:  "Groceries",
	}, "USD")
	if err != nil {
		t.Fatal(err)
	}
	return tx
}

func TestHandleCreateExportsRow(t *testing.T) {
	w, l, exp := newFixture(t)
	tx := addTransaction(t, l)

	msg := amqp.NewTransactionSyncMessage(tx.ID, amqp.ActionCreate)
	if err := w.Handle(context.Background(), msg); err != nil {
		t.Fatal(err)
	}

	rows := exp.Rows()
	if len(rows) != 1 || rows[0].ID != tx.ID {
		t.Fatalf("exported rows = %+v, want single row for %s", rows, tx.ID)
	}
}

func TestHandleCreateMissingTransactionSkips(t *testing.T) {
	w, _, exp := newFixture(t)

	msg := amqp.NewTransactionSyncMessage("gone", amqp.ActionCreate)
	if err := w.Handle(context.Background(), msg); err != nil {
		t.Fatalf("missing transaction must not requeue: %v", err)
	}
	if len(exp.Rows()) != 0 {
		t.Fatal("nothing should be exported for a missing transaction")
	}
}

func TestHandleUpdateReplacesRow(t *testing.T) {
	w, l, exp := newFixture(t)
	tx := addTransaction(t, l)

	ctx := context.Background()
	if err := w.Handle(ctx, amqp.NewTransactionSyncMessage(tx.ID, amqp.ActionCreate)); err != nil {
		t.Fatal(err)
	}

	updated, err := l.Update(ctx, tx.ID, core.Draft{
		Amount:       core.Money{Cents: 4200},
		Type:         core.Expense,
		MainCategory: "Food",
		SubCategory:  "Snacks",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Handle(ctx, amqp.NewTransactionSyncMessage(tx.ID, amqp.ActionUpdate)); err != nil {
		t.Fatal(err)
	}

	rows := exp.Rows()
	if len(rows) != 1 {
		t.Fatalf("exported rows = %d, want 1 after update", len(rows))
	}
	if rows[0].Amount.Cents != updated.Amount.Cents || rows[0].SubCategory != "Snacks" {
		t.Fatalf("exported row not refreshed: %+v", rows[0])
	}
}

func TestHandleDeleteRemovesRow(t *testing.T) {
	w, l, exp := newFixture(t)
	tx := addTransaction(t, l)

	ctx := context.Background()
	if err := w.Handle(ctx, amqp.NewTransactionSyncMessage(tx.ID, amqp.ActionCreate)); err != nil {
		t.Fatal(err)
	}
	if err := w.Handle(ctx, amqp.NewTransactionSyncMessage(tx.ID, amqp.ActionDelete)); err != nil {
		t.Fatal(err)
	}
	if len(exp.Rows()) != 0 {
		t.Fatal("row still present after delete")
	}
}

func TestReconcileAppendsMissingRows(t *testing.T) {
	w, l, exp := newFixture(t)
	ctx := context.Background()

	first := addTransaction(t, l)
	second := addTransaction(t, l)

	// Only the first transaction made it to the export target.
	if err := w.Handle(ctx, amqp.NewTransactionSyncMessage(first.ID, amqp.ActionCreate)); err != nil {
		t.Fatal(err)
	}

	if err := w.Reconcile(ctx, 10); err != nil {
		t.Fatal(err)
	}

	rows := exp.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 after reconcile", len(rows))
	}
	found := false
	for _, r := range rows {
		if r.ID == second.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("second transaction %s not reconciled", second.ID)
	}

	// Idempotent: nothing more to append.
	if err := w.Reconcile(ctx, 10); err != nil {
		t.Fatal(err)
	}
	if len(exp.Rows()) != 2 {
		t.Fatalf("rows = %d after second reconcile", len(exp.Rows()))
	}
}

func TestReconcileHonorsBatchSize(t *testing.T) {
	w, l, exp := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		addTransaction(t, l)
	}

	if err := w.Reconcile(ctx, 2); err != nil {
		t.Fatal(err)
	}
	if len(exp.Rows()) != 2 {
		t.Fatalf("rows = %d, want batch-limited 2", len(exp.Rows()))
	}
}

func TestHandleUnknownActionDropped(t *testing.T) {
	w, _, _ := newFixture(t)

	msg := amqp.NewTransactionSyncMessage("tx-1", "rename")
	if err := w.Handle(context.Background(), msg); err != nil {
		t.Fatalf("unknown action must be dropped, got %v", err)
	}
}
