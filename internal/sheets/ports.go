// Package sheets defines the outbound ports for the spreadsheet export
// target.
package sheets

import (
	"context"

	"kuberax/internal/core"
)

type (
	// ExportWriter appends one transaction row to the export target and
	// returns an opaque row reference.
	ExportWriter interface {
		AppendTransaction(ctx context.Context, tx core.Transaction) (rowRef string, err error)
	}

	// ExportDeleter removes the exported row for a transaction id. Removing
	// an id that was never exported is a no-op.
	ExportDeleter interface {
		RemoveTransaction(ctx context.Context, id string) error
	}

	// ExportLister reports which transaction ids are already present in the
	// export target. Optional; reconciliation skips targets without it.
	ExportLister interface {
		ExportedIDs(ctx context.Context) ([]string, error)
	}
)
