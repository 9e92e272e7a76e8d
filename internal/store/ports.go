// Package store defines the key-value record store the ledger persists
// through, plus the well-known keys it uses.
package store

import "context"

// Keys used by the application.
const (
	KeyTransactions = "transactions"
	KeyUserData     = "userData"
	KeyOnboarding   = "onboardingCompleted"
)

// RecordStore is the outbound persistence port. Values are opaque serialized
// payloads; Get reports absence via the boolean, not an error.
type RecordStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
