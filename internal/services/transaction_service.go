// Package services orchestrates ledger mutations with the downstream
// export queue.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kuberax/internal/amqp"
	"kuberax/internal/core"
	"kuberax/internal/ledger"
	"kuberax/internal/profile"
)

// TransactionService applies mutations to the ledger and publishes sync
// messages for the export worker. Publish failures never fail the request;
// the local write already succeeded.
type TransactionService struct {
	ledger     *ledger.Ledger
	profiles   *profile.Manager
	amqpClient *amqp.Client
}

func NewTransactionService(l *ledger.Ledger, profiles *profile.Manager, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{
		ledger:     l,
		profiles:   profiles,
		amqpClient: amqpClient,
	}
}

// Create validates and records a new transaction. The stored currency is a
// snapshot of the profile's preferred currency at creation time.
func (s *TransactionService) Create(ctx context.Context, draft core.Draft) (core.Transaction, error) {
	currency := profile.DefaultCurrency
	if s.profiles != nil {
		currency = s.profiles.Currency(ctx)
	}

	tx, err := s.ledger.Add(ctx, draft, currency)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}

	s.publish(ctx, tx.ID, amqp.ActionCreate)
	return tx, nil
}

// Update replaces the mutable fields of an existing transaction.
func (s *TransactionService) Update(ctx context.Context, id string, draft core.Draft) (core.Transaction, error) {
	tx, err := s.ledger.Update(ctx, id, draft)
	if err != nil {
		return core.Transaction{}, err
	}

	s.publish(ctx, tx.ID, amqp.ActionUpdate)
	return tx, nil
}

// Delete removes a transaction. Unknown ids are ignored and publish nothing;
// store failures surface to the caller.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	if _, err := s.ledger.Get(ctx, id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.ledger.Remove(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, id, amqp.ActionDelete)
	return nil
}

func (s *TransactionService) publish(ctx context.Context, id, action string) {
	if s.amqpClient == nil {
		slog.DebugContext(ctx, "AMQP client not available, skipping sync message", "id", id, "action", action)
		return
	}
	if err := s.amqpClient.PublishTransactionSync(ctx, id, action); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"id", id, "action", action, "error", err)
	}
}

// Close releases the AMQP connection if one was configured.
func (s *TransactionService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close amqp client: %w", err)
		}
	}
	return nil
}
