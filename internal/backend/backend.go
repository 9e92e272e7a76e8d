// Package backend assembles the storage, messaging, and assistant pieces
// from configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"kuberax/internal/amqp"
	"kuberax/internal/chat"
	"kuberax/internal/config"
	"kuberax/internal/ledger"
	"kuberax/internal/profile"
	"kuberax/internal/services"
	"kuberax/internal/store"
	"kuberax/internal/store/memory"
	"kuberax/internal/store/sqlite"
)

type CleanupFunc func() error

// Result holds the wired application components. Cleanup must run on
// shutdown; it is never nil.
type Result struct {
	Store        store.RecordStore
	Ledger       *ledger.Ledger
	Profiles     *profile.Manager
	Transactions *services.TransactionService
	Responder    chat.Responder
	Cleanup      CleanupFunc
}

// Build creates the record store for the configured backend, layers the
// ledger and profile manager on it, and attaches AMQP and Gemini when
// configured. Missing optional integrations degrade with a warning.
func Build(ctx context.Context, cfg *config.Config) (*Result, error) {
	rs, storeCleanup, err := buildStore(cfg)
	if err != nil {
		return nil, err
	}

	l := ledger.New(rs)
	profiles := profile.NewManager(rs)

	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			slog.Warn("Failed to initialize AMQP client, continuing without sync", "error", err)
			amqpClient = nil
		} else {
			slog.Info("Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	txs := services.NewTransactionService(l, profiles, amqpClient)

	var responder chat.Responder
	if cfg.GeminiAPIKey != "" {
		r, err := chat.NewGeminiResponder(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Warn("Failed to initialize Gemini client, chat will serve fallback", "error", err)
		} else {
			responder = r
			slog.Info("Initialized Gemini client", "model", cfg.GeminiModel)
		}
	}

	cleanup := func() error {
		// Transaction service owns the AMQP connection.
		errClose := txs.Close()
		if storeCleanup != nil {
			if err := storeCleanup(); err != nil {
				return err
			}
		}
		return errClose
	}

	return &Result{
		Store:        rs,
		Ledger:       l,
		Profiles:     profiles,
		Transactions: txs,
		Responder:    responder,
		Cleanup:      cleanup,
	}, nil
}

func buildStore(cfg *config.Config) (store.RecordStore, CleanupFunc, error) {
	switch cfg.DataBackend {
	case "memory":
		slog.Info("Initialized memory record store")
		return memory.New(), nil, nil
	case "sqlite":
		s, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		slog.Info("Initialized SQLite record store", "db_path", cfg.SQLiteDBPath)
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
