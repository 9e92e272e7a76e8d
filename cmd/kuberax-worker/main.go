package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"kuberax/internal/amqp"
	"kuberax/internal/config"
	"kuberax/internal/ledger"
	applog "kuberax/internal/log"
	"kuberax/internal/sheets"
	gsheet "kuberax/internal/sheets/google"
	sheetsmem "kuberax/internal/sheets/memory"
	"kuberax/internal/store"
	storemem "kuberax/internal/store/memory"
	"kuberax/internal/store/sqlite"
	"kuberax/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentWorker)
	applog.SetDefault(logger)

	logger.Info("Starting kuberax-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The worker reads the same record store the server writes.
	var rs store.RecordStore
	switch cfg.DataBackend {
	case "sqlite":
		s, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer s.Close()
		rs = s
	default:
		logger.Warn("Memory store is per-process; exports will only see this worker's writes")
		rs = storemem.New()
	}

	var (
		writer  sheets.ExportWriter
		deleter sheets.ExportDeleter
	)
	if cfg.GoogleSpreadsheetID != "" {
		cli, err := gsheet.New(ctx, cfg.GoogleSpreadsheetID, cfg.GoogleSheetName)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		writer, deleter = cli, cli
		logger.Info("Google Sheets client initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID, "sheet", cfg.GoogleSheetName)
	} else {
		exp := sheetsmem.New()
		writer, deleter = exp, exp
		logger.Info("Google Sheets disabled, using in-memory export target")
	}

	exportWorker := worker.NewExportWorker(ledger.New(rs), writer, deleter)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return amqp.ConsumeWithReconnect(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, cfg.ExportBatchSize,
			func(msg *amqp.TransactionSyncMessage) error {
				return exportWorker.Handle(ctx, msg)
			})
	})

	// Periodic reconciliation picks up transactions whose sync messages were
	// lost while the worker was down.
	g.Go(func() error {
		ticker := time.NewTicker(cfg.ExportInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := exportWorker.Reconcile(ctx, cfg.ExportBatchSize); err != nil {
					logger.Error("Reconcile failed", "error", err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.Error("Worker error", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker stopped gracefully")
}
