// Package http exposes the ledger and its companion features as a JSON API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"kuberax/internal/cache"
	"kuberax/internal/chat"
	"kuberax/internal/core"
	"kuberax/internal/ledger"
	applog "kuberax/internal/log"
	"kuberax/internal/middleware/ratelimit"
	"kuberax/internal/middleware/security"
	"kuberax/internal/middleware/trace"
	"kuberax/internal/profile"
	"kuberax/internal/services"
)

type Server struct {
	http.Server

	transactions *services.TransactionService
	ledger       *ledger.Ledger
	profiles     *profile.Manager
	responder    chat.Responder
	logger       *applog.Logger

	limiter *ratelimit.Limiter
	tracer  *trace.Middleware
	headers *security.HeadersMiddleware

	// Computed views are cached until the next mutation.
	statsCache *cache.LRU[core.AggregateStats]
	topCache   *cache.LRU[[]core.CategoryShare]

	shutdownOnce sync.Once
}

// NewServer wires routes and middleware, returning a ready-to-run server.
// responder may be nil when no Gemini key is configured; the chat endpoint
// then always serves the fallback reply.
func NewServer(addr string, txs *services.TransactionService, l *ledger.Ledger, profiles *profile.Manager, responder chat.Responder) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		transactions: txs,
		ledger:       l,
		profiles:     profiles,
		responder:    responder,
		logger:       applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentHTTP),
		limiter:      ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		tracer:       trace.NewMiddleware(clientIP),
		headers:      security.NewHeadersMiddleware(security.DefaultHeadersConfig()),
		statsCache:   cache.NewLRU[core.AggregateStats](1, 5*time.Minute),
		topCache:     cache.NewLRU[[]core.CategoryShare](16, 5*time.Minute),
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.Handle("/api/transactions", s.wrap(http.HandlerFunc(s.handleTransactions)))
	mux.Handle("/api/transactions/", s.wrap(http.HandlerFunc(s.handleTransactionByID)))
	mux.Handle("/api/stats", s.wrap(http.HandlerFunc(s.handleStats)))
	mux.Handle("/api/stats/categories", s.wrap(http.HandlerFunc(s.handleTopCategories)))
	mux.Handle("/api/profile", s.wrap(http.HandlerFunc(s.handleProfile)))
	mux.Handle("/api/currency/convert", s.wrap(http.HandlerFunc(s.handleConvert)))
	mux.Handle("/api/guide", s.wrap(http.HandlerFunc(s.handleGuide)))
	mux.Handle("/api/stocks", s.wrap(http.HandlerFunc(s.handleStocks)))
	mux.Handle("/api/quiz", s.wrap(http.HandlerFunc(s.handleQuiz)))
	mux.Handle("/api/quiz/answer", s.wrap(http.HandlerFunc(s.handleQuizAnswer)))
	mux.Handle("/api/chat", s.wrap(http.HandlerFunc(s.handleChat)))

	return s
}

// wrap applies trace logging, security headers, and rate limiting in the
// order the request passes through them.
func (s *Server) wrap(next http.Handler) http.Handler {
	limited := s.limiter.Middleware(clientIP, nil)(next)
	return s.tracer.Middleware(s.headers.Middleware(limited))
}

// invalidate drops cached aggregates after a mutation.
func (s *Server) invalidate() {
	s.statsCache.Purge()
	s.topCache.Purge()
}

// Shutdown stops background goroutines and then the HTTP listener.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
