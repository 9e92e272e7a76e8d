package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"kuberax/internal/core"
	applog "kuberax/internal/log"
)

// amountField accepts the amount either as a JSON number or as the free-text
// string the client sends from its amount input ("25,50" and "25.50" both
// parse to 2550 cents).
type amountField struct {
	core.Money
}

func (a *amountField) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		cents, err := core.ParseDecimalToCents(s)
		if err != nil {
			return err
		}
		a.Cents = cents
		return nil
	}
	return a.Money.UnmarshalJSON(data)
}

type transactionRequest struct {
	Amount       amountField `json:"amount"`
	Type         string      `json:"type"`
	MainCategory string      `json:"mainCategory"`
	SubCategory  string      `json:"subCategory"`
}

func (req transactionRequest) draft() (core.Draft, error) {
	t, err := core.ParseTransactionType(req.Type)
	if err != nil {
		return core.Draft{}, err
	}
	return core.Draft{
		Amount:       req.Amount.Money,
		Type:         t,
		MainCategory: strings.TrimSpace(req.MainCategory),
		SubCategory:  strings.TrimSpace(req.SubCategory),
	}, nil
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r)
	case http.MethodPost:
		s.createTransaction(w, r)
	case http.MethodDelete:
		s.clearTransactions(w, r)
	default:
		methodNotAllowed(w, "GET, POST, DELETE")
	}
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.updateTransaction(w, r, id)
	case http.MethodDelete:
		s.deleteTransaction(w, r, id)
	default:
		methodNotAllowed(w, "PUT, DELETE")
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	records, err := s.ledger.Load(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	draft, err := req.draft()
	if err != nil {
		writeError(w, err)
		return
	}

	tx, err := s.transactions.Create(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.InfoContext(r.Context(), "Transaction created",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldTransactionID, tx.ID,
		applog.FieldType, tx.Type.String(),
		applog.FieldAmountCents, tx.Amount.Cents,
		applog.FieldMainCategory, tx.MainCategory,
		applog.FieldSubCategory, tx.SubCategory,
		applog.FieldCurrency, tx.Currency)

	s.invalidate()
	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) updateTransaction(w http.ResponseWriter, r *http.Request, id string) {
	var req transactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	draft, err := req.draft()
	if err != nil {
		writeError(w, err)
		return
	}

	tx, err := s.transactions.Update(r.Context(), id, draft)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.InfoContext(r.Context(), "Transaction updated",
		applog.FieldOperation, applog.OpUpdate,
		applog.FieldTransactionID, tx.ID)

	s.invalidate()
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.transactions.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	s.logger.InfoContext(r.Context(), "Transaction deleted",
		applog.FieldOperation, applog.OpDelete,
		applog.FieldTransactionID, id)

	s.invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearTransactions(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	s.logger.InfoContext(r.Context(), "Ledger cleared",
		applog.FieldOperation, applog.OpClear)

	s.invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	if stats, ok := s.statsCache.Get("stats"); ok {
		writeJSON(w, http.StatusOK, stats)
		return
	}

	stats, err := s.ledger.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	s.statsCache.Set("stats", stats)
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleTopCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	limit := 0
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	key := fmt.Sprintf("top:%d", limit)
	if shares, ok := s.topCache.Get(key); ok {
		writeJSON(w, http.StatusOK, shares)
		return
	}

	shares, err := s.ledger.TopCategories(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	s.topCache.Set(key, shares)
	writeJSON(w, http.StatusOK, shares)
}
