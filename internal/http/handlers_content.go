package http

import (
	"net/http"
	"strconv"
	"strings"

	"kuberax/internal/content"
	"kuberax/internal/currency"
)

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	q := r.URL.Query()
	amountStr := strings.TrimSpace(q.Get("amount"))
	from := strings.ToUpper(strings.TrimSpace(q.Get("from")))
	to := strings.ToUpper(strings.TrimSpace(q.Get("to")))

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid amount"})
		return
	}

	result, err := currency.Convert(amount, from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"amount": amount,
		"from":   from,
		"to":     to,
		"result": result,
		"symbol": currency.Symbol(to),
	})
}

func (s *Server) handleGuide(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sections": content.Guide(),
	})
}

func (s *Server) handleStocks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": content.StockCategories,
		"stocks":     content.Stocks(q.Get("category"), q.Get("q")),
	})
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	questions := content.QuizQuestions()
	writeJSON(w, http.StatusOK, map[string]any{
		"questions": questions,
		"length":    len(questions),
	})
}

type quizAnswerRequest struct {
	Question int `json:"question"`
	Option   int `json:"option"`
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	var req quizAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	correct, err := content.CheckAnswer(req.Question, req.Option)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"question": req.Question,
		"correct":  correct,
	})
}
