package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mkravets/bankassist/internal/api/middleware"
	"github.com/mkravets/bankassist/internal/assist"
	"github.com/mkravets/bankassist/internal/domain"
	"github.com/mkravets/bankassist/internal/store"
)

// TransactionsHandler serves the transaction list and the per-type summary.
type TransactionsHandler struct {
	repo store.Repository
	log  zerolog.Logger
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(repo store.Repository, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{repo: repo, log: log}
}

// List handles GET /api/transactions. The start_date and end_date query
// parameters must be given together or not at all.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	accountNumber, ok := requireAuth(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	startStr := query.Get("start_date")
	endStr := query.Get("end_date")

	var from, to *time.Time
	if startStr != "" || endStr != "" {
		if startStr == "" || endStr == "" {
			middleware.WriteError(w, http.StatusBadRequest, "start_date and end_date must be given together")
			return
		}
		start, err := time.Parse(domain.DateLayout, startStr)
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Invalid start_date format")
			return
		}
		end, err := time.Parse(domain.DateLayout, endStr)
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Invalid end_date format")
			return
		}
		from, to = &start, &end
	}

	transactions, err := h.repo.ListTransactions(r.Context(), accountNumber, from, to)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to query transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to query transactions")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": toTransactionJSON(transactions),
		"count":        len(transactions),
	})
}

// Summary handles GET /api/summary. The optional policy query parameter
// selects signed or unsigned totals; unsigned is the default.
func (h *TransactionsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	accountNumber, ok := requireAuth(w, r)
	if !ok {
		return
	}

	policy := assist.UnsignedTotals
	switch r.URL.Query().Get("policy") {
	case "", "unsigned":
	case "signed":
		policy = assist.SignedTotals
	default:
		middleware.WriteError(w, http.StatusBadRequest, "policy must be signed or unsigned")
		return
	}

	transactions, err := h.repo.ListTransactions(r.Context(), accountNumber, nil, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to query transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to query transactions")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"summary": assist.SummarizeByType(transactions, policy),
	})
}
