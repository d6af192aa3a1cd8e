package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mkravets/bankassist/internal/api/middleware"
	"github.com/mkravets/bankassist/internal/assist"
	"github.com/mkravets/bankassist/internal/mail"
	"github.com/mkravets/bankassist/internal/store"
)

// StatementHandler composes the trailing-30-day statement and hands it to
// the mail transport.
type StatementHandler struct {
	repo   store.Repository
	sender mail.Sender
	log    zerolog.Logger
	now    func() time.Time
}

// NewStatementHandler creates a new statement handler.
func NewStatementHandler(repo store.Repository, sender mail.Sender, log zerolog.Logger) *StatementHandler {
	return &StatementHandler{repo: repo, sender: sender, log: log, now: time.Now}
}

// Email handles POST /api/statement/email.
func (h *StatementHandler) Email(w http.ResponseWriter, r *http.Request) {
	accountNumber, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx := r.Context()

	customer, err := h.repo.GetCustomer(ctx, accountNumber)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to look up customer")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to load customer")
		return
	}

	from, to := assist.StatementWindow(h.now())
	transactions, err := h.repo.ListTransactions(ctx, accountNumber, &from, &to)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to query transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to query transactions")
		return
	}

	body := assist.ComposeStatement(customer.Name, transactions)

	if err := h.sender.Send(ctx, customer.Email, assist.StatementSubject, body); err != nil {
		h.log.Error().Err(err).Str("to", customer.Email).Msg("Failed to send statement email")
		middleware.WriteError(w, http.StatusBadGateway, "Failed to send email")
		return
	}

	h.log.Info().Str("to", customer.Email).Int("transactions", len(transactions)).Msg("Statement email sent")

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"sent": true,
		"to":   customer.Email,
	})
}
