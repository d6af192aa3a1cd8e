// Package handlers implements the JSON API behind the demo page. Every
// feature endpoint sits behind the auth gate: it serves only sessions that
// have resolved a customer identity through login.
package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mkravets/bankassist/internal/api/middleware"
	"github.com/mkravets/bankassist/internal/domain"
	"github.com/mkravets/bankassist/internal/session"
)

// customerJSON is the customer shape returned to the page. The account number
// is echoed back because it doubles as the login token in this demo.
type customerJSON struct {
	AccountNumber string          `json:"account_number"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Balance       decimal.Decimal `json:"balance"`
}

func toCustomerJSON(c *domain.Customer) customerJSON {
	return customerJSON{
		AccountNumber: c.AccountNumber,
		Name:          c.Name,
		Email:         c.Email,
		Balance:       c.Balance,
	}
}

// transactionJSON is the transaction shape returned to the page, with the
// date rendered as an ISO string.
type transactionJSON struct {
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func toTransactionJSON(transactions []domain.Transaction) []transactionJSON {
	out := make([]transactionJSON, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, transactionJSON{
			Date:        t.Date.Format(domain.DateLayout),
			Type:        t.Type,
			Amount:      t.Amount,
			Description: t.Description,
		})
	}
	return out
}

// requireAuth returns the session's authenticated account number, writing a
// 401 and returning ok=false for unauthenticated sessions.
func requireAuth(w http.ResponseWriter, r *http.Request) (accountNumber string, ok bool) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		middleware.WriteError(w, http.StatusUnauthorized, "login required")
		return "", false
	}
	accountNumber, authenticated := sess.Identity()
	if !authenticated {
		middleware.WriteError(w, http.StatusUnauthorized, "login required")
		return "", false
	}
	return accountNumber, true
}
