package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mkravets/bankassist/internal/api/middleware"
	"github.com/mkravets/bankassist/internal/session"
	"github.com/mkravets/bankassist/internal/store"
)

// AuthHandler implements the auth gate: a membership check of the submitted
// account number against the customer table. On success the identity is
// stored on the session for the rest of its lifetime.
type AuthHandler struct {
	repo store.Repository
	log  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(repo store.Repository, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{repo: repo, log: log}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountNumber string `json:"account_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AccountNumber == "" {
		middleware.WriteError(w, http.StatusBadRequest, "account_number is required")
		return
	}

	customer, err := h.repo.GetCustomer(r.Context(), req.AccountNumber)
	if errors.Is(err, store.ErrNotFound) {
		middleware.WriteError(w, http.StatusUnauthorized, "invalid account number")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to look up customer")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to verify account")
		return
	}

	sess := session.FromContext(r.Context())
	sess.Authenticate(customer.AccountNumber)

	h.log.Info().Str("account_number", customer.AccountNumber).Msg("Login verified")

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"customer":      toCustomerJSON(customer),
	})
}

// Customer handles GET /api/customer.
func (h *AuthHandler) Customer(w http.ResponseWriter, r *http.Request) {
	accountNumber, ok := requireAuth(w, r)
	if !ok {
		return
	}

	customer, err := h.repo.GetCustomer(r.Context(), accountNumber)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to look up customer")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to load customer")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, toCustomerJSON(customer))
}
