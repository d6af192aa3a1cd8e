package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mkravets/bankassist/internal/api/middleware"
	"github.com/mkravets/bankassist/internal/assist"
	"github.com/mkravets/bankassist/internal/llm"
	"github.com/mkravets/bankassist/internal/session"
	"github.com/mkravets/bankassist/internal/store"
)

// ChatHandler answers free-form customer questions through the completion
// API and keeps the session's conversation log.
type ChatHandler struct {
	repo      store.Repository
	completer llm.Completer
	log       zerolog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(repo store.Repository, completer llm.Completer, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{repo: repo, completer: completer, log: log}
}

// Ask handles POST /api/chat.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	accountNumber, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Question == "" {
		middleware.WriteError(w, http.StatusBadRequest, "question is required")
		return
	}

	ctx := r.Context()

	customer, err := h.repo.GetCustomer(ctx, accountNumber)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to look up customer")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to load customer")
		return
	}

	transactions, err := h.repo.ListTransactions(ctx, accountNumber, nil, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to query transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to query transactions")
		return
	}

	prompt := assist.ComposePrompt(req.Question, customer, transactions)

	answer, err := h.completer.Complete(ctx, prompt)
	if err != nil {
		h.log.Error().Err(err).Msg("Completion API call failed")
		middleware.WriteError(w, http.StatusBadGateway, "Assistant is unavailable")
		return
	}

	sess := session.FromContext(ctx)
	sess.AppendExchange(req.Question, answer)

	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"answer": answer,
	})
}

// Conversation handles GET /api/conversation.
func (h *ChatHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(w, r); !ok {
		return
	}

	sess := session.FromContext(r.Context())
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"conversation": sess.Conversation(),
	})
}
