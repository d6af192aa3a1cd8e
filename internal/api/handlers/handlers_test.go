package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mkravets/bankassist/internal/session"
	"github.com/mkravets/bankassist/internal/store"
)

const fixtureAccount = "1234567890"

// fakeCompleter records the last prompt and plays back a canned answer.
type fakeCompleter struct {
	answer     string
	err        error
	lastPrompt string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.answer, f.err
}

// fakeSender records the last message handed to the transport.
type fakeSender struct {
	err     error
	to      string
	subject string
	body    string
}

func (f *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Reset(context.Background()); err != nil {
		t.Fatalf("reset fixtures: %v", err)
	}
	return s
}

// request builds a request carrying the given session in its context.
func request(t *testing.T, method, target, body string, sess *session.Session) *http.Request {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return r.WithContext(session.NewContext(r.Context(), sess))
}

func authedSession() *session.Session {
	sess := session.NewManager().Create()
	sess.Authenticate(fixtureAccount)
	return sess
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestLogin(t *testing.T) {
	h := NewAuthHandler(testStore(t), zerolog.Nop())

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantAuthed bool
	}{
		{"known account", `{"account_number":"1234567890"}`, http.StatusOK, true},
		{"unknown account", `{"account_number":"0000000000"}`, http.StatusUnauthorized, false},
		{"missing account", `{}`, http.StatusBadRequest, false},
		{"malformed body", `not json`, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := session.NewManager().Create()
			w := httptest.NewRecorder()

			h.Login(w, request(t, http.MethodPost, "/api/login", tt.body, sess))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if _, authed := sess.Identity(); authed != tt.wantAuthed {
				t.Errorf("expected authenticated=%v, got %v", tt.wantAuthed, authed)
			}
		})
	}
}

func TestLogin_ReportsCustomer(t *testing.T) {
	h := NewAuthHandler(testStore(t), zerolog.Nop())
	sess := session.NewManager().Create()
	w := httptest.NewRecorder()

	h.Login(w, request(t, http.MethodPost, "/api/login", `{"account_number":"1234567890"}`, sess))

	body := decodeBody(t, w)
	customer, ok := body["customer"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected customer object in response, got %v", body)
	}
	if customer["name"] != "Sanjay S" {
		t.Errorf("expected customer name Sanjay S, got %v", customer["name"])
	}
}

func TestTransactionsList(t *testing.T) {
	h := NewTransactionsHandler(testStore(t), zerolog.Nop())

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCount  int
	}{
		{"unbounded", "/api/transactions", http.StatusOK, 6},
		{"bounded", "/api/transactions?start_date=2024-03-25&end_date=2024-04-02", http.StatusOK, 3},
		{"only start bound", "/api/transactions?start_date=2024-03-25", http.StatusBadRequest, 0},
		{"only end bound", "/api/transactions?end_date=2024-04-02", http.StatusBadRequest, 0},
		{"bad date", "/api/transactions?start_date=25-03-2024&end_date=2024-04-02", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.List(w, request(t, http.MethodGet, tt.target, "", authedSession()))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			body := decodeBody(t, w)
			if int(body["count"].(float64)) != tt.wantCount {
				t.Errorf("expected %d transactions, got %v", tt.wantCount, body["count"])
			}
		})
	}
}

func TestTransactionsList_RequiresAuth(t *testing.T) {
	h := NewTransactionsHandler(testStore(t), zerolog.Nop())
	w := httptest.NewRecorder()

	h.List(w, request(t, http.MethodGet, "/api/transactions", "", session.NewManager().Create()))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unauthenticated session, got %d", w.Code)
	}
}

func TestSummary(t *testing.T) {
	h := NewTransactionsHandler(testStore(t), zerolog.Nop())

	tests := []struct {
		name       string
		target     string
		wantStatus int
		want       map[string]string
	}{
		{
			name:       "default unsigned",
			target:     "/api/summary",
			wantStatus: http.StatusOK,
			want:       map[string]string{"Deposit": "3250", "Withdrawal": "300", "Transfer": "500"},
		},
		{
			name:       "signed policy",
			target:     "/api/summary?policy=signed",
			wantStatus: http.StatusOK,
			want:       map[string]string{"Deposit": "3250", "Withdrawal": "-300", "Transfer": "-500"},
		},
		{
			name:       "unknown policy",
			target:     "/api/summary?policy=absolute",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Summary(w, request(t, http.MethodGet, tt.target, "", authedSession()))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.want == nil {
				return
			}
			body := decodeBody(t, w)
			summary, ok := body["summary"].(map[string]interface{})
			if !ok {
				t.Fatalf("expected summary object, got %v", body)
			}
			for txType, total := range tt.want {
				if summary[txType] != total {
					t.Errorf("type %s: expected total %s, got %v", txType, total, summary[txType])
				}
			}
		})
	}
}

func TestChatAsk(t *testing.T) {
	completer := &fakeCompleter{answer: "You have plenty saved."}
	h := NewChatHandler(testStore(t), completer, zerolog.Nop())
	sess := authedSession()
	w := httptest.NewRecorder()

	h.Ask(w, request(t, http.MethodPost, "/api/chat", `{"question":"Can I afford a vacation?"}`, sess))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["answer"]; got != "You have plenty saved." {
		t.Errorf("expected canned answer, got %v", got)
	}

	// The prompt carries the question and at most the last five transactions.
	if !strings.Contains(completer.lastPrompt, "Can I afford a vacation?") {
		t.Errorf("prompt missing question:\n%s", completer.lastPrompt)
	}
	if strings.Contains(completer.lastPrompt, "2024-03-21") {
		t.Errorf("prompt contains the sixth-oldest transaction:\n%s", completer.lastPrompt)
	}

	conversation := sess.Conversation()
	if len(conversation) != 2 {
		t.Fatalf("expected 2 conversation messages, got %d", len(conversation))
	}
	if conversation[0].Content != "Can I afford a vacation?" || conversation[1].Content != "You have plenty saved." {
		t.Errorf("unexpected conversation log: %+v", conversation)
	}
}

func TestChatAsk_CompleterFailure(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("upstream down")}
	h := NewChatHandler(testStore(t), completer, zerolog.Nop())
	sess := authedSession()
	w := httptest.NewRecorder()

	h.Ask(w, request(t, http.MethodPost, "/api/chat", `{"question":"hello"}`, sess))

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502 on completion failure, got %d", w.Code)
	}
	if len(sess.Conversation()) != 0 {
		t.Error("failed exchange must not be appended to the conversation")
	}
}

func TestChatAsk_EmptyQuestion(t *testing.T) {
	h := NewChatHandler(testStore(t), &fakeCompleter{}, zerolog.Nop())
	w := httptest.NewRecorder()

	h.Ask(w, request(t, http.MethodPost, "/api/chat", `{}`, authedSession()))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty question, got %d", w.Code)
	}
}

func TestStatementEmail(t *testing.T) {
	sender := &fakeSender{}
	h := NewStatementHandler(testStore(t), sender, zerolog.Nop())
	h.now = func() time.Time { return time.Date(2024, 4, 20, 12, 0, 0, 0, time.UTC) }
	w := httptest.NewRecorder()

	h.Email(w, request(t, http.MethodPost, "/api/statement/email", "", authedSession()))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if sender.to != "sanjayshankar91@gmail.com" {
		t.Errorf("statement sent to %q, expected the fixture customer's email", sender.to)
	}
	if sender.subject != "Your 30-Day Bank Statement" {
		t.Errorf("unexpected subject %q", sender.subject)
	}
	// Window [2024-03-21, 2024-04-20] covers all six fixture rows.
	if got := strings.Count(sender.body, " - "); got != 6*3 {
		t.Errorf("expected 6 transaction lines in body, separator count %d:\n%s", got, sender.body)
	}
	if !strings.HasPrefix(sender.body, "Hi Sanjay S,") {
		t.Errorf("unexpected statement greeting:\n%s", sender.body)
	}
}

func TestStatementEmail_EmptyWindow(t *testing.T) {
	sender := &fakeSender{}
	h := NewStatementHandler(testStore(t), sender, zerolog.Nop())
	h.now = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }
	w := httptest.NewRecorder()

	h.Email(w, request(t, http.MethodPost, "/api/statement/email", "", authedSession()))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for an empty window, got %d", w.Code)
	}
	if strings.Contains(sender.body, " - ") {
		t.Errorf("expected empty transaction section:\n%s", sender.body)
	}
}

func TestStatementEmail_TransportFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp refused")}
	h := NewStatementHandler(testStore(t), sender, zerolog.Nop())
	w := httptest.NewRecorder()

	h.Email(w, request(t, http.MethodPost, "/api/statement/email", "", authedSession()))

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502 on transport failure, got %d", w.Code)
	}
}
