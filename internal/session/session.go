// Package session holds per-session UI state: the auth gate outcome and the
// conversation log. A session is created on first contact, carried by an
// opaque cookie, and dropped when the process exits.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mkravets/bankassist/internal/domain"
)

// CookieName is the cookie carrying the session ID.
const CookieName = "bankassist_session"

// Session is the state for one interactive session. Authenticated is terminal
// for the session's lifetime: there is no logout transition, and a session
// never holds more than one account number.
type Session struct {
	ID string

	mu            sync.Mutex
	authenticated bool
	accountNumber string
	conversation  []domain.Message
}

// Authenticate records a successful auth gate transition. Once a session is
// authenticated, later calls are no-ops so the identity cannot be swapped.
func (s *Session) Authenticate(accountNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authenticated {
		return
	}
	s.authenticated = true
	s.accountNumber = accountNumber
}

// Identity returns the authenticated account number, if any.
func (s *Session) Identity() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accountNumber, s.authenticated
}

// AppendExchange appends one user question and the assistant's answer to the
// conversation log, in order.
func (s *Session) AppendExchange(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversation = append(s.conversation,
		domain.Message{Role: domain.RoleUser, Content: question},
		domain.Message{Role: domain.RoleAI, Content: answer},
	)
}

// Conversation returns a copy of the conversation log.
func (s *Session) Conversation() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.conversation))
	copy(out, s.conversation)
	return out
}

// Manager tracks live sessions by ID.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create registers a new unauthenticated session with a fresh opaque ID.
func (m *Manager) Create() *Session {
	s := &Session{ID: uuid.New().String()}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given ID, if it exists.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Delete drops a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

type contextKey struct{}

// NewContext attaches the session to the context.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext retrieves the session from the context, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}
