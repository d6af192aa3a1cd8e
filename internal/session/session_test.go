package session

import (
	"testing"

	"github.com/mkravets/bankassist/internal/domain"
)

func TestSession_AuthGate(t *testing.T) {
	m := NewManager()
	s := m.Create()

	if _, ok := s.Identity(); ok {
		t.Fatal("new session must start unauthenticated")
	}

	s.Authenticate("1234567890")
	acct, ok := s.Identity()
	if !ok || acct != "1234567890" {
		t.Fatalf("expected authenticated identity 1234567890, got %q (ok=%v)", acct, ok)
	}

	// Authenticated is terminal: the identity cannot be replaced.
	s.Authenticate("9999999999")
	acct, _ = s.Identity()
	if acct != "1234567890" {
		t.Errorf("identity was replaced after authentication, got %q", acct)
	}
}

func TestSession_Conversation(t *testing.T) {
	s := NewManager().Create()

	if len(s.Conversation()) != 0 {
		t.Fatal("new session must have an empty conversation")
	}

	s.AppendExchange("q1", "a1")
	s.AppendExchange("q2", "a2")

	got := s.Conversation()
	want := []domain.Message{
		{Role: domain.RoleUser, Content: "q1"},
		{Role: domain.RoleAI, Content: "a1"},
		{Role: domain.RoleUser, Content: "q2"},
		{Role: domain.RoleAI, Content: "a2"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	// The returned slice is a copy.
	got[0].Content = "mutated"
	if s.Conversation()[0].Content != "q1" {
		t.Error("Conversation must return a copy of the log")
	}
}

func TestManager(t *testing.T) {
	m := NewManager()
	s := m.Create()

	if s.ID == "" {
		t.Fatal("session must get an opaque ID")
	}

	got, ok := m.Get(s.ID)
	if !ok || got != s {
		t.Fatal("Get must return the created session")
	}

	if _, ok := m.Get("missing"); ok {
		t.Error("Get must miss for unknown IDs")
	}

	m.Delete(s.ID)
	if _, ok := m.Get(s.ID); ok {
		t.Error("session must be gone after Delete")
	}
}
