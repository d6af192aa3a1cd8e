package assist

import (
	"strings"
	"testing"
	"time"
)

func TestComposeStatement(t *testing.T) {
	body := ComposeStatement("Sanjay S", fixtureTransactions())

	if !strings.HasPrefix(body, "Hi Sanjay S,\n\nHere is your statement for the last 30 days:\n\n") {
		t.Errorf("unexpected statement header:\n%s", body)
	}
	if !strings.HasSuffix(body, "\n\nRegards,\nYour Bank\n") {
		t.Errorf("unexpected statement sign-off:\n%s", body)
	}
	if !strings.Contains(body, "2024-03-21 - Deposit - $1000 - Salary credited") {
		t.Errorf("statement missing transaction line:\n%s", body)
	}
	if got := strings.Count(body, " - "); got != 6*3 {
		t.Errorf("expected 6 transaction lines, separator count %d", got)
	}
}

func TestComposeStatement_Empty(t *testing.T) {
	body := ComposeStatement("Sanjay S", nil)

	want := "Hi Sanjay S,\n\nHere is your statement for the last 30 days:\n\n\n\nRegards,\nYour Bank\n"
	if body != want {
		t.Errorf("empty statement body mismatch:\ngot  %q\nwant %q", body, want)
	}
}

func TestStatementWindow(t *testing.T) {
	now := time.Date(2024, 4, 20, 15, 30, 0, 0, time.UTC)
	from, to := StatementWindow(now)

	if got := to.Format("2006-01-02"); got != "2024-04-20" {
		t.Errorf("expected window end 2024-04-20, got %s", got)
	}
	if got := from.Format("2006-01-02"); got != "2024-03-21" {
		t.Errorf("expected window start 2024-03-21, got %s", got)
	}
}
