package assist

import (
	"strings"
	"time"

	"github.com/mkravets/bankassist/internal/domain"
)

// StatementSubject is the fixed subject line of the emailed statement.
const StatementSubject = "Your 30-Day Bank Statement"

// statementDays is the trailing window covered by the statement.
const statementDays = 30

// StatementWindow returns the inclusive [now − 30 days, now] date range for
// the emailed statement, truncated to whole days.
func StatementWindow(now time.Time) (time.Time, time.Time) {
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -statementDays)
	return from, to
}

// ComposeStatement renders the plain-text statement body: a greeting, one
// line per transaction, and a sign-off. An empty transaction list produces a
// body with an empty transaction section.
func ComposeStatement(customerName string, transactions []domain.Transaction) string {
	lines := make([]string, 0, len(transactions))
	for _, t := range transactions {
		lines = append(lines, transactionLine(t))
	}

	var b strings.Builder
	b.WriteString("Hi " + customerName + ",\n\n")
	b.WriteString("Here is your statement for the last 30 days:\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nRegards,\nYour Bank\n")
	return b.String()
}
