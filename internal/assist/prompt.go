package assist

import (
	"fmt"
	"strings"

	"github.com/mkravets/bankassist/internal/domain"
)

// recentTransactionLimit caps how many transactions are rendered into the
// prompt: the last five in insertion order.
const recentTransactionLimit = 5

// ComposePrompt renders the fixed prompt layout sent to the completion API:
// the customer's question, their identity and balance, and their most recent
// transactions, followed by the assistant instruction. The question is passed
// through as-is with no validation or length limit.
func ComposePrompt(question string, customer *domain.Customer, transactions []domain.Transaction) string {
	if len(transactions) > recentTransactionLimit {
		transactions = transactions[len(transactions)-recentTransactionLimit:]
	}

	lines := make([]string, 0, len(transactions))
	for _, t := range transactions {
		lines = append(lines, transactionLine(t))
	}

	var b strings.Builder
	b.WriteString("### CUSTOMER QUERY:\n")
	b.WriteString(question + "\n\n")
	b.WriteString("### CUSTOMER INFO:\n")
	b.WriteString("Name: " + customer.Name + "\n")
	b.WriteString("Balance: $" + customer.Balance.String() + "\n")
	b.WriteString("Recent Transactions:\n")
	b.WriteString(strings.Join(lines, "\n") + "\n\n")
	b.WriteString("### RESPONSE:\n")
	b.WriteString("You are a professional financial assistant. Help the user clearly and concisely based on the given data.\n")
	return b.String()
}

// transactionLine renders one transaction in the shared one-line format used
// by both the prompt and the emailed statement.
func transactionLine(t domain.Transaction) string {
	return fmt.Sprintf("%s - %s - $%s - %s", t.Date.Format(domain.DateLayout), t.Type, t.Amount, t.Description)
}
