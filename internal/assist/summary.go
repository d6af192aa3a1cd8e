// Package assist holds the assistant's working logic: folding transactions
// into per-type totals, composing the model prompt, and rendering the emailed
// statement.
package assist

import (
	"github.com/shopspring/decimal"

	"github.com/mkravets/bankassist/internal/domain"
)

// SummaryPolicy selects how transaction amounts contribute to per-type totals.
type SummaryPolicy int

const (
	// UnsignedTotals adds every amount with its stored magnitude, including
	// withdrawals and transfers. This matches the legacy demo's behavior and
	// is the default.
	UnsignedTotals SummaryPolicy = iota
	// SignedTotals subtracts outflow types (Withdrawal, Transfer) instead of
	// adding them.
	SignedTotals
)

// Transaction types treated as outflows under SignedTotals.
var outflowTypes = map[string]bool{
	"Withdrawal": true,
	"Transfer":   true,
}

// SummarizeByType folds transactions into a mapping from transaction type to
// total amount under the given policy.
func SummarizeByType(transactions []domain.Transaction, policy SummaryPolicy) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(transactions))
	for _, t := range transactions {
		amount := t.Amount
		if policy == SignedTotals && outflowTypes[t.Type] {
			amount = amount.Neg()
		}
		totals[t.Type] = totals[t.Type].Add(amount)
	}
	return totals
}
