package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkravets/bankassist/internal/domain"
)

// Demo fixture data. Reset replaces whatever is in the store with exactly
// these rows, so tests and the demo page always start from the same state.
func fixtureCustomers() []domain.Customer {
	return []domain.Customer{
		{
			AccountNumber: "1234567890",
			Name:          "Sanjay S",
			Email:         "sanjayshankar91@gmail.com",
			Balance:       decimal.NewFromFloat(12500.75),
		},
	}
}

func fixtureTransactions() []domain.Transaction {
	return []domain.Transaction{
		{AccountNumber: "1234567890", Date: date(2024, 3, 21), Type: "Deposit", Amount: decimal.NewFromInt(1000), Description: "Salary credited"},
		{AccountNumber: "1234567890", Date: date(2024, 3, 25), Type: "Withdrawal", Amount: decimal.NewFromInt(200), Description: "ATM cash withdrawal"},
		{AccountNumber: "1234567890", Date: date(2024, 3, 30), Type: "Transfer", Amount: decimal.NewFromInt(500), Description: "Sent to friend"},
		{AccountNumber: "1234567890", Date: date(2024, 4, 2), Type: "Deposit", Amount: decimal.NewFromInt(750), Description: "Refund from vendor"},
		{AccountNumber: "1234567890", Date: date(2024, 4, 10), Type: "Withdrawal", Amount: decimal.NewFromInt(100), Description: "Online shopping"},
		{AccountNumber: "1234567890", Date: date(2024, 4, 19), Type: "Deposit", Amount: decimal.NewFromInt(1500), Description: "Freelance payment"},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
