package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO date format used for transaction dates everywhere in
// the API surface (query parameters, rendered statements, prompts).
const DateLayout = "2006-01-02"

// Customer is one bank customer record. Customers are bulk-created from the
// fixture set at reset time and never mutated afterwards.
type Customer struct {
	AccountNumber string          `gorm:"primaryKey" json:"account_number"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Balance       decimal.Decimal `gorm:"type:decimal(12,2)" json:"balance"`
}

// Transaction is one immutable ledger row. Amount holds the unsigned
// magnitude; the direction of money flow is implied by Type and is not
// reflected in the sign.
//
// ID is an auto-increment key so that insertion order is queryable explicitly
// instead of depending on storage order.
type Transaction struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	AccountNumber string          `gorm:"index" json:"account_number"`
	Date          time.Time       `json:"date"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Description   string          `json:"description"`
}

// Role identifies who produced a conversation message.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Message is one entry in a session's conversation log.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
