// Package store is the persistence layer: a SQLite database holding the
// customer and transaction tables, accessed through GORM.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mkravets/bankassist/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// Repository is the read/reset interface the handlers and the seed CLI depend
// on. The concrete implementation is Store; tests may substitute their own.
type Repository interface {
	Reset(ctx context.Context) error
	GetCustomer(ctx context.Context, accountNumber string) (*domain.Customer, error)
	ListTransactions(ctx context.Context, accountNumber string, from, to *time.Time) ([]domain.Transaction, error)
}

// Store is the GORM-backed implementation of Repository.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path and migrates
// the customer and transaction tables.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store.Open: open %s: %w", path, err)
	}

	if err := db.AutoMigrate(&domain.Customer{}, &domain.Transaction{}); err != nil {
		return nil, fmt.Errorf("store.Open: migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Reset wipes both tables and re-inserts the fixture rows. It is destructive
// and idempotent: running it any number of times leaves exactly the fixture
// set (one customer, six transactions) in the store.
func (s *Store) Reset(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM transactions").Error; err != nil {
			return fmt.Errorf("store.Reset: clear transactions: %w", err)
		}
		if err := tx.Exec("DELETE FROM customers").Error; err != nil {
			return fmt.Errorf("store.Reset: clear customers: %w", err)
		}

		customers := fixtureCustomers()
		if err := tx.Create(&customers).Error; err != nil {
			return fmt.Errorf("store.Reset: insert customers: %w", err)
		}
		transactions := fixtureTransactions()
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("store.Reset: insert transactions: %w", err)
		}
		return nil
	})
}

// GetCustomer looks up a customer by account number. Returns ErrNotFound when
// the account number matches no customer.
func (s *Store) GetCustomer(ctx context.Context, accountNumber string) (*domain.Customer, error) {
	var customer domain.Customer
	err := s.db.WithContext(ctx).First(&customer, "account_number = ?", accountNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store.GetCustomer: %w", err)
	}
	return &customer, nil
}

// ListTransactions returns the account's transactions in insertion order.
// When both bounds are non-nil the result is filtered to date ∈ [from, to]
// inclusive; callers must pass both bounds or neither. An account with no
// matching rows yields an empty slice, not an error.
func (s *Store) ListTransactions(ctx context.Context, accountNumber string, from, to *time.Time) ([]domain.Transaction, error) {
	q := s.db.WithContext(ctx).Where("account_number = ?", accountNumber)
	if from != nil && to != nil {
		q = q.Where("date BETWEEN ? AND ?", *from, *to)
	}

	transactions := []domain.Transaction{}
	if err := q.Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("store.ListTransactions: %w", err)
	}
	return transactions, nil
}
