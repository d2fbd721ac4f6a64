// Package store defines the persistence ports used by the ledger: the
// remote document store that holds each user's expenses and the local
// cache that mirrors the in-memory list.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// CacheKey is the fixed name the expense list is cached under.
const CacheKey = "expenses"

// Fields is the partial field set sent to the remote store on update.
// It never contains the id.
type Fields struct {
	Name     string          `json:"name"`
	Category models.Category `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// FieldsOf extracts the mutable fields of an expense.
func FieldsOf(e models.Expense) Fields {
	return Fields{
		Name:     e.Name,
		Category: e.Category,
		Amount:   e.Amount,
	}
}

// Remote is a document store holding the expenses of all users.
type Remote interface {
	// ListByOwner returns all expenses of the user, in insertion order.
	ListByOwner(ctx context.Context, owner string) ([]models.Expense, error)

	// Create persists a new expense. ID and UserID must be set.
	Create(ctx context.Context, e models.Expense) error

	// Update applies fields to the expense of owner with the given id.
	Update(ctx context.Context, owner string, id models.ExpenseID, fields Fields) error

	// Delete removes the expense of owner with the given id.
	Delete(ctx context.Context, owner string, id models.ExpenseID) error
}

// Cache stores one serialized expense list per user under CacheKey.
type Cache interface {
	// Load returns the cached list. ok is false if nothing was ever written.
	Load(ctx context.Context, user string) (expenses []models.Expense, ok bool, err error)

	// Save overwrites the cached list.
	Save(ctx context.Context, user string, expenses []models.Expense) error
}

// Encode serializes an expense list into the cache blob format.
func Encode(expenses []models.Expense) ([]byte, error) {
	if expenses == nil {
		expenses = []models.Expense{}
	}

	b, err := json.Marshal(expenses)
	if err != nil {
		return nil, fmt.Errorf("encoding expenses: %w", err)
	}
	return b, nil
}

// Decode parses a cache blob. Records without an origin tag get it derived
// from the shape of their id.
func Decode(b []byte) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := json.Unmarshal(b, &expenses); err != nil {
		return nil, fmt.Errorf("decoding expenses: %w", err)
	}

	for i := range expenses {
		expenses[i].ResolveOrigin()
	}

	return expenses, nil
}
