// Package events publishes committed expense mutations.
package events

import (
	"context"
	"time"

	"github.com/expense-tracker/backend/internal/models"
)

// Kind is the type of mutation an event reports.
type Kind string

const (
	ExpenseCreated Kind = "expense.created"
	ExpenseUpdated Kind = "expense.updated"
	ExpenseDeleted Kind = "expense.deleted"
)

// Event describes a mutation after it was applied to the ledger.
type Event struct {
	Kind       Kind           `json:"kind"`
	Owner      string         `json:"owner"`
	Expense    models.Expense `json:"expense"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// Publisher delivers events. Delivery errors never undo the mutation.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards all events.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

func (Nop) Close() error { return nil }
