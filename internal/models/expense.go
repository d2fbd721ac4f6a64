package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseID identifies an expense. Local records carry numeric ids,
// records persisted to the remote store carry opaque string ids.
type ExpenseID string

// IsNumeric reports whether the id parses as a number.
func (id ExpenseID) IsNumeric() bool {
	if id == "" {
		return false
	}

	_, err := strconv.ParseFloat(string(id), 64)
	return err == nil
}

// Origin derives the persistence origin from the shape of the id.
func (id ExpenseID) Origin() Origin {
	if id.IsNumeric() {
		return OriginLocal
	}
	return OriginRemote
}

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (id *ExpenseID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ExpenseID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expense id must be a string or a number: %w", err)
	}
	*id = ExpenseID(n.String())
	return nil
}

// Origin tells where an expense is persisted.
type Origin string

const (
	OriginLocal  Origin = "local"
	OriginRemote Origin = "remote"
)

// Expense is a single recorded expense.
type Expense struct {
	ID       ExpenseID       `json:"id" gorm:"primaryKey" example:"3f0e0ab6-7e33-4f6e-a0b8-4f1a3c1f5b0d"`          // Numeric for local records, opaque for remote ones
	Name     string          `json:"name" example:"Groceries"`                                                     // Display name
	Category Category        `json:"category" example:"food"`                                                      // Predefined or custom category
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"85.45" swaggertype:"string"`        // Strictly positive amount
	Date     time.Time       `json:"date" gorm:"index" example:"2023-03-09T14:30:00Z"`                             // Creation time, never changes
	UserID   string          `json:"userId,omitempty" gorm:"index" example:"9b6e3e7d-0f6d-4d3b-8b4e-1c8a9d4c2e11"` // Owner, only set on remote records
	Origin   Origin          `json:"origin" gorm:"-" example:"remote"`                                             // Where the record is persisted
}

// ResolveOrigin fills in the origin from the id shape if it is not set.
func (e *Expense) ResolveOrigin() {
	if e.Origin == "" {
		e.Origin = e.ID.Origin()
	}
}

// IsRemote reports whether the expense is persisted in the remote store.
func (e Expense) IsRemote() bool {
	if e.Origin == "" {
		return e.ID.Origin() == OriginRemote
	}
	return e.Origin == OriginRemote
}

// BeforeSave stores all dates in UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// AfterFind marks every expense read from the database as remote and
// normalizes the date to UTC.
func (e *Expense) AfterFind(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	e.Origin = OriginRemote
	return nil
}
