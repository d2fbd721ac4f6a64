// Package controllers implements the handlers of the HTTP API.
package controllers

import (
	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/ledger"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	DB      *gorm.DB
	Auth    *auth.Provider
	Ledgers *ledger.Registry
}
