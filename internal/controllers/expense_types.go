package controllers

import (
	"fmt"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Expense is an expense with everything needed to display and edit it.
type Expense struct {
	models.Expense
	CategoryLabel   string       `json:"categoryLabel" example:"Food"`
	Icon            string       `json:"icon" example:"🍔"`
	FormattedAmount string       `json:"formattedAmount" example:"$85.45"`
	Form            ExpenseForm  `json:"form"` // Values to pre-populate the edit form with
	Links           ExpenseLinks `json:"links"`
}

type ExpenseForm struct {
	Category       string `json:"category" example:"other"`
	CustomCategory string `json:"customCategory" example:"gifts"`
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/3f0e0ab6-7e33-4f6e-a0b8-4f1a3c1f5b0d"`
}

func newExpense(c *gin.Context, e models.Expense) Expense {
	e.ResolveOrigin()
	selected, custom := e.Category.FormValues()

	return Expense{
		Expense:         e,
		CategoryLabel:   e.Category.Label(),
		Icon:            e.Category.Icon(),
		FormattedAmount: "$" + e.Amount.StringFixed(2),
		Form: ExpenseForm{
			Category:       string(selected),
			CustomCategory: custom,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", httputil.BaseURL(c), e.ID),
		},
	}
}

type ExpenseResponse struct {
	Data Expense `json:"data"`
}

type ExpenseListResponse struct {
	Data []Expense `json:"data"`
}

// ExpenseQueryFilter are the query parameters of the expense list.
type ExpenseQueryFilter struct {
	Search    string `form:"search"`    // Case-insensitive substring of name or category
	SortBy    string `form:"sortBy"`    // "date", "amount" or "name"
	SortOrder string `form:"sortOrder"` // "asc" or "desc"
}
