package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/expense-tracker/backend/internal/controllers"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) listExpenses(token, query string) []controllers.Expense {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses"+query, nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestExpensesRequireSession() {
	for _, tt := range []struct {
		method string
		url    string
	}{
		{http.MethodGet, "http://example.com/v1/expenses"},
		{http.MethodPost, "http://example.com/v1/expenses"},
		{http.MethodGet, "http://example.com/v1/expenses/1"},
		{http.MethodPatch, "http://example.com/v1/expenses/1"},
		{http.MethodDelete, "http://example.com/v1/expenses/1?confirm=true"},
		{http.MethodGet, "http://example.com/v1/summary"},
		{http.MethodGet, "http://example.com/v1/charts/pie"},
	} {
		suite.T().Run(fmt.Sprintf("%s %s", tt.method, tt.url), func(t *testing.T) {
			recorder := test.Request(t, suite.router, tt.method, tt.url, nil)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesSeeded() {
	session := suite.signUp("jane@example.com")

	expenses := suite.listExpenses(session.Token, "")
	suite.Require().Len(expenses, 4)

	// Newest first
	ids := []models.ExpenseID{}
	for _, e := range expenses {
		ids = append(ids, e.ID)
		suite.Assert().Equal(models.OriginLocal, e.Origin)
	}
	suite.Assert().Equal([]models.ExpenseID{"1", "4", "2", "3"}, ids)

	suite.Assert().Equal("$94.20", expenses[0].FormattedAmount)
	suite.Assert().Equal("Utilities", expenses[0].CategoryLabel)
	suite.Assert().Equal("💡", expenses[0].Icon)
	suite.Assert().Equal("http://example.com/v1/expenses/1", expenses[0].Links.Self)
}

func (suite *TestSuiteStandard) TestGetExpensesQuery() {
	session := suite.signUp("jane@example.com")

	tests := []struct {
		query string
		ids   []models.ExpenseID
	}{
		{"?search=BILL", []models.ExpenseID{"1"}},
		{"?search=food", []models.ExpenseID{"2"}},
		{"?search=nothing-matches", []models.ExpenseID{}},
		{"?sortBy=amount&sortOrder=asc", []models.ExpenseID{"4", "3", "2", "1"}},
		{"?sortBy=name", []models.ExpenseID{"3", "2", "1", "4"}},
		{"?sortBy=name&sortOrder=asc", []models.ExpenseID{"4", "1", "2", "3"}},
		{"?sortBy=date&sortOrder=asc", []models.ExpenseID{"3", "2", "4", "1"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			ids := []models.ExpenseID{}
			for _, e := range suite.listExpenses(session.Token, tt.query) {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesInvalidQuery() {
	session := suite.signUp("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses?sortBy=color&sortOrder=up", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response controllers.HTTPError
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Contains(response.Fields, "sortBy")
	suite.Assert().Contains(response.Fields, "sortOrder")
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	session := suite.signUp("jane@example.com")

	e := suite.createExpense(session.Token, map[string]any{
		"name":     " Coffee ",
		"category": "food",
		"amount":   "3.5",
	})

	suite.Assert().Equal("Coffee", e.Name)
	suite.Assert().Equal(models.CategoryFood, e.Category)
	suite.Assert().Equal("$3.50", e.FormattedAmount)
	suite.Assert().Equal(models.OriginRemote, e.Origin)
	suite.Assert().False(e.ID.IsNumeric(), "remote records must have opaque ids")
	suite.Assert().Equal(session.User.ID, e.UserID)
	suite.Assert().True(now.Equal(e.Date))

	// The record is in the remote store
	var stored models.Expense
	suite.Require().Nil(suite.db.First(&stored, "id = ?", e.ID).Error)
	suite.Assert().Equal("Coffee", stored.Name)

	// and in the list
	suite.Assert().Len(suite.listExpenses(session.Token, ""), 5)

	// and in the cache
	blob, ok := suite.cache.Raw(session.User.ID)
	suite.Require().True(ok)
	suite.Assert().Contains(blob, string(e.ID))
}

func (suite *TestSuiteStandard) TestCreateExpenseNumericAmount() {
	session := suite.signUp("jane@example.com")

	e := suite.createExpense(session.Token, map[string]any{
		"name":     "Train",
		"category": "transport",
		"amount":   12.25,
	})

	suite.Assert().True(decimal.RequireFromString("12.25").Equal(e.Amount))
}

func (suite *TestSuiteStandard) TestCreateExpenseCustomCategory() {
	session := suite.signUp("jane@example.com")

	e := suite.createExpense(session.Token, map[string]any{
		"name":           "Flowers",
		"category":       "other",
		"customCategory": " Gifts ",
		"amount":         "20",
	})

	suite.Assert().Equal(models.Category("gifts"), e.Category)
	suite.Assert().Equal("Gifts", e.CategoryLabel)
	suite.Assert().Equal("📝", e.Icon)
	suite.Assert().Equal("other", e.Form.Category)
	suite.Assert().Equal("gifts", e.Form.CustomCategory)
}

func (suite *TestSuiteStandard) TestCreateExpenseValidation() {
	session := suite.signUp("jane@example.com")

	tests := []struct {
		name   string
		body   map[string]any
		fields []string
	}{
		{"Empty name", map[string]any{"name": "  ", "category": "food", "amount": "3"}, []string{"name"}},
		{"Zero amount", map[string]any{"name": "Tea", "category": "food", "amount": "0"}, []string{"amount"}},
		{"Negative amount", map[string]any{"name": "Tea", "category": "food", "amount": -2}, []string{"amount"}},
		{"Text amount", map[string]any{"name": "Tea", "category": "food", "amount": "a lot"}, []string{"amount"}},
		{"Other without custom", map[string]any{"name": "Tea", "category": "other", "amount": "3"}, []string{"customCategory"}},
		{"No category", map[string]any{"name": "Tea", "amount": "3"}, []string{"category"}},
		{"Everything", map[string]any{"category": "other"}, []string{"name", "amount", "customCategory"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "http://example.com/v1/expenses", tt.body, test.Bearer(session.Token))
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response controllers.HTTPError
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Fields, len(tt.fields))
			for _, field := range tt.fields {
				assert.Contains(t, response.Fields, field)
			}
		})
	}

	suite.Assert().Len(suite.listExpenses(session.Token, ""), 4, "invalid input must not change the list")
}

func (suite *TestSuiteStandard) TestGetExpense() {
	session := suite.signUp("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/2", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Groceries", response.Data.Name)
	suite.Assert().Equal("food", response.Data.Form.Category)
	suite.Assert().Equal("", response.Data.Form.CustomCategory)
}

func (suite *TestSuiteStandard) TestGetExpenseNotFound() {
	session := suite.signUp("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/0a1b2c", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesAreIsolated() {
	jane := suite.signUp("jane@example.com")
	john := suite.signUp("john@example.com")

	e := suite.createExpense(jane.Token, map[string]any{"name": "Coffee", "category": "food", "amount": "3"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/"+string(e.ID), nil, test.Bearer(john.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	suite.Assert().Len(suite.listExpenses(john.Token, ""), 4)
}

func (suite *TestSuiteStandard) TestUpdateRemoteExpense() {
	session := suite.signUp("jane@example.com")
	e := suite.createExpense(session.Token, map[string]any{"name": "Coffee", "category": "food", "amount": "3"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/expenses/"+string(e.ID), map[string]any{
		"name":           "Birthday present",
		"category":       "other",
		"customCategory": "Gifts",
		"amount":         "42.10",
	}, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(e.ID, response.Data.ID)
	suite.Assert().True(e.Date.Equal(response.Data.Date), "the date must not change")
	suite.Assert().Equal("Birthday present", response.Data.Name)
	suite.Assert().Equal(models.Category("gifts"), response.Data.Category)

	var stored models.Expense
	suite.Require().Nil(suite.db.First(&stored, "id = ?", e.ID).Error)
	suite.Assert().Equal("Birthday present", stored.Name)
	suite.Assert().True(decimal.RequireFromString("42.10").Equal(stored.Amount))
}

func (suite *TestSuiteStandard) TestUpdateLocalExpense() {
	session := suite.signUp("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, "http://example.com/v1/expenses/4", map[string]any{
		"name":     "Taxi",
		"category": "transport",
		"amount":   "31",
	}, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Taxi", response.Data.Name)
	suite.Assert().Equal(models.OriginLocal, response.Data.Origin)

	var count int64
	suite.Require().Nil(suite.db.Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count, "local records must not be written to the remote store")
}

func (suite *TestSuiteStandard) TestUpdateExpenseFailures() {
	session := suite.signUp("jane@example.com")

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Not found", "http://example.com/v1/expenses/999", map[string]any{"name": "Tea", "category": "food", "amount": "3"}, http.StatusNotFound},
		{"Invalid", "http://example.com/v1/expenses/1", map[string]any{"name": "", "category": "food", "amount": "3"}, http.StatusBadRequest},
		{"Broken body", "http://example.com/v1/expenses/1", `{"name": "Tea"`, http.StatusBadRequest},
		{"Wrong type", "http://example.com/v1/expenses/1", `{"name": 12}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPatch, tt.url, tt.body, test.Bearer(session.Token))
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/1", nil, test.Bearer(session.Token))
	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Electricity Bill", response.Data.Name)
}

func (suite *TestSuiteStandard) TestDeleteExpenseRequiresConfirmation() {
	session := suite.signUp("jane@example.com")

	for _, query := range []string{"", "?confirm=false", "?confirm=maybe"} {
		recorder := test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1/expenses/1"+query, nil, test.Bearer(session.Token))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/1", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestDeleteLocalExpense() {
	session := suite.signUp("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1/expenses/3?confirm=true", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses/3", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	blob, ok := suite.cache.Raw(session.User.ID)
	suite.Require().True(ok)
	suite.Assert().NotContains(blob, "Movie Tickets")

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1/expenses/3?confirm=true", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteRemoteExpense() {
	session := suite.signUp("jane@example.com")
	e := suite.createExpense(session.Token, map[string]any{"name": "Coffee", "category": "food", "amount": "3"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1/expenses/"+string(e.ID)+"?confirm=true", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	var count int64
	suite.Require().Nil(suite.db.Model(&models.Expense{}).Where("id = ?", e.ID).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestRemoteFailureKeepsList() {
	session := suite.signUp("jane@example.com")
	suite.listExpenses(session.Token, "")

	suite.Require().Nil(suite.db.Migrator().DropTable(&models.Expense{}))

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/expenses", map[string]any{
		"name":     "Coffee",
		"category": "food",
		"amount":   "3",
	}, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response controllers.HTTPError
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Contains(response.Error, "request id")

	suite.Assert().Len(suite.listExpenses(session.Token, ""), 4)
}
