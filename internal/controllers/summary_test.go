package controllers_test

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/aggregate"
	"github.com/expense-tracker/backend/internal/controllers"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestGetSummary() {
	session := suite.signUp("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/summary", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	s := response.Data
	suite.Assert().Equal("223.14", s.Total.String())
	suite.Assert().Equal("$223.14", s.FormattedTotal)
	suite.Assert().Equal("$112.70", s.FormattedToday)
	suite.Assert().Equal(4, s.Count)

	suite.Require().Len(s.Categories, 4)
	expected := []struct {
		category   models.Category
		percentage string
	}{
		{models.CategoryUtilities, "42.2"},
		{models.CategoryFood, "38.3"},
		{models.CategoryEntertainment, "11.2"},
		{models.CategoryTransport, "8.3"},
	}
	for i, e := range expected {
		suite.Assert().Equal(e.category, s.Categories[i].Category)
		suite.Assert().Equal(e.percentage, s.Categories[i].Percentage.String())
	}
	suite.Assert().Equal("Utilities", s.Categories[0].Label)
}

func (suite *TestSuiteStandard) TestGetSummaryFollowsMutations() {
	session := suite.signUp("jane@example.com")
	suite.createExpense(session.Token, map[string]any{"name": "Coffee", "category": "food", "amount": "6.86"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, "http://example.com/v1/expenses/1?confirm=true", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/summary", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// 223.14 - 94.20 + 6.86
	suite.Assert().Equal("$135.80", response.Data.FormattedTotal)
	// 18.50 + 6.86
	suite.Assert().Equal("$25.36", response.Data.FormattedToday)
	suite.Assert().Len(response.Data.Categories, 3)
}

func (suite *TestSuiteStandard) TestGetChart() {
	session := suite.signUp("jane@example.com")

	for _, kind := range []aggregate.ChartKind{aggregate.ChartPie, aggregate.ChartBar} {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/charts/"+string(kind), nil, test.Bearer(session.Token))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response controllers.ChartResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Assert().Equal(kind, response.Data.Kind)
		suite.Require().Len(response.Data.Points, 4)
		suite.Assert().Equal("Utilities", response.Data.Points[0].Label)
		suite.Assert().Equal("94.2", response.Data.Points[0].Value.String())

		if kind == aggregate.ChartPie {
			suite.Require().NotNil(response.Data.Points[0].Percentage)
			suite.Assert().Equal("42.2", response.Data.Points[0].Percentage.String())
		} else {
			suite.Assert().Nil(response.Data.Points[0].Percentage)
		}
	}
}

func (suite *TestSuiteStandard) TestGetChartUnknownKind() {
	session := suite.signUp("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/charts/donut", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, len(models.PredefinedCategories)+1)
	suite.Assert().Equal(controllers.CategoryOption{Value: models.CategoryFood, Label: "Food", Icon: "🍔"}, response.Data[0])
	suite.Assert().Equal(models.CategoryOther, response.Data[len(response.Data)-1].Value)
}
