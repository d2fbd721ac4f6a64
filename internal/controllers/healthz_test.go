package controllers_test

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/controllers"
	"github.com/expense-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestHealthzSuccess() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestHealthzFail() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response controllers.HTTPError
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Contains(response.Error, "problem with the database connection")
}
