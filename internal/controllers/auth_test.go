package controllers_test

import (
	"net/http"
	"testing"

	"github.com/expense-tracker/backend/internal/controllers"
	"github.com/expense-tracker/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSignUp() {
	session := suite.signUp(" Jane@Example.com ")

	suite.Assert().NotEmpty(session.Token)
	suite.Assert().Equal("jane@example.com", session.User.Email)
	suite.Assert().Equal("Jane", session.User.Name)
	suite.Assert().True(session.ExpiresAt.After(session.User.CreatedAt))
}

func (suite *TestSuiteStandard) TestSignUpSetsCookie() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/auth/signup", map[string]string{
		"email":    "jane@example.com",
		"password": "secret-password",
		"name":     "Jane",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Assert().Equal("session", cookies[0].Name)
	suite.Assert().True(cookies[0].HttpOnly)
}

func (suite *TestSuiteStandard) TestSignUpFailures() {
	suite.signUp("taken@example.com")

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Email in use", map[string]string{"email": "taken@example.com", "password": "secret-password", "name": "Jane"}, http.StatusConflict, "already in use"},
		{"Bad email", map[string]string{"email": "not-an-email", "password": "secret-password", "name": "Jane"}, http.StatusBadRequest, "badly formatted"},
		{"Weak password", map[string]string{"email": "jane@example.com", "password": "123", "name": "Jane"}, http.StatusBadRequest, "at least 6 characters"},
		{"Missing name", map[string]string{"email": "jane@example.com", "password": "secret-password", "name": " "}, http.StatusBadRequest, "name"},
		{"Empty body", nil, http.StatusBadRequest, "must not be empty"},
		{"Broken body", `{"email": `, http.StatusBadRequest, "invalid or un-parseable"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "http://example.com/v1/auth/signup", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			var response controllers.HTTPError
			test.DecodeResponse(t, &recorder, &response)
			assert.Contains(t, response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	suite.signUp("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/auth/login", controllers.Credentials{
		Email:    "JANE@example.com",
		Password: "secret-password",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SessionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotEmpty(response.Data.Token)
	suite.Assert().Equal("jane@example.com", response.Data.User.Email)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	suite.signUp("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/auth/login", controllers.Credentials{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	var response controllers.HTTPError
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("the email address or password is wrong", response.Error)
}

func (suite *TestSuiteStandard) TestMe() {
	session := suite.signUp("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/auth/me", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(session.User.ID, response.Data.ID)
	suite.Assert().NotContains(recorder.Body.String(), "password", "the password hash must never be sent")
}

func (suite *TestSuiteStandard) TestMeWithCookie() {
	session := suite.signUp("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/auth/me", nil, map[string]string{
		"Cookie": "session=" + session.Token,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestMeUnauthenticated() {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"No header", map[string]string{}},
		{"Unknown token", test.Bearer("6f3c2c5e-1a9b-4a43-9d2e-8d3c5e0f7a11")},
		{"Wrong scheme", map[string]string{"Authorization": "Basic amFuZTpzZWNyZXQ="}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodGet, "http://example.com/v1/auth/me", nil, tt.headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestLogout() {
	session := suite.signUp("jane@example.com")

	// Load the ledger of the user
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/expenses", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Require().Equal(1, suite.ledgers.Len())

	recorder = test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/auth/logout", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal(0, suite.ledgers.Len(), "the ledger must be dropped on sign-out")

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/auth/me", nil, test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
