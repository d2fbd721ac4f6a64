package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/ledger"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{&ledger.ValidationError{Fields: map[string]string{"name": "please enter a name"}}, http.StatusBadRequest},
		{ledger.ErrNotConfirmed, http.StatusBadRequest},
		{httputil.ErrInvalidBody, http.StatusBadRequest},
		{httputil.ErrRequestBodyEmpty, http.StatusBadRequest},
		{errInvalidChartKind, http.StatusBadRequest},
		{ledger.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("updating expense: %w", fmt.Errorf("%w expense with id abc", models.ErrResourceNotFound)), http.StatusNotFound},
		{ledger.ErrRemoteUnavailable, http.StatusServiceUnavailable},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrInvalidSession, http.StatusUnauthorized},
		{auth.ErrEmailInUse, http.StatusConflict},
		{auth.ErrWeakPassword, http.StatusBadRequest},
		{fmt.Errorf("adding expense: %w", models.ErrGeneral), http.StatusInternalServerError},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, status(tt.err))
		})
	}
}

func TestHTTPErrorHidesServerErrors(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	r.Use(requestid.New())
	r.GET("/", func(c *gin.Context) {
		code, body := httpError(c, errors.New("dial tcp 10.0.0.1:5432: connection refused"))
		c.JSON(code, body)
	})

	req, _ := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
	assert.Contains(t, w.Body.String(), w.Header().Get("X-Request-ID"))
}

func TestHTTPErrorValidationFields(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	code, body := httpError(c, &ledger.ValidationError{Fields: map[string]string{"amount": "please enter a valid amount"}})

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "please enter a valid amount", body.Fields["amount"])
	assert.Equal(t, "invalid expense: amount: please enter a valid amount", body.Error)
}
