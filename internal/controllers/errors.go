package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/ledger"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is the body of every failed request.
type HTTPError struct {
	Error  string            `json:"error" example:"invalid expense: amount: please enter a valid amount greater than 0"`
	Fields map[string]string `json:"fields,omitempty"` // Problems per form field, only set for validation errors
}

var (
	errInvalidChartKind = errors.New("the chart kind must be one of 'pie' or 'bar'")
	errDatabase         = errors.New("there is a problem with the database connection")
)

// status returns the HTTP status for an error.
func status(err error) int {
	var (
		validation *ledger.ValidationError
		authErr    *auth.Error
		typeErr    *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidSession):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailInUse):
		return http.StatusConflict
	case errors.As(err, &authErr):
		return http.StatusBadRequest
	case errors.As(err, &validation),
		errors.As(err, &typeErr),
		errors.Is(err, ledger.ErrNotConfirmed),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidQueryString),
		errors.Is(err, errInvalidChartKind):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrRemoteUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// httpError builds the response for err. Server errors are logged and
// their details are replaced by a message containing the request id.
func httpError(c *gin.Context, err error) (int, HTTPError) {
	code := status(err)

	if code == http.StatusInternalServerError {
		id := requestid.Get(c)
		log.Error().Str("request-id", id).Msgf("%T: %v", err, err.Error())

		return code, HTTPError{
			Error: fmt.Sprintf("An error occurred on the server during your request, please try again later. The request id is '%s'", id),
		}
	}

	body := HTTPError{Error: err.Error()}

	var validation *ledger.ValidationError
	if errors.As(err, &validation) {
		body.Fields = validation.Fields
	}

	return code, body
}

// abort responds with the error and stops the handler chain.
func abort(c *gin.Context, err error) {
	code, body := httpError(c, err)
	c.AbortWithStatusJSON(code, body)
}
