package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Amount is the raw amount as entered. It accepts JSON numbers and strings.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	*a = Amount(data)
	return nil
}

// Input holds the values of the add and edit forms.
type Input struct {
	Name           string `json:"name" example:"Groceries"`                    // Name of the expense
	Category       string `json:"category" example:"food"`                     // Predefined category or "other"
	CustomCategory string `json:"customCategory" example:""`                   // Used when category is "other"
	Amount         Amount `json:"amount" example:"85.45" swaggertype:"string"` // Amount, must be greater than zero
}

// Amounts are stored as NUMERIC(20, 8).
const (
	maxAmountIntegerDigits  = 12
	maxAmountFractionDigits = 8
)

// amountFits reports whether a can be stored without rounding.
func amountFits(a decimal.Decimal) bool {
	exp := int64(a.Exponent())
	digits := int64(a.NumDigits())

	if digits+exp > maxAmountIntegerDigits {
		return false
	}

	if -exp <= maxAmountFractionDigits {
		return true
	}

	// The digits beyond the stored scale must all be zero
	if -exp-maxAmountFractionDigits >= digits {
		return false
	}
	return a.Equal(a.Truncate(maxAmountFractionDigits))
}

type validated struct {
	name     string
	category models.Category
	amount   decimal.Decimal
}

// validate checks all fields and reports every problem at once.
func (in Input) validate() (validated, error) {
	var v validated
	problems := map[string]string{}

	v.name = strings.TrimSpace(in.Name)
	if v.name == "" {
		problems["name"] = "please enter a name"
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(string(in.Amount)))
	switch {
	case err != nil:
		problems["amount"] = "please enter a valid amount"
	case !amount.IsPositive():
		problems["amount"] = "the amount must be greater than zero"
	case !amountFits(amount):
		problems["amount"] = fmt.Sprintf("the amount must have at most %d digits before and %d digits after the decimal point", maxAmountIntegerDigits, maxAmountFractionDigits)
	default:
		v.amount = amount
	}

	category, err := models.ParseCategory(in.Category, in.CustomCategory)
	switch {
	case errors.Is(err, models.ErrCustomCategoryEmpty):
		problems["customCategory"] = err.Error()
	case err != nil:
		problems["category"] = err.Error()
	default:
		v.category = category
	}

	if len(problems) > 0 {
		return validated{}, &ValidationError{Fields: problems}
	}

	return v, nil
}
