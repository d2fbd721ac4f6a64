package ledger

import (
	"fmt"
	"strings"

	"github.com/expense-tracker/backend/internal/models"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortBy is the field the list is sorted by.
type SortBy string

const (
	SortByDate   SortBy = "date"
	SortByAmount SortBy = "amount"
	SortByName   SortBy = "name"
)

// SortOrder is the direction of the sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Query filters and sorts the list. The zero value returns all expenses,
// newest first.
type Query struct {
	Search    string
	SortBy    SortBy
	SortOrder SortOrder
}

// ParseQuery builds a query from its text form. Empty values select the defaults.
func ParseQuery(search, sortBy, sortOrder string) (Query, error) {
	q := Query{Search: search}
	problems := map[string]string{}

	switch s := SortBy(strings.ToLower(sortBy)); s {
	case "", SortByDate, SortByAmount, SortByName:
		q.SortBy = s
	default:
		problems["sortBy"] = fmt.Sprintf("must be one of %q, %q or %q", SortByDate, SortByAmount, SortByName)
	}

	switch o := SortOrder(strings.ToLower(sortOrder)); o {
	case "", SortAsc, SortDesc:
		q.SortOrder = o
	default:
		problems["sortOrder"] = fmt.Sprintf("must be %q or %q", SortAsc, SortDesc)
	}

	if len(problems) > 0 {
		return Query{}, &ValidationError{Fields: problems}
	}

	return q, nil
}

// Apply filters and sorts expenses in place and returns the result.
//
// The search term matches case-insensitively as a substring of name or
// category. Sorting is stable, so ties keep their order.
func (q Query) Apply(expenses []models.Expense) []models.Expense {
	result := expenses

	if term := strings.TrimSpace(q.Search); term != "" {
		fold := cases.Fold()
		term = fold.String(term)

		result = make([]models.Expense, 0, len(expenses))
		for _, e := range expenses {
			if strings.Contains(fold.String(e.Name), term) || strings.Contains(fold.String(string(e.Category)), term) {
				result = append(result, e)
			}
		}
	}

	var cmp func(a, b models.Expense) int
	switch q.SortBy {
	case SortByAmount:
		cmp = func(a, b models.Expense) int {
			return a.Amount.Cmp(b.Amount)
		}
	case SortByName:
		collator := collate.New(language.Und, collate.IgnoreCase)
		cmp = func(a, b models.Expense) int {
			return collator.CompareString(a.Name, b.Name)
		}
	default:
		cmp = func(a, b models.Expense) int {
			return a.Date.Compare(b.Date)
		}
	}

	if q.SortOrder == SortAsc {
		slices.SortStableFunc(result, cmp)
	} else {
		slices.SortStableFunc(result, func(a, b models.Expense) int {
			return cmp(b, a)
		})
	}

	return result
}
