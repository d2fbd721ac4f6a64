// Package aggregate computes the summary figures shown for an expense list.
//
// All functions are pure. They are evaluated on every read and their
// results are never stored.
package aggregate

import (
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category   models.Category `json:"category" example:"food"`
	Amount     decimal.Decimal `json:"amount" example:"85.45" swaggertype:"string"`
	Percentage decimal.Decimal `json:"percentage" example:"38.0" swaggertype:"string"` // Share of the total, rounded to one decimal place
}

// Summary holds the aggregated figures of an expense list.
type Summary struct {
	Total      decimal.Decimal `json:"total" example:"223.14" swaggertype:"string"`
	Today      decimal.Decimal `json:"today" example:"112.70" swaggertype:"string"`
	Count      int             `json:"count" example:"4"`
	Categories []CategoryTotal `json:"categories"`
}

// Total sums all amounts.
func Total(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Today sums the amounts of all expenses dated on the calendar day of at,
// in the location of at.
func Today(expenses []models.Expense, at time.Time) decimal.Decimal {
	day := now.With(at)
	begin, end := day.BeginningOfDay(), day.EndOfDay()

	total := decimal.Zero
	for _, e := range expenses {
		if !e.Date.Before(begin) && !e.Date.After(end) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// ByCategory sums the amounts per category. Categories are ordered by
// their first appearance in expenses.
func ByCategory(expenses []models.Expense) []CategoryTotal {
	totals := []CategoryTotal{}
	index := map[models.Category]int{}

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(e.Amount)
	}

	return totals
}

// Percentage returns the share of part in total in percent, rounded to one
// decimal place. A zero total yields zero.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total).Round(1)
}

// Summarize computes all figures for expenses at the given time.
func Summarize(expenses []models.Expense, at time.Time) Summary {
	total := Total(expenses)

	categories := ByCategory(expenses)
	for i := range categories {
		categories[i].Percentage = Percentage(categories[i].Amount, total)
	}

	return Summary{
		Total:      total,
		Today:      Today(expenses, at),
		Count:      len(expenses),
		Categories: categories,
	}
}
