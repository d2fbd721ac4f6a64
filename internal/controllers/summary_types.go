package controllers

import (
	"github.com/expense-tracker/backend/internal/aggregate"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// CategorySummary is the spending in one category.
type CategorySummary struct {
	Category        models.Category `json:"category" example:"food"`
	Label           string          `json:"label" example:"Food"`
	Icon            string          `json:"icon" example:"🍔"`
	Amount          decimal.Decimal `json:"amount" example:"85.45" swaggertype:"string"`
	FormattedAmount string          `json:"formattedAmount" example:"$85.45"`
	Percentage      decimal.Decimal `json:"percentage" example:"38.3" swaggertype:"string"`
}

// Summary holds the figures shown above the expense list.
type Summary struct {
	Total          decimal.Decimal   `json:"total" example:"223.14" swaggertype:"string"`
	FormattedTotal string            `json:"formattedTotal" example:"$223.14"`
	Today          decimal.Decimal   `json:"today" example:"112.70" swaggertype:"string"`
	FormattedToday string            `json:"formattedToday" example:"$112.70"`
	Count          int               `json:"count" example:"4"`
	Categories     []CategorySummary `json:"categories"`
}

func newSummary(s aggregate.Summary) Summary {
	categories := make([]CategorySummary, 0, len(s.Categories))
	for _, c := range s.Categories {
		categories = append(categories, CategorySummary{
			Category:        c.Category,
			Label:           c.Category.Label(),
			Icon:            c.Category.Icon(),
			Amount:          c.Amount,
			FormattedAmount: "$" + c.Amount.StringFixed(2),
			Percentage:      c.Percentage,
		})
	}

	return Summary{
		Total:          s.Total,
		FormattedTotal: "$" + s.Total.StringFixed(2),
		Today:          s.Today,
		FormattedToday: "$" + s.Today.StringFixed(2),
		Count:          s.Count,
		Categories:     categories,
	}
}

type SummaryResponse struct {
	Data Summary `json:"data"`
}

type ChartResponse struct {
	Data aggregate.Chart `json:"data"`
}

// CategoryOption is one entry of the category selector.
type CategoryOption struct {
	Value models.Category `json:"value" example:"food"`
	Label string          `json:"label" example:"Food"`
	Icon  string          `json:"icon" example:"🍔"`
}

type CategoryListResponse struct {
	Data []CategoryOption `json:"data"`
}
