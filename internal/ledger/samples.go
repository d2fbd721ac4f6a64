package ledger

import (
	"time"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// SampleExpenses returns the expenses a new ledger is seeded with.
func SampleExpenses() []models.Expense {
	return []models.Expense{
		{
			ID:       "1",
			Name:     "Electricity Bill",
			Category: models.CategoryUtilities,
			Amount:   decimal.RequireFromString("94.20"),
			Date:     time.Date(2023, 3, 10, 12, 0, 0, 0, time.UTC),
			Origin:   models.OriginLocal,
		},
		{
			ID:       "2",
			Name:     "Groceries",
			Category: models.CategoryFood,
			Amount:   decimal.RequireFromString("85.45"),
			Date:     time.Date(2023, 3, 9, 14, 30, 0, 0, time.UTC),
			Origin:   models.OriginLocal,
		},
		{
			ID:       "3",
			Name:     "Movie Tickets",
			Category: models.CategoryEntertainment,
			Amount:   decimal.RequireFromString("24.99"),
			Date:     time.Date(2023, 3, 8, 19, 0, 0, 0, time.UTC),
			Origin:   models.OriginLocal,
		},
		{
			ID:       "4",
			Name:     "Bus Fare",
			Category: models.CategoryTransport,
			Amount:   decimal.RequireFromString("18.50"),
			Date:     time.Date(2023, 3, 10, 8, 15, 0, 0, time.UTC),
			Origin:   models.OriginLocal,
		},
	}
}
