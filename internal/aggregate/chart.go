package aggregate

import (
	"fmt"
	"strings"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ChartKind selects the presentation of the per-category totals.
type ChartKind string

const (
	ChartPie ChartKind = "pie" // proportional
	ChartBar ChartKind = "bar" // comparative
)

// ParseChartKind parses a chart kind, case-insensitively.
func ParseChartKind(s string) (ChartKind, error) {
	switch k := ChartKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ChartPie, ChartBar:
		return k, nil
	default:
		return "", fmt.Errorf("unknown chart kind %q, must be one of %q or %q", s, ChartPie, ChartBar)
	}
}

// Point is one category in a chart series.
type Point struct {
	Category   models.Category  `json:"category" example:"food"`
	Label      string           `json:"label" example:"Food"`
	Icon       string           `json:"icon" example:"🍔"`
	Value      decimal.Decimal  `json:"value" example:"85.45" swaggertype:"string"`
	Percentage *decimal.Decimal `json:"percentage,omitempty" example:"38.3" swaggertype:"string"` // Only set for pie charts
}

// Chart is a series ready to be rendered.
type Chart struct {
	Kind   ChartKind       `json:"kind" example:"pie"`
	Total  decimal.Decimal `json:"total" example:"223.14" swaggertype:"string"`
	Points []Point         `json:"points"`
}

// NewChart builds the chart series of kind from a summary.
func NewChart(kind ChartKind, s Summary) Chart {
	points := make([]Point, 0, len(s.Categories))

	for _, c := range s.Categories {
		p := Point{
			Category: c.Category,
			Label:    c.Category.Label(),
			Icon:     c.Category.Icon(),
			Value:    c.Amount.Round(2),
		}

		if kind == ChartPie {
			percentage := c.Percentage
			p.Percentage = &percentage
		}

		points = append(points, p)
	}

	return Chart{
		Kind:   kind,
		Total:  s.Total.Round(2),
		Points: points,
	}
}
