package controllers

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/aggregate"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes registers the routes for the aggregated figures.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", co.OptionsSummary)
	r.GET("/summary", co.Authenticate, co.GetSummary)

	r.OPTIONS("/charts/:kind", co.OptionsChart)
	r.GET("/charts/:kind", co.Authenticate, co.GetChart)
}

// RegisterCategoryRoutes registers the routes for categories.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategories)
	r.GET("", co.GetCategories)
}

// OptionsSummary returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Summary
//	@Success		204
//	@Router			/v1/summary [options]
func (co Controller) OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetSummary returns the aggregated figures
//
//	@Summary		Get summary
//	@Description	Returns the total, the total of today and the totals per category with their share of the total
//	@Tags			Summary
//	@Produce		json
//	@Success		200	{object}	SummaryResponse
//	@Failure		401	{object}	HTTPError
//	@Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, SummaryResponse{Data: newSummary(co.ledger(c).Summary())})
}

// OptionsChart returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Summary
//	@Success		204
//	@Param			kind	path	string	true	"pie or bar"
//	@Router			/v1/charts/{kind} [options]
func (co Controller) OptionsChart(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetChart returns a chart series
//
//	@Summary		Get chart
//	@Description	Returns the totals per category as pie (with percentages) or bar chart series
//	@Tags			Summary
//	@Produce		json
//	@Param			kind	path		string	true	"pie or bar"
//	@Success		200		{object}	ChartResponse
//	@Failure		400		{object}	HTTPError
//	@Failure		401		{object}	HTTPError
//	@Router			/v1/charts/{kind} [get]
func (co Controller) GetChart(c *gin.Context) {
	kind, err := aggregate.ParseChartKind(c.Param("kind"))
	if err != nil {
		abort(c, errInvalidChartKind)
		return
	}

	c.JSON(http.StatusOK, ChartResponse{Data: co.ledger(c).Chart(kind)})
}

// OptionsCategories returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Router			/v1/categories [options]
func (co Controller) OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetCategories returns the options of the category selector
//
//	@Summary		Get categories
//	@Description	Returns the predefined categories followed by "other", which selects a custom category
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories := make([]models.Category, 0, len(models.PredefinedCategories)+1)
	categories = append(categories, models.PredefinedCategories...)
	categories = append(categories, models.CategoryOther)

	options := make([]CategoryOption, 0, len(categories))
	for _, category := range categories {
		options = append(options, CategoryOption{
			Value: category,
			Label: category.Label(),
			Icon:  category.Icon(),
		})
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: options})
}
