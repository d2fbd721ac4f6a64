package controllers

import (
	"net/http"
	"strconv"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/ledger"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.Authenticate, co.GetExpenses)
		r.POST("", co.Authenticate, co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.Authenticate, co.GetExpense)
		r.PATCH("/:id", co.Authenticate, co.UpdateExpense)
		r.DELETE("/:id", co.Authenticate, co.DeleteExpense)
	}
}

// ledger returns the ledger of the signed-in user.
func (co Controller) ledger(c *gin.Context) *ledger.Ledger {
	return co.Ledgers.Get(c.Request.Context(), currentUser(c).ID)
}

// OptionsExpenseList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Router			/v1/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsExpenseDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// GetExpenses returns the expenses of the signed-in user
//
//	@Summary		Get expenses
//	@Description	Returns the expenses matching the search term, sorted as requested. Defaults to newest first.
//	@Tags			Expenses
//	@Produce		json
//	@Param			search		query		string	false	"Case-insensitive substring of name or category"
//	@Param			sortBy		query		string	false	"Sort field: date, amount or name"
//	@Param			sortOrder	query		string	false	"Sort order: asc or desc"
//	@Success		200			{object}	ExpenseListResponse
//	@Failure		400			{object}	HTTPError
//	@Failure		401			{object}	HTTPError
//	@Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, httputil.ErrInvalidQueryString)
		return
	}

	q, err := ledger.ParseQuery(filter.Search, filter.SortBy, filter.SortOrder)
	if err != nil {
		abort(c, err)
		return
	}

	expenses := co.ledger(c).List(q)
	data := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, newExpense(c, e))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// CreateExpense records a new expense
//
//	@Summary		Create expense
//	@Description	Validates the form values and records the expense
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Param			expense	body		ledger.Input	true	"Expense"
//	@Success		201		{object}	ExpenseResponse
//	@Failure		400		{object}	HTTPError
//	@Failure		401		{object}	HTTPError
//	@Failure		500		{object}	HTTPError
//	@Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var in ledger.Input
	if err := httputil.BindData(c, &in); err != nil {
		abort(c, err)
		return
	}

	e, err := co.ledger(c).Add(c.Request.Context(), in)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: newExpense(c, e)})
}

// GetExpense returns a specific expense
//
//	@Summary		Get expense
//	@Description	Returns a specific expense
//	@Tags			Expenses
//	@Produce		json
//	@Param			id	path		string	true	"ID formatted as string"
//	@Success		200	{object}	ExpenseResponse
//	@Failure		401	{object}	HTTPError
//	@Failure		404	{object}	HTTPError
//	@Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	e, err := co.ledger(c).Get(models.ExpenseID(c.Param("id")))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: newExpense(c, e)})
}

// UpdateExpense updates a specific expense
//
//	@Summary		Update expense
//	@Description	Validates the submitted edit form and updates the expense. Its id and date never change.
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			expense	body		ledger.Input	true	"Expense"
//	@Success		200		{object}	ExpenseResponse
//	@Failure		400		{object}	HTTPError
//	@Failure		401		{object}	HTTPError
//	@Failure		404		{object}	HTTPError
//	@Failure		500		{object}	HTTPError
//	@Failure		503		{object}	HTTPError
//	@Router			/v1/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	l := co.ledger(c)
	id := models.ExpenseID(c.Param("id"))

	if _, err := l.Get(id); err != nil {
		abort(c, err)
		return
	}

	var in ledger.Input
	if err := httputil.BindData(c, &in); err != nil {
		abort(c, err)
		return
	}

	e, err := l.Update(c.Request.Context(), id, in)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: newExpense(c, e)})
}

// DeleteExpense deletes a specific expense
//
//	@Summary		Delete expense
//	@Description	Deletes an expense. The deletion must be confirmed with confirm=true.
//	@Tags			Expenses
//	@Param			id		path	string	true	"ID formatted as string"
//	@Param			confirm	query	bool	true	"Confirms the deletion"
//	@Success		204
//	@Failure		400	{object}	HTTPError
//	@Failure		401	{object}	HTTPError
//	@Failure		404	{object}	HTTPError
//	@Failure		500	{object}	HTTPError
//	@Failure		503	{object}	HTTPError
//	@Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	err := co.ledger(c).Delete(c.Request.Context(), models.ExpenseID(c.Param("id")), confirmed)
	if err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
