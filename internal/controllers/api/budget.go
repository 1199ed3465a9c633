package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		List budgets
// @Description	Returns all budgets of the authenticated user with their spent and remaining amounts
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	Response
// @Failure		400		{object}	Response
// @Failure		500		{object}	Response
// @Param			month	query		string	false	"Filter by month (YYYY-MM), only with year"
// @Param			year	query		string	false	"Filter by year (YYYY), only with month"
// @Router			/api/budgets [get]
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		renderError(c, err)
		return
	}

	q := models.DB.Where("user_id = ?", identity(c))
	if filter.Month != "" && filter.Year != "" {
		q = q.Where("month = ? AND year = ?", filter.Month, filter.Year)
	}

	var budgets []models.Budget
	if err := q.Find(&budgets).Error; err != nil {
		renderError(c, err)
		return
	}

	// The rollup is recomputed from the ledger on every call
	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		apiResource, err := newBudget(models.DB, budget)
		if err != nil {
			renderError(c, err)
			return
		}

		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, Response{
		Message: "Budgets retrieved successfully",
		Data:    data,
	})
}

// @Summary		Create budget
// @Description	Creates a new budget. A user can only have one budget per calendar month.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response
// @Failure		400		{object}	Response
// @Failure		500		{object}	Response
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/api/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		renderError(c, err)
		return
	}

	// Period collisions surface as a unique constraint violation, not
	// as a racy pre-check.
	budget := editable.model(identity(c))
	if err := models.DB.Create(&budget).Error; err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Budget created successfully",
		Data:    budget,
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget of the authenticated user with its spent and remaining amounts
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	Response
// @Failure		400	{object}	Response
// @Failure		404	{object}	Response
// @Failure		500	{object}	Response
// @Param			id	path		URIID	true	"ID of the budget"
// @Router			/api/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		renderError(c, httputil.ErrInvalidUUID)
		return
	}

	var budget models.Budget
	err := models.DB.
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		First(&budget).Error
	if err != nil {
		renderError(c, err)
		return
	}

	apiResource, err := newBudget(models.DB, budget)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Budget retrieved successfully",
		Data:    apiResource,
	})
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response
// @Failure		400		{object}	Response
// @Failure		404		{object}	Response
// @Failure		500		{object}	Response
// @Param			id		path		URIID		true	"ID of the budget"
// @Param			budget	body		BudgetUpdate	true	"Budget"
// @Router			/api/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		renderError(c, httputil.ErrInvalidUUID)
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetUpdate{})
	if err != nil {
		renderError(c, err)
		return
	}

	var update BudgetUpdate
	if err := httputil.BindData(c, &update); err != nil {
		renderError(c, err)
		return
	}

	if slices.Contains(updateFields, any("Amount")) && !update.Amount.IsPositive() {
		renderError(c, models.ErrAmountNotPositive)
		return
	}

	result := models.DB.
		Model(&models.Budget{}).
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		Select("", updateFields...).
		Updates(update.model())
	if result.Error != nil {
		renderError(c, result.Error)
		return
	}

	if result.RowsAffected == 0 {
		renderError(c, fmt.Errorf("%w budget matching your query", models.ErrResourceNotFound))
		return
	}

	var budget models.Budget
	err = models.DB.
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		First(&budget).Error
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Budget updated successfully",
		Data:    budget,
	})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	Response
// @Failure		400	{object}	Response
// @Failure		404	{object}	Response
// @Failure		500	{object}	Response
// @Param			id	path		URIID	true	"ID of the budget"
// @Router			/api/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		renderError(c, httputil.ErrInvalidUUID)
		return
	}

	result := models.DB.
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		Delete(&models.Budget{})
	if result.Error != nil {
		renderError(c, result.Error)
		return
	}

	if result.RowsAffected == 0 {
		renderError(c, fmt.Errorf("%w budget matching your query", models.ErrResourceNotFound))
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Budget deleted successfully"})
}
