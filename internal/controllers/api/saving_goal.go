package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterSavingGoalRoutes registers the routes for saving goals with
// the RouterGroup that is passed.
func RegisterSavingGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetSavingGoals)
		r.POST("", CreateSavingGoal)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", GetSavingGoal)
		r.PATCH("/:id", UpdateSavingGoal)
		r.DELETE("/:id", DeleteSavingGoal)
	}
}

// @Summary		List saving goals
// @Description	Returns all saving goals of the authenticated user, oldest first
// @Tags			SavingGoals
// @Produce		json
// @Success		200	{object}	Response
// @Failure		500	{object}	Response
// @Router			/api/saving-goals [get]
func GetSavingGoals(c *gin.Context) {
	goals := make([]models.SavingGoal, 0)

	err := models.DB.
		Where("user_id = ?", identity(c)).
		Order("created_at ASC").
		Find(&goals).Error
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Saving goals retrieved successfully",
		Data:    goals,
	})
}

// @Summary		Create saving goal
// @Description	Creates a new saving goal for the authenticated user
// @Tags			SavingGoals
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response
// @Failure		400		{object}	Response
// @Failure		500		{object}	Response
// @Param			goal	body		SavingGoalEditable	true	"Saving goal"
// @Router			/api/saving-goals [post]
func CreateSavingGoal(c *gin.Context) {
	var editable SavingGoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		renderError(c, err)
		return
	}

	goal := editable.model(identity(c))
	if err := models.DB.Create(&goal).Error; err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Saving goal created successfully",
		Data:    goal,
	})
}

// @Summary		Get saving goal
// @Description	Returns a specific saving goal of the authenticated user
// @Tags			SavingGoals
// @Produce		json
// @Success		200	{object}	Response
// @Failure		400	{object}	Response
// @Failure		404	{object}	Response
// @Failure		500	{object}	Response
// @Param			id	path		URIID	true	"ID of the saving goal"
// @Router			/api/saving-goals/{id} [get]
func GetSavingGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		renderError(c, httputil.ErrInvalidUUID)
		return
	}

	var goal models.SavingGoal
	err := models.DB.
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		First(&goal).Error
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Saving goal retrieved successfully",
		Data:    goal,
	})
}

// @Summary		Update saving goal
// @Description	Updates an existing saving goal. Only values to be updated need to be specified. The completion flag is recomputed from the amounts.
// @Tags			SavingGoals
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response
// @Failure		400		{object}	Response
// @Failure		404		{object}	Response
// @Failure		500		{object}	Response
// @Param			id		path		URIID				true	"ID of the saving goal"
// @Param			goal	body		SavingGoalUpdate	true	"Saving goal"
// @Router			/api/saving-goals/{id} [patch]
func UpdateSavingGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		renderError(c, httputil.ErrInvalidUUID)
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SavingGoalUpdate{})
	if err != nil {
		renderError(c, err)
		return
	}

	var update SavingGoalUpdate
	if err := httputil.BindData(c, &update); err != nil {
		renderError(c, err)
		return
	}

	if slices.Contains(updateFields, any("TargetAmount")) && !update.TargetAmount.IsPositive() {
		renderError(c, models.ErrAmountNotPositive)
		return
	}

	if slices.Contains(updateFields, any("CurrentAmount")) && update.CurrentAmount.IsNegative() {
		renderError(c, models.ErrAmountNotPositive)
		return
	}

	result := models.DB.
		Model(&models.SavingGoal{}).
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		Select("", updateFields...).
		Updates(update.model())
	if result.Error != nil {
		renderError(c, result.Error)
		return
	}

	if result.RowsAffected == 0 {
		renderError(c, fmt.Errorf("%w saving goal matching your query", models.ErrResourceNotFound))
		return
	}

	var goal models.SavingGoal
	err = models.DB.
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		First(&goal).Error
	if err != nil {
		renderError(c, err)
		return
	}

	// Amounts may have moved across the target, the stored flag must
	// follow
	if err := goal.RefreshCompletion(models.DB); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Saving goal updated successfully",
		Data:    goal,
	})
}

// @Summary		Delete saving goal
// @Description	Deletes a saving goal
// @Tags			SavingGoals
// @Produce		json
// @Success		200	{object}	Response
// @Failure		400	{object}	Response
// @Failure		404	{object}	Response
// @Failure		500	{object}	Response
// @Param			id	path		URIID	true	"ID of the saving goal"
// @Router			/api/saving-goals/{id} [delete]
func DeleteSavingGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		renderError(c, httputil.ErrInvalidUUID)
		return
	}

	result := models.DB.
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		Delete(&models.SavingGoal{})
	if result.Error != nil {
		renderError(c, result.Error)
		return
	}

	if result.RowsAffected == 0 {
		renderError(c, fmt.Errorf("%w saving goal matching your query", models.ErrResourceNotFound))
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Saving goal deleted successfully"})
}
