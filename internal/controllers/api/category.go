package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		List categories
// @Description	Returns the authenticated user's categories and the shared default ones
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	Response
// @Failure		500	{object}	Response
// @Router			/api/categories [get]
func GetCategories(c *gin.Context) {
	categories := make([]models.Category, 0)

	err := models.DB.
		Scopes(models.VisibleTo(identity(c))).
		Find(&categories).Error
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}

// @Summary		Create category
// @Description	Creates a new private category for the authenticated user
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response
// @Failure		400			{object}	Response
// @Failure		500			{object}	Response
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/api/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		renderError(c, err)
		return
	}

	category := editable.model(identity(c))
	if err := models.DB.Create(&category).Error; err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Category created successfully",
		Data:    category,
	})
}

// @Summary		Delete category
// @Description	Deletes a category. Default categories cannot be deleted.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	Response
// @Failure		400	{object}	Response
// @Failure		403	{object}	Response
// @Failure		404	{object}	Response
// @Failure		500	{object}	Response
// @Param			id	path		URIID	true	"ID of the category"
// @Router			/api/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		renderError(c, httputil.ErrInvalidUUID)
		return
	}

	// The fetch includes defaults so that deleting one can be refused
	// explicitly instead of reporting it absent.
	var category models.Category
	err := models.DB.
		Where("id = ?", uri.ID.UUID).
		Scopes(models.VisibleTo(identity(c))).
		First(&category).Error
	if err != nil {
		renderError(c, err)
		return
	}

	if category.IsDefault {
		renderError(c, models.ErrDefaultCategoryImmutable)
		return
	}

	result := models.DB.
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		Delete(&models.Category{})
	if result.Error != nil {
		renderError(c, result.Error)
		return
	}

	if result.RowsAffected == 0 {
		renderError(c, fmt.Errorf("%w category matching your query", models.ErrResourceNotFound))
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Category deleted successfully"})
}
