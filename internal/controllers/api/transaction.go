package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		List transactions
// @Description	Returns all transactions of the authenticated user, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	Response
// @Failure		500	{object}	Response
// @Router			/api/transactions [get]
func GetTransactions(c *gin.Context) {
	transactions := make([]models.Transaction, 0)

	err := models.DB.
		Where("user_id = ?", identity(c)).
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Transactions retrieved successfully",
		Data:    transactions,
	})
}

// @Summary		Create transaction
// @Description	Creates a new transaction for the authenticated user
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response
// @Failure		400			{object}	Response
// @Failure		500			{object}	Response
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/api/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		renderError(c, err)
		return
	}

	transaction := editable.model(identity(c))
	if err := models.DB.Create(&transaction).Error; err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Transaction created successfully",
		Data:    transaction,
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction of the authenticated user
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	Response
// @Failure		400	{object}	Response
// @Failure		404	{object}	Response
// @Failure		500	{object}	Response
// @Param			id	path		URIID	true	"ID of the transaction"
// @Router			/api/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		renderError(c, httputil.ErrInvalidUUID)
		return
	}

	// Scoping the query by owner makes foreign rows indistinguishable
	// from absent ones.
	var transaction models.Transaction
	err := models.DB.
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		First(&transaction).Error
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Transaction retrieved successfully",
		Data:    transaction,
	})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response
// @Failure		400			{object}	Response
// @Failure		404			{object}	Response
// @Failure		500			{object}	Response
// @Param			id			path		URIID				true	"ID of the transaction"
// @Param			transaction	body		TransactionUpdate	true	"Transaction"
// @Router			/api/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		renderError(c, httputil.ErrInvalidUUID)
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionUpdate{})
	if err != nil {
		renderError(c, err)
		return
	}

	var update TransactionUpdate
	if err := httputil.BindData(c, &update); err != nil {
		renderError(c, err)
		return
	}

	if slices.Contains(updateFields, any("Amount")) && !update.Amount.IsPositive() {
		renderError(c, models.ErrAmountNotPositive)
		return
	}

	result := models.DB.
		Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		Select("", updateFields...).
		Updates(update.model())
	if result.Error != nil {
		renderError(c, result.Error)
		return
	}

	if result.RowsAffected == 0 {
		renderError(c, fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound))
		return
	}

	var transaction models.Transaction
	err = models.DB.
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		First(&transaction).Error
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Transaction updated successfully",
		Data:    transaction,
	})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	Response
// @Failure		400	{object}	Response
// @Failure		404	{object}	Response
// @Failure		500	{object}	Response
// @Param			id	path		URIID	true	"ID of the transaction"
// @Router			/api/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		renderError(c, httputil.ErrInvalidUUID)
		return
	}

	result := models.DB.
		Where("id = ? AND user_id = ?", uri.ID.UUID, identity(c)).
		Delete(&models.Transaction{})
	if result.Error != nil {
		renderError(c, result.Error)
		return
	}

	if result.RowsAffected == 0 {
		renderError(c, fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound))
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Transaction deleted successfully"})
}
