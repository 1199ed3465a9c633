package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterStatsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetStats)
}

// StatsQuery selects the aggregation and its inclusive date range.
type StatsQuery struct {
	Type      string `form:"type" binding:"required,oneof=overview category monthly"`
	StartDate string `form:"startDate" binding:"required,dateonly" example:"2025-01-01"`
	EndDate   string `form:"endDate" binding:"required,dateonly" example:"2025-03-31"`
}

// @Summary		Get statistics
// @Description	Returns aggregate statistics over the authenticated user's transactions for an inclusive date range
// @Tags			Stats
// @Produce		json
// @Success		200			{object}	Response
// @Failure		400			{object}	Response
// @Failure		500			{object}	Response
// @Param			type		query		string	true	"One of overview, category, monthly"
// @Param			startDate	query		string	true	"Start of the range (YYYY-MM-DD)"
// @Param			endDate		query		string	true	"End of the range (YYYY-MM-DD)"
// @Router			/api/stats [get]
func GetStats(c *gin.Context) {
	var query StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		renderError(c, err)
		return
	}

	// Both dates are already validated by the binding
	from, _ := time.Parse(time.DateOnly, query.StartDate)
	until, _ := time.Parse(time.DateOnly, query.EndDate)

	userID := identity(c)

	switch query.Type {
	case "overview":
		data, err := models.Overview(models.DB, userID, from, until)
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Message: "Overview stats retrieved successfully",
			Data:    data,
		})
	case "category":
		data, err := models.CategoryBreakdown(models.DB, userID, from, until)
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Message: "Category breakdown retrieved successfully",
			Data:    data,
		})
	case "monthly":
		data, err := models.MonthlyTrends(models.DB, userID, from, until)
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Message: "Monthly trends retrieved successfully",
			Data:    data,
		})
	default:
		renderError(c, errBadStatsType)
	}
}
