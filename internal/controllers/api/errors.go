package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

var (
	errUnauthorized = errors.New("you need to sign in to use this resource")
	errBadStatsType = errors.New("the type parameter must be one of overview, category or monthly")
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrDefaultCategoryImmutable) {
		return http.StatusForbidden
	}

	if errors.Is(err, errUnauthorized) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// renderError writes the error into the response envelope. Validation
// errors from the binding engine get per-field messages, everything else
// becomes the envelope message with the status from status().
func renderError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, Response{
			Message: "Invalid request data",
			Errors:  fieldErrors(validationErrors),
		})
		return
	}

	var jsonUnmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &jsonUnmarshalTypeError) {
		c.JSON(http.StatusBadRequest, Response{
			Message: httputil.ErrInvalidBody.Error(),
			Errors: []FieldError{{
				Field:   jsonUnmarshalTypeError.Field,
				Message: "is of the wrong type",
			}},
		})
		return
	}

	c.JSON(status(err), Response{Message: err.Error()})
}
