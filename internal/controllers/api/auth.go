package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

var errBadCredentials = errors.New("the email or password is incorrect")

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup, tokens *auth.TokenService) {
	r.OPTIONS("/sign-up", httputil.OptionsPost)
	r.POST("/sign-up", SignUp(tokens))

	r.OPTIONS("/sign-in", httputil.OptionsPost)
	r.POST("/sign-in", SignIn(tokens))
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"hunter2hunter2"`
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
}

// SignInRequest carries credentials. The email is not format-validated
// here: it is normalized and looked up, and anything that matches no
// account reads as bad credentials.
type SignInRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"hunter2hunter2"`
}

// SessionData is the payload returned by both authentication endpoints.
type SessionData struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// @Summary		Sign up
// @Description	Creates a new account and signs it in
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response
// @Failure		400			{object}	Response
// @Failure		500			{object}	Response
// @Param			credentials	body		SignUpRequest	true	"Account"
// @Router			/api/auth/sign-up [post]
func SignUp(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request SignUpRequest
		if err := httputil.BindData(c, &request); err != nil {
			renderError(c, err)
			return
		}

		hash, err := auth.HashPassword(request.Password)
		if err != nil {
			renderError(c, models.ErrGeneral)
			return
		}

		user := models.User{
			Email:    request.Email,
			Name:     request.Name,
			Password: hash,
		}
		if err := models.DB.Create(&user).Error; err != nil {
			renderError(c, err)
			return
		}

		token, err := tokens.Sign(user.ID)
		if err != nil {
			renderError(c, models.ErrGeneral)
			return
		}

		c.JSON(http.StatusOK, Response{
			Message: "Account created successfully",
			Data:    SessionData{Token: token, User: user},
		})
	}
}

// @Summary		Sign in
// @Description	Verifies the credentials and returns a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response
// @Failure		400			{object}	Response
// @Failure		500			{object}	Response
// @Param			credentials	body		SignInRequest	true	"Credentials"
// @Router			/api/auth/sign-in [post]
func SignIn(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request SignInRequest
		if err := httputil.BindData(c, &request); err != nil {
			renderError(c, err)
			return
		}

		// Emails are stored lowercased, match them the same way
		var user models.User
		err := models.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(request.Email))).First(&user).Error
		if err != nil {
			// Whether the account exists or the password is wrong
			// must be indistinguishable to the caller.
			if errors.Is(err, models.ErrResourceNotFound) {
				renderError(c, errBadCredentials)
				return
			}

			renderError(c, err)
			return
		}

		if !auth.CheckPassword(user.Password, request.Password) {
			renderError(c, errBadCredentials)
			return
		}

		token, err := tokens.Sign(user.ID)
		if err != nil {
			renderError(c, models.ErrGeneral)
			return
		}

		c.JSON(http.StatusOK, Response{
			Message: "Signed in successfully",
			Data:    SessionData{Token: token, User: user},
		})
	}
}
