package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/auth"
)

const identityKey = "spendwise:identity"

// RequireAuth gates a route group on a valid session. The credential is
// taken from the Authorization header as a Bearer token.
//
// Missing or invalid credentials return 401. Any other verifier failure
// is an infrastructure problem and returns 500 with a generic message.
func RequireAuth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		credential, found := strings.CutPrefix(header, "Bearer ")
		if !found || credential == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Message: errUnauthorized.Error()})
			return
		}

		identity, err := verifier.Verify(credential)
		if err != nil {
			if err == auth.ErrNoCredentials || err == auth.ErrInvalidCredentials {
				c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Message: errUnauthorized.Error()})
				return
			}

			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Message: "an error occurred on the server during your request"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// identity returns the authenticated user's ID for the current request.
func identity(c *gin.Context) uuid.UUID {
	id, ok := c.Get(identityKey)
	if !ok {
		return uuid.Nil
	}

	return id.(auth.Identity).ID
}
