package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
	"storefront/utils"
)

// AuthMiddleware resolves the gateway session token into the stored session
// record and aborts with a login redirect hint when it cannot.
func AuthMiddleware(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success:  false,
				Message:  "Authorization header required",
				Redirect: "/login",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success:  false,
				Message:  "Invalid authorization header format",
				Redirect: "/login",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success:  false,
				Message:  "Invalid or expired token",
				Error:    err.Error(),
				Redirect: "/login",
			})
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success:  false,
				Message:  "Session expired",
				Redirect: "/login",
			})
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Next()
	}
}

// SessionFrom returns the authenticated session set by AuthMiddleware, or
// nil on routes that run without it.
func SessionFrom(c *gin.Context) *services.Session {
	value, exists := c.Get("session")
	if !exists {
		return nil
	}
	sess, _ := value.(*services.Session)
	return sess
}
