package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
	"storefront/upstream"
)

// respondUpstreamError surfaces an upstream failure with its status and
// server-provided message. A 401/403 from the upstream ends the session: the
// stored record is destroyed and the shell is told to go back to login.
func respondUpstreamError(c *gin.Context, sessions *services.SessionService, sess *services.Session, err error) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsSessionEnding() && sess != nil && sessions != nil {
			if destroyErr := sessions.Destroy(c.Request.Context(), sess.ID); destroyErr != nil {
				log.Println("session destroy failed:", destroyErr)
			}
			c.JSON(apiErr.Status, models.ErrorResponse{
				Success:  false,
				Message:  apiErr.Message,
				Redirect: "/login",
			})
			return
		}
		c.JSON(apiErr.Status, models.ErrorResponse{Success: false, Message: apiErr.Message})
		return
	}

	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Success: false,
		Message: "Request failed. Please try again.",
		Error:   err.Error(),
	})
}
