package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type OAuthController struct {
	oauth      *services.OAuthService
	sessions   *services.SessionService
	wishlist   *services.WishlistService
	loginDelay int
}

func NewOAuthController(oauth *services.OAuthService, sessions *services.SessionService, wishlist *services.WishlistService, loginDelay int) *OAuthController {
	return &OAuthController{oauth: oauth, sessions: sessions, wishlist: wishlist, loginDelay: loginDelay}
}

// Start godoc
// @Summary Begin an OAuth login
// @Description Redirect the browser to the provider's authorization endpoint
// @Tags Authentication
// @Param provider path string true "OAuth provider" Enums(google, facebook)
// @Success 302
// @Router /auth/oauth/{provider} [get]
func (ctrl *OAuthController) Start(c *gin.Context) {
	c.Redirect(http.StatusFound, ctrl.oauth.AuthorizationURL(c.Param("provider")))
}

// Callback godoc
// @Summary Complete an OAuth login
// @Description Parse the provider redirect fragment and open a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.OAuthCallbackRequest true "Raw URL fragment"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/oauth/callback [post]
func (ctrl *OAuthController) Callback(c *gin.Context) {
	var req models.OAuthCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success:    false,
			Message:    "Unable to complete authentication",
			Error:      err.Error(),
			Redirect:   "/login",
			RetryAfter: ctrl.loginDelay,
		})
		return
	}

	callback, err := ctrl.oauth.ParseCallbackFragment(req.Fragment)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success:    false,
			Message:    "Unable to complete authentication",
			Error:      err.Error(),
			Redirect:   "/login",
			RetryAfter: ctrl.loginDelay,
		})
		return
	}

	// This flow hands over no refresh token, only the access token.
	sess, token, err := ctrl.sessions.Create(c.Request.Context(), callback.User, callback.AccessToken, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success:    false,
			Message:    "Failed to create session",
			Redirect:   "/login",
			RetryAfter: ctrl.loginDelay,
		})
		return
	}

	if err := ctrl.wishlist.Refresh(c.Request.Context(), sess); err != nil {
		log.Println("wishlist refresh failed:", err)
	}

	// The shell performs a full navigation to the home route on success,
	// forcing a clean reload.
	c.JSON(http.StatusOK, models.SessionResponse{Token: token, User: callback.User, Redirect: "/"})
}
