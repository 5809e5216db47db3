package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
	"storefront/upstream"
)

type AuthController struct {
	api      *upstream.Client
	sessions *services.SessionService
	wishlist *services.WishlistService
}

func NewAuthController(api *upstream.Client, sessions *services.SessionService, wishlist *services.WishlistService) *AuthController {
	return &AuthController{api: api, sessions: sessions, wishlist: wishlist}
}

// openSession mints a gateway session from an upstream login reply and warms
// the wishlist mirror. A wishlist failure is logged, never fatal to sign-in.
func (ctrl *AuthController) openSession(c *gin.Context, login *models.UpstreamLoginResponse) (*models.SessionResponse, bool) {
	user := login.User.ToSessionUser()
	sess, token, err := ctrl.sessions.Create(c.Request.Context(), user, login.AccessToken, login.RefreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create session"})
		return nil, false
	}

	if err := ctrl.wishlist.Refresh(c.Request.Context(), sess); err != nil {
		log.Println("wishlist refresh failed:", err)
	}

	return &models.SessionResponse{Token: token, User: user, Redirect: "/"}, true
}

// Register godoc
// @Summary Register new customer
// @Description Start a registration; the commerce API emails an OTP to verify
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.api.Register(c.Request.Context(), req); err != nil {
		respondUpstreamError(c, nil, nil, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Verification code sent to " + req.Email,
	})
}

// VerifyOtp godoc
// @Summary Verify registration OTP
// @Description Complete a registration and open a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.OtpVerificationRequest true "OTP Request"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/verify-otp [post]
func (ctrl *AuthController) VerifyOtp(c *gin.Context) {
	var req models.OtpVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	login, err := ctrl.api.VerifyOtp(c.Request.Context(), req)
	if err != nil {
		respondUpstreamError(c, nil, nil, err)
		return
	}

	if resp, ok := ctrl.openSession(c, login); ok {
		c.JSON(http.StatusOK, resp)
	}
}

// Login godoc
// @Summary Customer login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.SessionResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	login, err := ctrl.api.Login(c.Request.Context(), req)
	if err != nil {
		respondUpstreamError(c, nil, nil, err)
		return
	}

	if resp, ok := ctrl.openSession(c, login); ok {
		c.JSON(http.StatusOK, resp)
	}
}

// Logout godoc
// @Summary Logout
// @Description Destroy the session and clear the wishlist mirror
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	if err := ctrl.api.Logout(c.Request.Context(), sess.AccessToken); err != nil {
		log.Println("upstream logout failed:", err)
	}

	ctrl.wishlist.Clear(sess.ID)
	if err := ctrl.sessions.Destroy(c.Request.Context(), sess.ID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to end session"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out", Data: gin.H{"redirect": "/"}})
}

// ForgotPassword godoc
// @Summary Request password reset OTP
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/forgot-password [post]
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.api.ForgotPassword(c.Request.Context(), req); err != nil {
		respondUpstreamError(c, nil, nil, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Reset code sent to " + req.Email})
}

// ResetPassword godoc
// @Summary Reset password with OTP
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/reset-password [post]
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.api.ResetPassword(c.Request.Context(), req); err != nil {
		respondUpstreamError(c, nil, nil, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Password reset successful", Data: gin.H{"redirect": "/login"}})
}

// GetProfile godoc
// @Summary Get customer profile
// @Description Fetch the profile and overwrite the stored session user
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	profile, err := ctrl.api.Profile(c.Request.Context(), sess.AccessToken)
	if err != nil {
		respondUpstreamError(c, ctrl.sessions, sess, err)
		return
	}

	user := profile.ToSessionUser()
	if _, err := ctrl.sessions.ReplaceUser(c.Request.Context(), sess.ID, user); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update session"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Profile retrieved", Data: user})
}

// UpdateProfile godoc
// @Summary Update customer profile
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Update Request"
// @Success 200 {object} models.Response
// @Router /auth/profile [put]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	profile, err := ctrl.api.UpdateProfile(c.Request.Context(), sess.AccessToken, req)
	if err != nil {
		respondUpstreamError(c, ctrl.sessions, sess, err)
		return
	}

	user := profile.ToSessionUser()
	if _, err := ctrl.sessions.ReplaceUser(c.Request.Context(), sess.ID, user); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update session"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Profile updated", Data: user})
}
