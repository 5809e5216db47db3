package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
	sessions *services.SessionService
}

func NewCheckoutController(checkout *services.CheckoutService, sessions *services.SessionService) *CheckoutController {
	return &CheckoutController{checkout: checkout, sessions: sessions}
}

// Checkout godoc
// @Summary Check out the cart
// @Description Creates one order per cart line, initializes a payment over all of them, and returns the authorization URL the browser must navigate to
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Param request body models.CheckoutRequest true "Shipping form"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	result, err := ctrl.checkout.Checkout(c.Request.Context(), sess, middleware.CartIDFrom(c), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Success:  false,
				Message:  "Your cart is empty",
				Redirect: "/cart",
			})
		case errors.Is(err, services.ErrNoAuthorizationURL):
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Success: false,
				Message: "Failed to initialize payment. Please try again.",
			})
		default:
			respondUpstreamError(c, ctrl.sessions, sess, err)
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Redirecting to payment", Data: result})
}
