package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
	"storefront/upstream"
)

type PaymentController struct {
	api      *upstream.Client
	sessions *services.SessionService
}

func NewPaymentController(api *upstream.Client, sessions *services.SessionService) *PaymentController {
	return &PaymentController{api: api, sessions: sessions}
}

// VerifyPayment godoc
// @Summary Verify a payment
// @Description Called by the payment-success page when the provider redirects back
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param reference path string true "Payment reference"
// @Success 200 {object} models.Response
// @Router /payments/verify/{reference} [get]
func (ctrl *PaymentController) VerifyPayment(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	verification, err := ctrl.api.VerifyPayment(c.Request.Context(), sess.AccessToken, c.Param("reference"))
	if err != nil {
		respondUpstreamError(c, ctrl.sessions, sess, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: verification})
}
