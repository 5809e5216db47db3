package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
	"storefront/upstream"
)

type OrderController struct {
	api      *upstream.Client
	sessions *services.SessionService
}

func NewOrderController(api *upstream.Client, sessions *services.SessionService) *OrderController {
	return &OrderController{api: api, sessions: sessions}
}

func (ctrl *OrderController) getPageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))

	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return page, size
}

// GetMyOrders godoc
// @Summary Order history
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	page, size := ctrl.getPageParams(c)

	orders, err := ctrl.api.ListOrders(c.Request.Context(), sess.AccessToken, page, size)
	if err != nil {
		respondUpstreamError(c, ctrl.sessions, sess, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: orders})
}

// GetOrderByID godoc
// @Summary Order detail
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	order, err := ctrl.api.GetOrder(c.Request.Context(), sess.AccessToken, c.Param("id"))
	if err != nil {
		respondUpstreamError(c, ctrl.sessions, sess, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: order})
}

// CancelOrder godoc
// @Summary Cancel an order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Router /orders/{id}/cancel [post]
func (ctrl *OrderController) CancelOrder(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	if err := ctrl.api.CancelOrder(c.Request.Context(), sess.AccessToken, c.Param("id")); err != nil {
		respondUpstreamError(c, ctrl.sessions, sess, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order cancelled"})
}
