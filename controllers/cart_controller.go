package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// GetCart godoc
// @Summary Get the cart
// @Description Cart snapshot with derived totals
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Data: ctrl.cart.View(middleware.CartIDFrom(c))})
}

// AddItem godoc
// @Summary Add a line to the cart
// @Description Merges with an existing line sharing (productId, size, color)
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Param request body models.AddCartItemRequest true "Line to add"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	cartID := middleware.CartIDFrom(c)
	ctrl.cart.Add(cartID, req)
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Added to cart", Data: ctrl.cart.View(cartID)})
}

// UpdateItem godoc
// @Summary Set a line's quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity and variant"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	cartID := middleware.CartIDFrom(c)
	key := models.CartLineKey{ProductID: c.Param("productId"), Size: req.Size, Color: req.Color}
	ctrl.cart.UpdateQuantity(cartID, key, req.Quantity)
	c.JSON(http.StatusOK, models.Response{Success: true, Data: ctrl.cart.View(cartID)})
}

// RemoveItem godoc
// @Summary Remove a line from the cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Param productId path string true "Product ID"
// @Param size query string false "Size"
// @Param color query string false "Color"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cartID := middleware.CartIDFrom(c)
	key := models.CartLineKey{ProductID: c.Param("productId"), Size: c.Query("size"), Color: c.Query("color")}
	ctrl.cart.Remove(cartID, key)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Removed from cart", Data: ctrl.cart.View(cartID)})
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cartID := middleware.CartIDFrom(c)
	ctrl.cart.Clear(cartID)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart cleared", Data: ctrl.cart.View(cartID)})
}
