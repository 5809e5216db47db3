package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"
)

type WishlistController struct {
	wishlist *services.WishlistService
	sessions *services.SessionService
}

func NewWishlistController(wishlist *services.WishlistService, sessions *services.SessionService) *WishlistController {
	return &WishlistController{wishlist: wishlist, sessions: sessions}
}

func (ctrl *WishlistController) respond(c *gin.Context, status int, message string, sess *services.Session) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data: gin.H{
			"items": ctrl.wishlist.Entries(sess.ID),
			"count": ctrl.wishlist.Count(sess.ID),
		},
	})
}

// GetWishlist godoc
// @Summary Get the wishlist
// @Description Refreshes the mirror from the commerce API, then returns it
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	// The mirror is cold after a restart; a read is the cheapest moment to
	// warm it.
	if err := ctrl.wishlist.Refresh(c.Request.Context(), sess); err != nil {
		respondUpstreamError(c, ctrl.sessions, sess, err)
		return
	}

	ctrl.respond(c, http.StatusOK, "", sess)
}

// AddItem godoc
// @Summary Add a product to the wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.WishlistRequest true "Product"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /wishlist [post]
func (ctrl *WishlistController) AddItem(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	var req models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.wishlist.Add(c.Request.Context(), sess, req.ProductID); err != nil {
		respondUpstreamError(c, ctrl.sessions, sess, err)
		return
	}

	ctrl.respond(c, http.StatusCreated, "Added to wishlist", sess)
}

// RemoveItem godoc
// @Summary Remove a product from the wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /wishlist/{productId} [delete]
func (ctrl *WishlistController) RemoveItem(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	if err := ctrl.wishlist.Remove(c.Request.Context(), sess, c.Param("productId")); err != nil {
		respondUpstreamError(c, ctrl.sessions, sess, err)
		return
	}

	ctrl.respond(c, http.StatusOK, "Removed from wishlist", sess)
}

// Contains godoc
// @Summary Check wishlist membership
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /wishlist/contains/{productId} [get]
func (ctrl *WishlistController) Contains(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    gin.H{"inWishlist": ctrl.wishlist.Contains(sess.ID, c.Param("productId"))},
	})
}
