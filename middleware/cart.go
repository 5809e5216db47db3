package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartSessionHeader identifies one browser tab's cart. The shell keeps the
// value the gateway hands back and sends it on every cart call; the cart is
// deliberately independent of the auth session, so it survives login and
// logout within the tab.
const CartSessionHeader = "X-Cart-Session"

func CartSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetHeader(CartSessionHeader)
		if cartID == "" {
			cartID = uuid.NewString()
		}
		c.Header(CartSessionHeader, cartID)
		c.Set("cart_id", cartID)
		c.Next()
	}
}

func CartIDFrom(c *gin.Context) string {
	return c.GetString("cart_id")
}
