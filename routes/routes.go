package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/controllers"
	"storefront/middleware"
	"storefront/models"
	"storefront/services"
	"storefront/upstream"
)

type Dependencies struct {
	API             *upstream.Client
	Sessions        *services.SessionService
	Cart            *services.CartService
	Wishlist        *services.WishlistService
	Checkout        *services.CheckoutService
	OAuth           *services.OAuthService
	Email           *models.EmailService
	OAuthLoginDelay int
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	authCtrl := controllers.NewAuthController(deps.API, deps.Sessions, deps.Wishlist)
	oauthCtrl := controllers.NewOAuthController(deps.OAuth, deps.Sessions, deps.Wishlist, deps.OAuthLoginDelay)
	productCtrl := controllers.NewProductController(deps.API)
	cartCtrl := controllers.NewCartController(deps.Cart)
	wishlistCtrl := controllers.NewWishlistController(deps.Wishlist, deps.Sessions)
	checkoutCtrl := controllers.NewCheckoutController(deps.Checkout, deps.Sessions)
	orderCtrl := controllers.NewOrderController(deps.API, deps.Sessions)
	paymentCtrl := controllers.NewPaymentController(deps.API, deps.Sessions)
	bookingCtrl := controllers.NewBookingController(deps.Email)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/verify-otp", authCtrl.VerifyOtp)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/forgot-password", authCtrl.ForgotPassword)
	router.POST("/auth/reset-password", authCtrl.ResetPassword)
	router.GET("/auth/oauth/:provider", oauthCtrl.Start)
	router.POST("/auth/oauth/callback", oauthCtrl.Callback)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/new-arrivals", productCtrl.GetNewArrivals)
	router.GET("/products/grouped-by-root", productCtrl.GetGroupedByCategory)
	router.GET("/products/search", productCtrl.SearchProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/products/:id/options", productCtrl.GetVariantOptions)

	router.POST("/bookings", bookingCtrl.CreateBooking)

	cart := router.Group("/cart")
	cart.Use(middleware.CartSessionMiddleware())
	{
		cart.GET("", cartCtrl.GetCart)
		cart.DELETE("", cartCtrl.ClearCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:productId", cartCtrl.UpdateItem)
		cart.DELETE("/items/:productId", cartCtrl.RemoveItem)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(deps.Sessions))
	{
		auth.POST("/auth/logout", authCtrl.Logout)
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PUT("/auth/profile", authCtrl.UpdateProfile)

		auth.GET("/wishlist", wishlistCtrl.GetWishlist)
		auth.POST("/wishlist", wishlistCtrl.AddItem)
		auth.DELETE("/wishlist/:productId", wishlistCtrl.RemoveItem)
		auth.GET("/wishlist/contains/:productId", wishlistCtrl.Contains)

		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)
		auth.POST("/orders/:id/cancel", orderCtrl.CancelOrder)

		auth.GET("/payments/verify/:reference", paymentCtrl.VerifyPayment)

		auth.POST("/checkout", middleware.CartSessionMiddleware(), checkoutCtrl.Checkout)
	}
}
