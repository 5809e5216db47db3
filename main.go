package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/config"
	_ "storefront/docs"
	"storefront/middleware"
	"storefront/models"
	"storefront/routes"
	"storefront/services"
	"storefront/upstream"
)

func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
	}

	api := upstream.NewClient(config.AppConfig.UpstreamBaseURL)
	sessionStore := services.NewSessionStore(time.Duration(config.AppConfig.SessionTTLHours) * time.Hour)
	sessions := services.NewSessionService(sessionStore)
	cart := services.NewCartService()
	wishlist := services.NewWishlistService(api)
	checkout := services.NewCheckoutService(api, cart,
		config.AppConfig.Currency,
		config.AppConfig.PublicOrigin+"/payment/success")
	oauth := services.NewOAuthService(config.AppConfig.UpstreamBaseURL, config.AppConfig.TenantID)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, routes.Dependencies{
		API:             api,
		Sessions:        sessions,
		Cart:            cart,
		Wishlist:        wishlist,
		Checkout:        checkout,
		OAuth:           oauth,
		Email:           emailService,
		OAuthLoginDelay: config.AppConfig.OAuthLoginDelaySec,
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
