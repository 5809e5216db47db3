package api

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/middleware"
	"storefront/models"
	"storefront/routes"
	"storefront/services"
	"storefront/upstream"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitRedis()

		emailService, err := models.NewEmailService()
		if err != nil {
			log.Println("Email service disabled:", err)
		}

		apiClient := upstream.NewClient(config.AppConfig.UpstreamBaseURL)
		sessions := services.NewSessionService(
			services.NewSessionStore(time.Duration(config.AppConfig.SessionTTLHours) * time.Hour))
		cart := services.NewCartService()
		wishlist := services.NewWishlistService(apiClient)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, routes.Dependencies{
			API:      apiClient,
			Sessions: sessions,
			Cart:     cart,
			Wishlist: wishlist,
			Checkout: services.NewCheckoutService(apiClient, cart,
				config.AppConfig.Currency,
				config.AppConfig.PublicOrigin+"/payment/success"),
			OAuth:           services.NewOAuthService(config.AppConfig.UpstreamBaseURL, config.AppConfig.TenantID),
			Email:           emailService,
			OAuthLoginDelay: config.AppConfig.OAuthLoginDelaySec,
		})
	})
}

// Handler is the serverless entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
