package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv             string
	Port               string
	UpstreamBaseURL    string
	PublicOrigin       string
	TenantID           string
	JWTSecret          string
	JWTExpiry          string
	SessionTTLHours    int
	Currency           string
	OAuthLoginDelaySec int
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	sessionTTL, _ := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if sessionTTL == 0 {
		sessionTTL = 24
	}

	loginDelay, _ := strconv.Atoi(os.Getenv("OAUTH_LOGIN_REDIRECT_DELAY"))
	if loginDelay == 0 {
		loginDelay = 3
	}

	AppConfig = &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("APP_PORT", getEnv("PORT", "8082")),
		UpstreamBaseURL:    getEnv("UPSTREAM_BASE_URL", "https://modix-market-2f56bf35c2c9.herokuapp.com"),
		PublicOrigin:       getEnv("PUBLIC_ORIGIN", "http://localhost:5173"),
		TenantID:           getEnv("TENANT_ID", "ten_001"),
		JWTSecret:          getEnv("JWT_SECRET", "secret"),
		JWTExpiry:          getEnv("JWT_EXPIRY", "24h"),
		SessionTTLHours:    sessionTTL,
		Currency:           getEnv("PAYMENT_CURRENCY", "GHS"),
		OAuthLoginDelaySec: loginDelay,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Upstream API: %s", AppConfig.UpstreamBaseURL)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
