package config

import (
	"log"
	"os"
	"strconv"
)

const (
	DefaultPort               = "8080"
	DefaultJWTIssuer          = "flashcard-api"
	DefaultJWTAudience        = "flashcard-app"
	DefaultAccessExpirySec    = 60
	DefaultRefreshExpiryMin   = 1440
	DefaultRegistryMaxEntries = 10000
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	JWTSecret          string
	JWTIssuer          string
	JWTAudience        string
	AccessExpirySec    int
	RefreshExpiryMin   int
	RegistryMaxEntries int
}

func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", DefaultPort),
		DBURL:              mustGetEnv("DB_URL"),
		JWTSecret:          mustGetEnv("JWT_SECRET"),
		JWTIssuer:          getEnv("JWT_ISSUER", DefaultJWTIssuer),
		JWTAudience:        getEnv("JWT_AUDIENCE", DefaultJWTAudience),
		AccessExpirySec:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessExpirySec),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshExpiryMin),
		RegistryMaxEntries: getEnvAsInt("REFRESH_REGISTRY_MAX_ENTRIES", DefaultRegistryMaxEntries),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
