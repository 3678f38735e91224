// Package config handles configuration loading for the logbook API.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the service.
type Config struct {
	DBURI  string
	DBName string
	DBUser string
	DBPwd  string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	JWTSecretKey        string
	JWTRefreshSecretKey string

	DefaultAdminUsername string
	DefaultAdminPassword string

	AllowedOrigins string
	Port           string
	Environment    string
}

// Load reads configuration from environment variables. The two signing
// secrets are required; everything else falls back to the defaults the
// original deployment shipped with.
func Load() (*Config, error) {
	cfg := &Config{
		DBURI:  getEnv("TAILFIN_DB_URI", "mongodb://localhost:27017"),
		DBName: getEnv("TAILFIN_DB_NAME", "tailfin"),
		DBUser: getEnv("TAILFIN_DB_USER", ""),
		DBPwd:  getEnv("TAILFIN_DB_PWD", ""),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		AccessTokenExpiry:  minutes(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)),
		RefreshTokenExpiry: minutes(getEnvInt("REFRESH_TOKEN_EXPIRE_MINUTES", 10080)),

		JWTSecretKey:        os.Getenv("TAILFIN_JWT_SECRET_KEY"),
		JWTRefreshSecretKey: os.Getenv("TAILFIN_JWT_REFRESH_SECRET_KEY"),

		DefaultAdminUsername: getEnv("TAILFIN_ADMIN_USERNAME", "admin"),
		DefaultAdminPassword: getEnv("TAILFIN_ADMIN_PASSWORD", "change-me-now"),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		Port:           getEnv("PORT", "8081"),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}

	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("TAILFIN_JWT_SECRET_KEY must be set")
	}
	if cfg.JWTRefreshSecretKey == "" {
		return nil, fmt.Errorf("TAILFIN_JWT_REFRESH_SECRET_KEY must be set")
	}
	if cfg.JWTSecretKey == cfg.JWTRefreshSecretKey {
		return nil, fmt.Errorf("access and refresh signing secrets must differ")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
