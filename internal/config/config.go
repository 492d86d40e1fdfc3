package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port              string
	Env               string
	DatabaseDSN       string
	JWTSecret         string
	JWTExpiry         time.Duration
	MinLength         uint
	DefaultPolicyName string
}

func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DatabaseDSN:       getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passcheck?parseTime=true"),
		JWTSecret:         getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:         24 * time.Hour,
		MinLength:         getEnvUint("MIN_PASSWORD_LENGTH", 8),
		DefaultPolicyName: getEnv("DEFAULT_POLICY", "default"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvUint(key string, fallback uint) uint {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		slog.Warn("invalid unsigned integer in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return uint(n)
}
