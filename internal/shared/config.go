package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Auth modes. Exactly one identity resolver is wired per deployment.
const (
	AuthModeHeader = "header"
	AuthModeJWT    = "jwt"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration

	AuthMode    string
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// seed tool
	APIBaseURL  string
	SeedFile    string
	SeedWorkers int
	SeedRPS     int
	SeedToken   string
	SeedUserID  string
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/booking?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,

		AuthMode:    env("AUTH_MODE", AuthModeHeader),
		JWTSecret:   env("JWT_SECRET", ""),
		JWTIssuer:   env("JWT_ISSUER", "http://localhost:8080/realms/booking-website"),
		JWTAudience: env("JWT_AUDIENCE", "account"),

		APIBaseURL:  env("API_BASE_URL", "http://localhost:8080"),
		SeedFile:    env("SEED_FILE", "hotels.json"),
		SeedWorkers: atoi("SEED_WORKERS", 8),
		SeedRPS:     atoi("SEED_RPS", 20),
		SeedToken:   env("SEED_TOKEN", ""),
		SeedUserID:  env("SEED_USER_ID", "seed"),
	}
	if c.AuthMode != AuthModeHeader && c.AuthMode != AuthModeJWT {
		log.Fatal().Str("mode", c.AuthMode).Msg("AUTH_MODE must be header or jwt")
	}
	if c.AuthMode == AuthModeJWT && c.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
