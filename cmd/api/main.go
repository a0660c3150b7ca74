package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"booking_api/internal/adapters/auth"
	server "booking_api/internal/adapters/http_server"
	"booking_api/internal/adapters/observability"
	redisad "booking_api/internal/adapters/redis"
	"booking_api/internal/app"
	"booking_api/internal/domain"
	"booking_api/internal/shared"
	mysqlrepo "booking_api/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// identity strategy, fixed per deployment
	var resolver auth.Resolver
	policy := domain.Policy{}
	switch cfg.AuthMode {
	case shared.AuthModeJWT:
		resolver = auth.NewJWTResolver([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience)
	default:
		resolver = auth.HeaderResolver{}
		// no role source in header mode; hotel creation is open to any
		// identified caller, deletion stays unavailable
		policy.OpenHotelCreation = true
	}

	// deps
	repo := mysqlrepo.New(db)
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	svc := app.NewBookingService(repo, repo, policy, cache, cfg.CacheTTL)

	// http
	srv := server.New(resolver, cfg.AuthMode)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Str("auth_mode", cfg.AuthMode).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
