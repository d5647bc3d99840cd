package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"adriatic_listings/internal/adapters/cms"
	server "adriatic_listings/internal/adapters/http_server"
	"adriatic_listings/internal/adapters/observability"
	redisad "adriatic_listings/internal/adapters/redis"
	"adriatic_listings/internal/app"
	"adriatic_listings/internal/shared"
	mysqlrepo "adriatic_listings/internal/storage/mysql"
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

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	content, err := cms.New(cfg.ContentBase, cfg.ContentKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize content client")
	}
	q := app.NewQueryService(repo, content, cache, cfg.CacheTTL)
	l := app.NewLifecycleService(repo, content, cache)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:    q,
		L:    l,
		Auth: server.StaticTokenVerifier{Token: cfg.AdminToken},
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
