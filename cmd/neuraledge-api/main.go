// @title         Neuraledge API
// @version       0.1.0
// @description   Contact, blog and estimation endpoints for the neuraledge site

package main

import (
	"context"

	"neuraledge/internal/modkit/repokit"
	"neuraledge/internal/platform/config"
	"neuraledge/internal/platform/logger"
	phttp "neuraledge/internal/platform/net/http"
	"neuraledge/internal/platform/store"

	"neuraledge/internal/services/api"
)

func main() {
	// root config carries the module namespaces (BLOG_, CONTACT_, ESTIMATE_)
	// apiCfg scopes the HTTP server bits (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	rdCfg := root.Prefix("SERVICE_REDIS_")

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres required, clickhouse and redis optional)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "neuraledge-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			CH: store.CHConfig{
				Enabled: chCfg.MayBool("ENABLED", false),
				URL:     chCfg.MayString("DBURL", ""),
				Role:    "api",
			},
			RD: store.RedisConfig{
				Enabled:  rdCfg.MayBool("ENABLED", false),
				Addr:     rdCfg.MayString("ADDR", "localhost:6379"),
				Password: rdCfg.MayString("PASSWORD", ""),
				DB:       rdCfg.MayInt("DB", 0),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	repokit.MustGuard(context.Background(), st)

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
