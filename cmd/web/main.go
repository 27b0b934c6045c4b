package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"ihlutir.is/app/internal/config"
	apphttp "ihlutir.is/app/internal/http"
	"ihlutir.is/app/internal/http/buildcookie"
	"ihlutir.is/app/internal/http/flash"
	"ihlutir.is/app/internal/http/handlers"
	"ihlutir.is/app/internal/modules/builds"
	"ihlutir.is/app/internal/modules/catalog"
	"ihlutir.is/app/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger); err != nil {
		logger.Error("server_exit", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateWeb(); err != nil {
		return err
	}
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := config.OpenRedis(ctx, cfg)
	if err != nil {
		return err
	}

	catalogSvc := catalog.NewService(catalog.NewGormStore(db), logger)

	var buildStore builds.Store = builds.NewGormStore(db)
	checks := map[string]handlers.Check{"db": sqlDB.PingContext}
	if rdb != nil {
		defer rdb.Close()
		buildStore = builds.NewCachedStore(buildStore, rdb, cfg.BuildCacheTTL, logger)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		logger.Info("build_cache_enabled", slog.Duration("ttl", cfg.BuildCacheTTL))
	}
	buildSvc := builds.NewService(buildStore, catalogSvc, logger)

	static := map[string]string{}
	images, err := storage.FromEnv(ctx)
	if err != nil {
		return err
	}
	if local, ok := images.Storage.(*storage.Local); ok {
		static[local.URLPrefix] = local.BaseDir
		logger.Info("serving_local_images", slog.String("prefix", local.URLPrefix), slog.String("dir", local.BaseDir))
	}

	r := apphttp.NewRouter(apphttp.Deps{
		Log:         logger,
		Builds:      buildSvc,
		Catalog:     catalogSvc,
		Flash:       flash.NewCodec(cfg.CookieSecret, "ihlutir_flash", cfg.CookieSecure),
		BuildCookie: buildcookie.New(cfg.CookieSecret, "ihlutir_build", cfg.CookieSecure),
		CORSOrigins: cfg.CORSOrigins,
		ThumbWidth:  cfg.ThumbWidth,
		Checks:      checks,
		Static:      static,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_start", slog.String("addr", cfg.HTTPAddr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server_shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
