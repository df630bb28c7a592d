package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unrolled/render"

	"github.com/vladislavprovich/drivehub/internal/handler"
	"github.com/vladislavprovich/drivehub/internal/service"
	"github.com/vladislavprovich/drivehub/internal/worker"
	"github.com/vladislavprovich/drivehub/pkg/cache"
	"github.com/vladislavprovich/drivehub/pkg/client/catalogue"
	logger2 "github.com/vladislavprovich/drivehub/pkg/logger"
)

func main() {
	ctx := context.Background()
	cfg := initConfig(ctx)
	logger, err := logger2.New(ctx, &cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}

	caches := initCaches(ctx, logger.Logger, cfg)
	janitor := worker.NewJanitor(logger.Logger, cfg.Cache.SweepInterval, map[string]worker.Sweeper{
		"instructors": caches.Instructors,
		"lists":       caches.Lists,
	})
	if err = janitor.Start(ctx); err != nil {
		log.Fatal(err)
	}

	baseClient := initBasicClient(ctx, logger.Logger, cfg)
	srv := initService(ctx, logger.Logger, baseClient, caches, cfg)

	rend := render.New()
	serviceHandler := initServiceHandler(ctx, srv, logger.Logger, cfg, rend)
	router := handler.NewRouter(serviceHandler, logger.Logger, &cfg.Server)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.InfoContext(ctx, "Server start. Listening on port", slog.Any("port", cfg.Server.Port))
		if err = httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("could not listen on port %s: %s", cfg.Server.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		logger.InfoContext(ctx, "Server shutdown error", slog.Any("error", err))
	}
	if err = janitor.Stop(shutdownCtx); err != nil {
		logger.InfoContext(ctx, "Cache janitor shutdown error", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "Server gracefully shutdown")
}

func initConfig(ctx context.Context) *Config {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		log.Fatalf("config load error %s", err)
	}

	return cfg
}

// initCaches builds the process-wide caches. Everything that needs caching gets
// them from here.
func initCaches(ctx context.Context, logger *slog.Logger, cfg *Config) service.Caches {
	logger.InfoContext(ctx, "initializing caches",
		slog.Int("max_size", cfg.Cache.MaxSize),
		slog.Duration("default_ttl", cfg.Cache.DefaultTTL),
	)

	return service.Caches{
		Instructors: cache.New[*service.Instructor](cfg.Cache.Options()...),
		Lists:       cache.New[*service.InstructorList](cfg.Cache.Options()...),
	}
}

func initBasicClient(ctx context.Context, logger *slog.Logger, cfg *Config) *catalogue.BasicClient {
	logger.InfoContext(ctx, "initializing catalogue client")
	httpClient := &http.Client{
		Timeout: cfg.Server.HTTPClientTimeout,
	}

	return catalogue.NewBasicClient(httpClient, &cfg.Client, logger)
}

func initService(
	ctx context.Context,
	logger *slog.Logger,
	client catalogue.Client,
	caches service.Caches,
	cfg *Config,
) *service.Service {
	logger.InfoContext(ctx, "initializing service")

	return service.NewInstructorService(ctx, logger, client, caches, cfg.Cache.DefaultTTL,
		service.WithFetchTimeout(cfg.Server.HTTPClientTimeout),
	)
}

func initServiceHandler(
	ctx context.Context,
	srv service.InstructorService,
	logger *slog.Logger,
	cfg *Config,
	render *render.Render,
) *handler.ServiceHandler {
	logger.InfoContext(ctx, "initializing service handler")

	return handler.NewServiceHandler(srv, logger, &cfg.Server, render)
}
