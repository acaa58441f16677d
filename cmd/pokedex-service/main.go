package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pribylovaa/pokedex-service/internal/config"
	pokehttp "github.com/pribylovaa/pokedex-service/internal/http"
	"github.com/pribylovaa/pokedex-service/internal/pokeapi"
	"github.com/pribylovaa/pokedex-service/internal/ratelimit"
	"github.com/pribylovaa/pokedex-service/internal/service"
	"github.com/pribylovaa/pokedex-service/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting pokedex-service", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	initCtx, initCancel := context.WithTimeout(rootCtx, 10*time.Second)
	defer initCancel()

	store, err := postgres.New(initCtx, cfg.DB.URL)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	log.Info("storage_initialized")

	catalog := pokeapi.New(
		&http.Client{Timeout: cfg.PokeAPI.Timeout},
		cfg.PokeAPI.BaseURL,
		cfg.PokeAPI.RosterLimit,
	)

	limiter, err := newLimiter(*cfg)
	if err != nil {
		log.Error("rate_limiter_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := limiter.Close(); cerr != nil {
			log.Warn("rate_limiter_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	svc := service.New(store, catalog, *cfg)

	apiHandler := pokehttp.NewRouter(svc, limiter, *cfg, pokehttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Request,
		BasePath: "",
	})

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           apiHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// newLimiter выбирает бэкенд лимитера: Redis при заданном REDIS_URL,
// иначе процесс-локальная реализация (пригодна только для single-instance).
func newLimiter(cfg config.Config) (ratelimit.Limiter, error) {
	if cfg.RateLimit.RedisURL != "" {
		return ratelimit.NewRedis(cfg.RateLimit.RedisURL, "", cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}

	return ratelimit.NewMemory(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window), nil
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
