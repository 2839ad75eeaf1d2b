package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"imglab-urls/internal/platform/config"
	"imglab-urls/internal/platform/logger"
	"imglab-urls/internal/platform/metrics"
	"imglab-urls/internal/urlbuilder"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = config.Load()

	cfg := config.LoadServer()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	repo, err := loadRepository(cfg.SourcesFile)
	if err != nil {
		log.Error("load sources", "error", err, "sources_file", cfg.SourcesFile)
		os.Exit(1)
	}
	if repo.Count() == 0 {
		log.Warn("no sources registered", "sources_file", cfg.SourcesFile)
	}

	met := metrics.New()
	r := newRouter(repo, log, met)

	addr := ":" + cfg.Port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("server starting",
		"port", cfg.Port,
		"sources", repo.Count(),
		"log_level", cfg.LogLevel,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

// loadRepository registers the catalog at sourcesFile followed by the
// IMGLAB_* source, if one is configured.
func loadRepository(sourcesFile string) (*urlbuilder.InMemoryRepository, error) {
	cfgs, err := config.LoadSources(sourcesFile)
	if err != nil {
		return nil, err
	}
	if envCfg, ok := config.SourceFromEnv(); ok {
		cfgs = append(cfgs, envCfg)
	}

	repo := urlbuilder.NewInMemoryRepository()
	if err := urlbuilder.RegisterAll(repo, cfgs); err != nil {
		return nil, fmt.Errorf("register sources: %w", err)
	}
	return repo, nil
}

func newRouter(repo urlbuilder.Repository, log *slog.Logger, met *metrics.Metrics) *chi.Mux {
	h := urlbuilder.NewHandler(urlbuilder.NewService(repo), log, met)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logger.RequestLogger(log))
	r.Use(metrics.RequestMiddleware(met))
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		met.Handler(func() { met.SetRegisteredSources(repo.Count()) }).ServeHTTP(w, r)
	})
	h.Routes(r)
	return r
}
