package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/education"
	"github.com/Zachkp/portfolio/internal/effects"
	"github.com/Zachkp/portfolio/internal/eventlog"
	"github.com/Zachkp/portfolio/internal/storage"
	"github.com/Zachkp/portfolio/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	site, err := content.Load(cfg.ContentPath)
	if err != nil {
		logger.Fatal("failed to load content", zap.String("path", cfg.ContentPath), zap.Error(err))
	}

	store, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}
	defer store.Close()

	events := eventlog.New(store, logger.Named("events"),
		eventlog.WithCapacity(cfg.LogCapacity),
		eventlog.WithURL(cfg.SiteURL))

	seed := uint64(time.Now().UnixNano())
	srv := web.New(ctx, web.Deps{
		Site:      site,
		Events:    events,
		Education: education.NewStore(store, events, logger.Named("education"), site.Education),
		Carousel:  effects.NewCarousel(site.Slides, cfg.SlideInterval, events),
		Reveal:    effects.NewRevealObserver(effects.DefaultRevealThreshold, events),
		Particles: effects.NewParticlePool(cfg.ParticleCount, effects.DefaultParticleLifetime, seed),
		Sparkles:  effects.NewSparkles(seed),
		Scroll:    effects.NewDebouncer(effects.DefaultScrollDebounce),
		Logger:    logger,
		StaticDir: "./static",
		ImagesDir: "./images",
	})
	srv.Boot(ctx)
	defer srv.Shutdown()

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Handler(),
	}
	go func() {
		logger.Info("Portfolio listening", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var zcfg zap.Config
	if cfg.GinMode == gin.ReleaseMode {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zcfg.Level = lvl
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
