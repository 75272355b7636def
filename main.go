package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"signal-webhook/config"
	"signal-webhook/database"
	"signal-webhook/handlers"
	"signal-webhook/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("SIGNALS_CONFIG"))
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.Open(cfg.DB)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	defer database.Close(db)
	log.Info("database ready", zap.String("path", cfg.DB.Path))

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	router, err := handlers.NewRouter(handlers.RouterConfig{
		Store:       database.NewSignalStore(db),
		Logger:      log,
		MetricsPath: metricsPath,
	})
	if err != nil {
		log.Fatal("router setup failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("webhook receiver listening",
			zap.String("addr", srv.Addr),
			zap.String("webhook", "/webhook"),
			zap.String("signals", "/signals"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed", zap.Error(err))
	}
}
