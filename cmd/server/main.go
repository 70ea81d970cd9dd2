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
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/idbridge/core/idsession"
	"github.com/dmitrymomot/idbridge/internal/config"
	"github.com/dmitrymomot/idbridge/internal/handler"
	"github.com/dmitrymomot/idbridge/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, "idbridge")

	store := idsession.NewMemoryStore()
	sessions := idsession.NewManager(store,
		idsession.WithRelyingPartyID(cfg.RelyingPartyID),
		idsession.WithProtocol(cfg.Protocol()),
		idsession.WithMediatorURL(cfg.MediatorURL),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handler.New(sessions, log).RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server started",
			slog.String("port", cfg.Port),
			slog.String("relying_party", cfg.RelyingPartyID),
			slog.String("protocol", cfg.ExchangeProtocol),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("server stopped")
}
