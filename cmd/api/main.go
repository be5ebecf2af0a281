package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/minipos/minipos-golang/internal/auth"
	"github.com/minipos/minipos-golang/internal/config"
	"github.com/minipos/minipos-golang/internal/handlers"
	"github.com/minipos/minipos-golang/internal/pos"
	"github.com/minipos/minipos-golang/internal/routes"
	"github.com/minipos/minipos-golang/internal/store"
	"github.com/minipos/minipos-golang/internal/store/memory"
)

func main() {
	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Warn("Could not find or load .env file. Relying on system environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	var (
		catalog pos.Catalog
		carts   pos.CartRepository
		orders  pos.OrderRepository
		users   handlers.UserStore
	)

	if cfg.DatabaseDSN == "" {
		logger.Warn("POS_DB_DSN not set, using the in-memory store (state is lost on restart)")
		mem := memory.New()
		catalog, carts, orders, users = mem, mem, mem, mem
	} else {
		db, err := store.Open(cfg.DatabaseDSN)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to database")
		}
		defer db.Close()

		if err := db.Migrate(cfg.MigrationsPath); err != nil {
			logger.WithError(err).Fatal("Failed to run migrations")
		}
		logger.Info("Database connected and migrations applied")

		catalog, carts, orders, users = db, db, db, db
	}

	app := &handlers.Handlers{
		Users:   users,
		Catalog: catalog,
		Carts:   pos.NewCartService(catalog, carts),
		Orders:  pos.NewOrderService(catalog, carts, orders),
		Tokens:  auth.NewTokenManager(cfg.JWTSecret),
		Log:     logger,
	}

	router := routes.SetupRouter(app)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("Starting Mini POS API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	waitForKillSignal(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
	}
}

func waitForKillSignal(logger *log.Logger) {
	killSignalChan := make(chan os.Signal, 1)
	signal.Notify(killSignalChan, os.Interrupt, syscall.SIGTERM)

	switch <-killSignalChan {
	case os.Interrupt:
		logger.Info("Got SIGINT...")
	case syscall.SIGTERM:
		logger.Info("Got SIGTERM...")
	}
}
