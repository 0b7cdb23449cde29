package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"urban-threads/config"
	"urban-threads/controllers"
	"urban-threads/middleware"
	"urban-threads/routes"
	"urban-threads/services"
	"urban-threads/storage"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	var store storage.Store
	if cfg.RedisAddr != "" {
		redisStore, err := storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Warn("redis unreachable, falling back to file store", "error", err)
		} else {
			defer redisStore.Close()
			store = redisStore
			logger.Info("using redis store", "addr", cfg.RedisAddr)
		}
	}
	if store == nil {
		fileStore, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open data directory: %v", err)
		}
		store = fileStore
		logger.Info("using file store", "dir", cfg.DataDir)
	}

	authenticator, err := services.NewDemoAuthenticator(cfg.LoginDelay)
	if err != nil {
		log.Fatalf("Failed to build authenticator: %v", err)
	}

	catalog := services.NewCatalogStore(store, logger)
	cart := services.NewCartStore(store, logger)
	sessions := services.NewSessionStore(store, authenticator, logger)
	contactLog := services.NewContactLog(store, logger, cfg.SubmitDelay)
	checkout := services.NewCheckout(cart)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, routes.Controllers{
		Auth:    controllers.NewAuthController(sessions),
		Product: controllers.NewProductController(catalog),
		Cart:    controllers.NewCartController(cart, catalog),
		Order:   controllers.NewOrderController(checkout),
		Contact: controllers.NewContactController(contactLog),
		Admin:   controllers.NewAdminController(catalog, contactLog),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
