package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oksasatya/wil-portal/config"
	"github.com/oksasatya/wil-portal/internal/container"
	"github.com/oksasatya/wil-portal/internal/infrastructure/memory"
	"github.com/oksasatya/wil-portal/internal/infrastructure/redisstore"
	"github.com/oksasatya/wil-portal/internal/router"
	"github.com/oksasatya/wil-portal/pkg/helpers"
	"github.com/oksasatya/wil-portal/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Credential store and catalog are seeded in memory at startup
	users, err := memory.SeedUsers(memory.DemoCredentials(), cfg.BcryptCost)
	if err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}
	userRepo, err := memory.NewUserRepository(users)
	if err != nil {
		log.Fatalf("invalid user seed: %v", err)
	}
	programRepo, err := memory.NewProgramRepository(memory.DefaultPrograms())
	if err != nil {
		log.Fatalf("invalid program seed: %v", err)
	}

	c := &container.Container{
		Config:      cfg,
		Logger:      logger,
		JWT:         helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL, cfg.AppName),
		Users:       userRepo,
		Programs:    programRepo,
		Revocations: memory.NewRevocationStore(),
		Stats:       memory.DefaultStats(),
	}

	// Redis (optional): rate limiting and shared token revocation
	if cfg.RedisEnabled() {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		if err := helpers.PingRedis(ctx, rdb); err != nil {
			logger.WithError(err).Warn("redis unreachable; rate limiter will fail open")
		}
		c.Redis = rdb
		c.Revocations = redisstore.NewRevocationStore(rdb)
	}

	// RabbitMQ (optional): confirmation email jobs
	if cfg.NotificationsEnabled() {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQNotifyQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; notifications disabled")
		} else {
			defer pub.Close()
			c.SetPublisher(pub)
		}
	}

	r := router.NewEngine(c)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s%s", cfg.Port, cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
