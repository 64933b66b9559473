package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-storefront/internal/api/http"
	"github.com/spec-kit/ticket-storefront/internal/api/http/handlers"
	"github.com/spec-kit/ticket-storefront/internal/auth"
	"github.com/spec-kit/ticket-storefront/internal/config"
	"github.com/spec-kit/ticket-storefront/internal/events"
	"github.com/spec-kit/ticket-storefront/internal/observability"
	"github.com/spec-kit/ticket-storefront/internal/persistence"
	"github.com/spec-kit/ticket-storefront/internal/service"
	"github.com/spec-kit/ticket-storefront/internal/session"
	"github.com/spec-kit/ticket-storefront/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	store := session.NewRedisStore(redis.Client, cfg.Session.TTL())
	guard := session.NewGuard(store)
	tokens := auth.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.TTL())
	client := upstream.NewClient(cfg.Upstream)
	dispatcher := events.NewInMemoryDispatcher()

	accountService := service.NewAccountService(service.AccountDependencies{
		Client: client,
		Store:  store,
		Tokens: tokens,
	})
	storefrontService := service.NewStorefrontService(service.StorefrontDependencies{
		Guard:      guard,
		Client:     client,
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)
	notificationService.RegisterHandlers()

	authMiddleware := auth.NewMiddleware(tokens)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		Auth:           handlers.NewAuthHandler(accountService, storefrontService),
		Tickets:        handlers.NewTicketsHandler(storefrontService),
		Bookings:       handlers.NewBookingsHandler(storefrontService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
