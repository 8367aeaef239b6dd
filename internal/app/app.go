package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"github.com/wickedsales/storefront/internal/dal/postgres"
	"github.com/wickedsales/storefront/internal/dal/rabbitmq"
	"github.com/wickedsales/storefront/internal/dal/redis"
	outboxrepo "github.com/wickedsales/storefront/internal/dal/repositories/outbox/postgres"
	"github.com/wickedsales/storefront/internal/otel"
	"github.com/wickedsales/storefront/internal/service/services/cartsvc"
	"github.com/wickedsales/storefront/internal/service/services/catalogsvc"
	"github.com/wickedsales/storefront/internal/service/services/ordersvc"
	"github.com/wickedsales/storefront/internal/session"
	httptransport "github.com/wickedsales/storefront/internal/transport/http"
	outboxworker "github.com/wickedsales/storefront/internal/worker/outbox"
)

// App represents the application.
type App struct {
	transport      *httptransport.HTTPTransport
	outboxWorker   *outboxworker.Worker
	postgresClient *postgres.Client
	redisClient    *redis.Client
	rabbitClient   *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()

	postgresClient := postgres.MustNewClient()
	redisClient := redis.MustNewClient()
	rabbitClient := rabbitmq.MustNewClient()

	sessionTTL := viper.GetDuration("session.ttl")
	if sessionTTL == 0 {
		sessionTTL = 24 * time.Hour
	}
	sessionStore := session.NewRedisStore(redisClient.DB(), sessionTTL)

	catalogSvc := catalogsvc.MustNewCatalogService(
		catalogsvc.WithPostgresClient(postgresClient),
	)
	cartSvc := cartsvc.MustNewCartService(
		cartsvc.WithPostgresClient(postgresClient),
	)
	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithPostgresClient(postgresClient),
	)

	worker := outboxworker.NewWorker(
		outboxrepo.NewOutboxRepository(postgresClient.Pool()),
		rabbitClient,
	)

	transport := httptransport.NewHTTPTransport(catalogSvc, cartSvc, orderSvc, sessionStore)
	transport.RegisterRoutes()

	return &App{
		transport:      transport,
		outboxWorker:   worker,
		postgresClient: postgresClient,
		redisClient:    redisClient,
		rabbitClient:   rabbitClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	go a.outboxWorker.Start(workerCtx)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	cancelWorker()

	if err := a.rabbitClient.Close(); err != nil {
		slog.Error("RabbitMQ connection close error", "error", err)
	}

	if err := a.redisClient.Close(); err != nil {
		slog.Error("Redis connection close error", "error", err)
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Trace provider shutdown error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
