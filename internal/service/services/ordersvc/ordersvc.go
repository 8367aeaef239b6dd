package ordersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/wickedsales/storefront/internal/dal/interfaces/iorder"
	"github.com/wickedsales/storefront/internal/dal/interfaces/ioutbox"
	"github.com/wickedsales/storefront/internal/dal/postgres"
	"github.com/wickedsales/storefront/internal/dal/uow"
	"github.com/wickedsales/storefront/internal/service/models/order"
	"github.com/wickedsales/storefront/internal/service/models/outbox"
)

// OrderService converts carts into orders.
type OrderService struct {
	pgClient *postgres.Client
	newUOW   func() unitOfWork
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorder.PostgresRepository
	OutboxRepository() ioutbox.Repository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.newUOW == nil {
		s.newUOW = func() unitOfWork {
			return uow.NewUnitOfWork(s.pgClient)
		}
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// WithUnitOfWorkFactory overrides how units of work are created.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *OrderService) {
		s.newUOW = factory
	}
}

// CreateOrder inserts the order row and, in the same transaction, an
// order-placed outbox event. Input validation happens at the handler
// boundary so invalid requests never reach the store.
func (s *OrderService) CreateOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	work := s.newUOW()

	if err := work.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = work.Rollback(ctx)
	}()

	created, err := work.OrderRepository().Insert(ctx, o)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(order.PlacedEvent{
		OrderID:   created.ID,
		CartID:    created.CartID,
		CreatedAt: created.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order placed event: %w", err)
	}

	maxRetries := viper.GetInt("rabbitmq.outbox.max_retries")
	if maxRetries == 0 {
		maxRetries = 5
	}

	now := time.Now()
	err = work.OutboxRepository().Insert(ctx, outbox.Message{
		QueueName:   viper.GetString("rabbitmq.order_placed_queue"),
		RoutingKey:  viper.GetString("rabbitmq.order_placed_queue"),
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  maxRetries,
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	})
	if err != nil {
		return nil, err
	}

	if err := work.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
