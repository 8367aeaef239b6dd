package uow

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/wickedsales/storefront/internal/dal/interfaces/icart"
	"github.com/wickedsales/storefront/internal/dal/interfaces/iorder"
	"github.com/wickedsales/storefront/internal/dal/interfaces/ioutbox"
	"github.com/wickedsales/storefront/internal/dal/interfaces/iproduct"
	"github.com/wickedsales/storefront/internal/dal/postgres"
	cartrepo "github.com/wickedsales/storefront/internal/dal/repositories/cart/postgres"
	orderrepo "github.com/wickedsales/storefront/internal/dal/repositories/order/postgres"
	outboxrepo "github.com/wickedsales/storefront/internal/dal/repositories/outbox/postgres"
	productrepo "github.com/wickedsales/storefront/internal/dal/repositories/product/postgres"
)

// unitOfWork scopes the repositories to a single pgx transaction. Before
// Begin the repositories run against the pool directly.
type unitOfWork struct {
	client *postgres.Client
	tx     pgx.Tx

	productRepo iproduct.PostgresRepository
	cartRepo    icart.PostgresRepository
	orderRepo   iorder.PostgresRepository
	outboxRepo  ioutbox.Repository
}

func NewUnitOfWork(client *postgres.Client) *unitOfWork {
	pool := client.Pool()

	return &unitOfWork{
		client:      client,
		productRepo: productrepo.NewPostgresProductRepository(pool),
		cartRepo:    cartrepo.NewPostgresCartRepository(pool),
		orderRepo:   orderrepo.NewPostgresOrderRepository(pool),
		outboxRepo:  outboxrepo.NewOutboxRepository(pool),
	}
}

func (u *unitOfWork) ProductRepository() iproduct.PostgresRepository {
	return u.productRepo
}

func (u *unitOfWork) CartRepository() icart.PostgresRepository {
	return u.cartRepo
}

func (u *unitOfWork) OrderRepository() iorder.PostgresRepository {
	return u.orderRepo
}

func (u *unitOfWork) OutboxRepository() ioutbox.Repository {
	return u.outboxRepo
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.client.Pool().Begin(ctx)
	if err != nil {
		return err
	}

	u.tx = tx
	u.productRepo = productrepo.NewPostgresProductRepository(tx)
	u.cartRepo = cartrepo.NewPostgresCartRepository(tx)
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.outboxRepo = outboxrepo.NewOutboxRepository(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit(ctx)
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Rollback(ctx)
}
