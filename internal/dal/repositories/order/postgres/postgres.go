package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/wickedsales/storefront/internal/service/models/order"
)

// OrderDal represents order data access layer model.
type OrderDal struct {
	OrderId         int64     `db:"order_id"`
	CartId          int64     `db:"cart_id"`
	Name            string    `db:"name"`
	CreditCard      string    `db:"credit_card"`
	ShippingAddress string    `db:"shipping_address"`
	CreatedAt       time.Time `db:"created_at"`
}

// ToModel converts OrderDal to service layer Order model.
func (o *OrderDal) ToModel() *order.Order {
	return &order.Order{
		ID:              o.OrderId,
		CartID:          o.CartId,
		Name:            o.Name,
		CreditCard:      o.CreditCard,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
	}
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn GenericConn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert creates an order from a cart and returns the created record.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (*order.Order, error) {
	sql, args, err := r.sb.
		Insert("orders").
		Columns("cart_id", "name", "credit_card", "shipping_address", "created_at").
		Values(o.CartID, o.Name, o.CreditCard, o.ShippingAddress, sq.Expr("now()")).
		Suffix("RETURNING order_id, cart_id, name, credit_card, shipping_address, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	var dal OrderDal
	var createdAt pgtype.Timestamptz

	err = r.conn.QueryRow(ctx, sql, args...).Scan(
		&dal.OrderId,
		&dal.CartId,
		&dal.Name,
		&dal.CreditCard,
		&dal.ShippingAddress,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	dal.CreatedAt = createdAt.Time

	return dal.ToModel(), nil
}
