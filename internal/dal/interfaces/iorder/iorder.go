package iorder

import (
	"context"

	"github.com/wickedsales/storefront/internal/service/models/order"
)

// PostgresRepository is an interface for the order postgres repository.
type PostgresRepository interface {
	Insert(ctx context.Context, o order.Order) (*order.Order, error)
}
