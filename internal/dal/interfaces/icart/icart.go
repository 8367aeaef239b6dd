package icart

import (
	"context"

	"github.com/wickedsales/storefront/internal/service/models/cart"
	"github.com/wickedsales/storefront/internal/service/models/cartitem"
)

// PostgresRepository is an interface for the cart postgres repository.
type PostgresRepository interface {
	InsertCart(ctx context.Context) (*cart.Cart, error)
	InsertItem(ctx context.Context, item cartitem.CartItem) (int64, error)
	QueryLineItems(
		ctx context.Context,
		filter *cartitem.QueryLineItemsModel,
	) ([]cartitem.LineItem, error)
}
