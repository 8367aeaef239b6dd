package iproduct

import (
	"context"

	"github.com/wickedsales/storefront/internal/service/models/product"
)

// PostgresRepository is an interface for the product postgres repository.
type PostgresRepository interface {
	Query(ctx context.Context, filter *product.QueryProductsModel) ([]product.Product, error)
	GetPrice(ctx context.Context, productID int64) (int64, error)
}
