package catalogsvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wickedsales/storefront/internal/dal/interfaces/iproduct"
	"github.com/wickedsales/storefront/internal/dal/postgres"
	"github.com/wickedsales/storefront/internal/dal/uow"
	"github.com/wickedsales/storefront/internal/errs"
	"github.com/wickedsales/storefront/internal/service/models/product"
)

// CatalogService serves read-only queries over the product catalog.
type CatalogService struct {
	pgClient *postgres.Client
	newUOW   func() unitOfWork
}

type unitOfWork interface {
	ProductRepository() iproduct.PostgresRepository
}

// option is a function that configures the CatalogService.
type option func(*CatalogService)

// MustNewCatalogService creates a new CatalogService.
func MustNewCatalogService(opts ...option) *CatalogService {
	s := &CatalogService{}
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

// WithPostgresClient sets the Postgres client for the CatalogService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *CatalogService) {
		s.pgClient = pgClient
	}
}

// WithUnitOfWorkFactory overrides how units of work are created.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *CatalogService) {
		s.newUOW = factory
	}
}

// HealthCheck verifies the backing store is reachable.
func (s *CatalogService) HealthCheck(ctx context.Context) error {
	return s.pgClient.Ping(ctx)
}

// ListProducts returns all catalog products in listing shape, ordered by
// product id. No filtering, no pagination.
func (s *CatalogService) ListProducts(ctx context.Context) ([]product.Summary, error) {
	products, err := s.newUOW().ProductRepository().
		Query(ctx, &product.QueryProductsModel{})
	if err != nil {
		return nil, err
	}

	summaries := make([]product.Summary, 0, len(products))
	for i := range products {
		summaries = append(summaries, products[i].Summary())
	}

	return summaries, nil
}

// GetProduct returns the full record of a single product. Returns a NotFound
// client error when no row matches.
func (s *CatalogService) GetProduct(ctx context.Context, productID int64) (*product.Product, error) {
	products, err := s.newUOW().ProductRepository().
		Query(ctx, &product.QueryProductsModel{Ids: []int64{productID}})
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, errs.NewClientError(
			http.StatusNotFound,
			fmt.Sprintf("cant find product with productId %d", productID),
		)
	}

	return &products[0], nil
}
