package cartsvc

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/wickedsales/storefront/internal/dal/interfaces/icart"
	"github.com/wickedsales/storefront/internal/dal/interfaces/iproduct"
	"github.com/wickedsales/storefront/internal/dal/postgres"
	"github.com/wickedsales/storefront/internal/dal/uow"
	"github.com/wickedsales/storefront/internal/errs"
	"github.com/wickedsales/storefront/internal/service/models/cartitem"
)

// CartService reads and mutates the session's cart.
type CartService struct {
	pgClient *postgres.Client
	newUOW   func() unitOfWork
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ProductRepository() iproduct.PostgresRepository
	CartRepository() icart.PostgresRepository
}

// option is a function that configures the CartService.
type option func(*CartService)

// MustNewCartService creates a new CartService.
func MustNewCartService(opts ...option) *CartService {
	s := &CartService{}
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

// WithPostgresClient sets the Postgres client for the CartService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *CartService) {
		s.pgClient = pgClient
	}
}

// WithUnitOfWorkFactory overrides how units of work are created.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *CartService) {
		s.newUOW = factory
	}
}

// GetCart returns the cart's line items joined with product details, ordered
// by cart item id. An unknown cart id yields an empty slice, not an error.
func (s *CartService) GetCart(ctx context.Context, cartID int64) ([]cartitem.LineItem, error) {
	items, err := s.newUOW().CartRepository().
		QueryLineItems(ctx, &cartitem.QueryLineItemsModel{CartIds: []int64{cartID}})
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []cartitem.LineItem{}
	}

	return items, nil
}

// AddToCart snapshots the product's current price into a new cart item and
// returns the created line item together with the owning cart id. When
// cartID is nil a cart is created first. The price lookup, lazy cart
// creation, item insert and re-fetch run in a single transaction, so each
// request either fully happens or leaves no trace. Two concurrent requests
// that both arrive with a nil cartID still each create a cart; the session
// keeps whichever cart id is saved last and the other cart goes unused.
func (s *CartService) AddToCart(
	ctx context.Context,
	cartID *int64,
	productID int64,
) (*cartitem.LineItem, int64, error) {
	work := s.newUOW()

	if err := work.Begin(ctx); err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = work.Rollback(ctx)
	}()

	price, err := work.ProductRepository().GetPrice(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, errs.NewClientError(
				http.StatusBadRequest,
				"No results available at this moment",
			)
		}
		return nil, 0, fmt.Errorf("failed to look up product price: %w", err)
	}

	var id int64
	if cartID != nil {
		id = *cartID
	} else {
		created, err := work.CartRepository().InsertCart(ctx)
		if err != nil {
			return nil, 0, err
		}
		id = created.ID
	}

	cartItemID, err := work.CartRepository().InsertItem(ctx, cartitem.CartItem{
		CartID:    id,
		ProductID: productID,
		Price:     price,
	})
	if err != nil {
		return nil, 0, err
	}

	items, err := work.CartRepository().
		QueryLineItems(ctx, &cartitem.QueryLineItemsModel{Ids: []int64{cartItemID}})
	if err != nil {
		return nil, 0, err
	}
	if len(items) == 0 {
		return nil, 0, fmt.Errorf("inserted cart item %d not found", cartItemID)
	}

	if err := work.Commit(ctx); err != nil {
		return nil, 0, err
	}

	return &items[0], id, nil
}
