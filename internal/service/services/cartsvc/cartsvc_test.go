package cartsvc

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"github.com/wickedsales/storefront/internal/dal/interfaces/icart"
	"github.com/wickedsales/storefront/internal/dal/interfaces/iproduct"
	"github.com/wickedsales/storefront/internal/errs"
	"github.com/wickedsales/storefront/internal/service/models/cart"
	"github.com/wickedsales/storefront/internal/service/models/cartitem"
	"github.com/wickedsales/storefront/internal/service/models/product"
)

// fakeStore holds in-memory carts and products shared by the fake repos.
type fakeStore struct {
	products   map[int64]int64 // productId -> price
	carts      map[int64][]cartitem.CartItem
	nextCartID int64
	nextItemID int64
	committed  bool
	rolledBack bool
}

type fakeUOW struct {
	store *fakeStore
	began bool
}

func (u *fakeUOW) Begin(ctx context.Context) error { u.began = true; return nil }

func (u *fakeUOW) Commit(ctx context.Context) error {
	u.store.committed = true
	return nil
}

func (u *fakeUOW) Rollback(ctx context.Context) error {
	if !u.store.committed {
		u.store.rolledBack = true
	}
	return nil
}

func (u *fakeUOW) ProductRepository() iproduct.PostgresRepository { return &fakeProductRepo{u.store} }
func (u *fakeUOW) CartRepository() icart.PostgresRepository       { return &fakeCartRepo{u.store} }

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Query(ctx context.Context, filter *product.QueryProductsModel) ([]product.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) GetPrice(ctx context.Context, productID int64) (int64, error) {
	price, ok := r.store.products[productID]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	return price, nil
}

type fakeCartRepo struct{ store *fakeStore }

func (r *fakeCartRepo) InsertCart(ctx context.Context) (*cart.Cart, error) {
	r.store.nextCartID++
	r.store.carts[r.store.nextCartID] = nil
	return &cart.Cart{ID: r.store.nextCartID, CreatedAt: time.Now()}, nil
}

func (r *fakeCartRepo) InsertItem(ctx context.Context, item cartitem.CartItem) (int64, error) {
	r.store.nextItemID++
	item.ID = r.store.nextItemID
	r.store.carts[item.CartID] = append(r.store.carts[item.CartID], item)
	return item.ID, nil
}

func (r *fakeCartRepo) QueryLineItems(ctx context.Context, filter *cartitem.QueryLineItemsModel) ([]cartitem.LineItem, error) {
	var result []cartitem.LineItem
	for cartID, items := range r.store.carts {
		for _, item := range items {
			if len(filter.CartIds) > 0 && filter.CartIds[0] != cartID {
				continue
			}
			if len(filter.Ids) > 0 && filter.Ids[0] != item.ID {
				continue
			}
			result = append(result, cartitem.LineItem{
				CartItemID: item.ID,
				Price:      item.Price,
				ProductID:  item.ProductID,
			})
		}
	}
	return result, nil
}

func newService(store *fakeStore) *CartService {
	return MustNewCartService(WithUnitOfWorkFactory(func() unitOfWork {
		return &fakeUOW{store: store}
	}))
}

func TestAddToCart(t *testing.T) {
	t.Run("fresh session creates exactly one cart", func(t *testing.T) {
		store := &fakeStore{
			products: map[int64]int64{7: 2999},
			carts:    map[int64][]cartitem.CartItem{},
		}
		svc := newService(store)

		item, cartID, err := svc.AddToCart(context.Background(), nil, 7)
		require.NoError(t, err)
		require.Equal(t, int64(1), cartID)
		require.Len(t, store.carts, 1)
		require.Equal(t, int64(2999), item.Price)
		require.Equal(t, int64(7), item.ProductID)
		require.True(t, store.committed)
	})

	t.Run("second add reuses the existing cart", func(t *testing.T) {
		store := &fakeStore{
			products: map[int64]int64{7: 2999, 8: 500},
			carts:    map[int64][]cartitem.CartItem{},
		}
		svc := newService(store)

		_, cartID, err := svc.AddToCart(context.Background(), nil, 7)
		require.NoError(t, err)

		_, cartID2, err := svc.AddToCart(context.Background(), &cartID, 8)
		require.NoError(t, err)
		require.Equal(t, cartID, cartID2)
		require.Len(t, store.carts, 1)
		require.Len(t, store.carts[cartID], 2)
	})

	t.Run("price is snapshotted at add time", func(t *testing.T) {
		store := &fakeStore{
			products: map[int64]int64{7: 2999},
			carts:    map[int64][]cartitem.CartItem{},
		}
		svc := newService(store)

		_, cartID, err := svc.AddToCart(context.Background(), nil, 7)
		require.NoError(t, err)

		// A later product price change must not affect existing items.
		store.products[7] = 9999

		items, err := svc.GetCart(context.Background(), cartID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, int64(2999), items[0].Price)
	})

	t.Run("missing product yields a client error and rolls back", func(t *testing.T) {
		store := &fakeStore{
			products: map[int64]int64{},
			carts:    map[int64][]cartitem.CartItem{},
		}
		svc := newService(store)

		_, _, err := svc.AddToCart(context.Background(), nil, 42)
		clientErr, ok := errs.AsClient(err)
		require.True(t, ok)
		require.Equal(t, http.StatusBadRequest, clientErr.Status)
		require.True(t, store.rolledBack)
		require.Empty(t, store.carts)
	})
}

func TestGetCart(t *testing.T) {
	t.Run("unknown cart returns empty slice", func(t *testing.T) {
		store := &fakeStore{
			products: map[int64]int64{},
			carts:    map[int64][]cartitem.CartItem{},
		}
		svc := newService(store)

		items, err := svc.GetCart(context.Background(), 99)
		require.NoError(t, err)
		require.NotNil(t, items)
		require.Empty(t, items)
	})
}
