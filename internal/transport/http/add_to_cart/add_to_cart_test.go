package addtocart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wickedsales/storefront/internal/service/models/cartitem"
	"github.com/wickedsales/storefront/internal/session"
)

type fakeService struct {
	called bool
}

func (s *fakeService) AddToCart(ctx context.Context, cartID *int64, productID int64) (*cartitem.LineItem, int64, error) {
	s.called = true
	return &cartitem.LineItem{CartItemID: 1, ProductID: productID}, 1, nil
}

type fakeStore struct{}

func (s *fakeStore) Get(ctx context.Context, token string) (*session.Session, error) {
	return nil, session.ErrNotFound
}
func (s *fakeStore) Save(ctx context.Context, sess *session.Session) error { return nil }
func (s *fakeStore) Delete(ctx context.Context, token string) error        { return nil }

func TestAddToCartWithoutSession(t *testing.T) {
	svc := &fakeService{}
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"productId":2}`))
	rec := httptest.NewRecorder()

	AddToCart(rec, req, svc, &fakeStore{})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"an unexpected error occurred"}`, rec.Body.String())
	require.False(t, svc.called)
}
