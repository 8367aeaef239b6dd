package addtocart

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wickedsales/storefront/internal/errs"
	"github.com/wickedsales/storefront/internal/service/models/cartitem"
	"github.com/wickedsales/storefront/internal/session"
	"github.com/wickedsales/storefront/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	AddToCart(ctx context.Context, cartID *int64, productID int64) (*cartitem.LineItem, int64, error)
}

// addToCartRequest represents an add to cart request.
type addToCartRequest struct {
	ProductID int64 `json:"productId"`
}

// AddToCart snapshots the product into the session's cart, creating the cart
// on first use, and returns the created line item with a Created status.
func AddToCart(w http.ResponseWriter, r *http.Request, service service, store session.Store) {
	req := addToCartRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID <= 0 {
		respond.Error(w, errs.NewClientError(
			http.StatusNotFound,
			"productId must be a positive integer",
		))

		return
	}

	sess := session.FromContext(r.Context())
	if sess == nil {
		respond.Error(w, errors.New("no session in request context"))

		return
	}

	item, cartID, err := service.AddToCart(r.Context(), sess.CartID, req.ProductID)
	if err != nil {
		respond.Error(w, err)

		return
	}

	if sess.CartID == nil || *sess.CartID != cartID {
		sess.CartID = &cartID
		if err := store.Save(r.Context(), sess); err != nil {
			slog.Error("Failed to save session after add to cart", "error", err)
			respond.Error(w, err)

			return
		}
	}

	respond.JSON(w, http.StatusCreated, item)
}
