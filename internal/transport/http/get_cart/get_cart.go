package getcart

import (
	"context"
	"net/http"

	"github.com/wickedsales/storefront/internal/service/models/cartitem"
	"github.com/wickedsales/storefront/internal/session"
	"github.com/wickedsales/storefront/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	GetCart(ctx context.Context, cartID int64) ([]cartitem.LineItem, error)
}

// GetCart returns the session's cart line items. A session with no cart
// activity yet gets an empty array, not an error.
func GetCart(w http.ResponseWriter, r *http.Request, service service) {
	sess := session.FromContext(r.Context())
	if sess == nil || sess.CartID == nil {
		respond.JSON(w, http.StatusOK, []cartitem.LineItem{})

		return
	}

	items, err := service.GetCart(r.Context(), *sess.CartID)
	if err != nil {
		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, items)
}
