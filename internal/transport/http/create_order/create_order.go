package createorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wickedsales/storefront/internal/errs"
	"github.com/wickedsales/storefront/internal/service/models/order"
	"github.com/wickedsales/storefront/internal/session"
	"github.com/wickedsales/storefront/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, o order.Order) (*order.Order, error)
}

// createOrderRequest represents a create order request.
type createOrderRequest struct {
	Name            string `json:"name"            validate:"required"`
	CreditCard      string `json:"creditCard"      validate:"required"`
	ShippingAddress string `json:"shippingAddress" validate:"required"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// CreateOrder converts the session's cart into an order and clears the
// session's cart reference. Validation failures never touch the store.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service, store session.Store) {
	sess := session.FromContext(r.Context())
	if sess == nil || sess.CartID == nil {
		respond.Error(w, errs.NewClientError(http.StatusBadRequest, "cartId not found"))

		return
	}

	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, errs.NewClientError(http.StatusBadRequest, "You are missing order information"))

		return
	}

	if err := req.Validate(); err != nil {
		respond.Error(w, errs.NewClientError(http.StatusBadRequest, "You are missing order information"))

		return
	}

	created, err := service.CreateOrder(r.Context(), order.Order{
		CartID:          *sess.CartID,
		Name:            req.Name,
		CreditCard:      req.CreditCard,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		respond.Error(w, err)

		return
	}

	// The cart cannot be ordered twice: drop the session's reference so
	// subsequent cart reads start empty.
	sess.CartID = nil
	if err := store.Save(r.Context(), sess); err != nil {
		slog.Error("Failed to clear session cart after order", "error", err)
		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusCreated, created)
}
