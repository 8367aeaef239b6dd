package getproduct

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wickedsales/storefront/internal/errs"
	"github.com/wickedsales/storefront/internal/service/models/product"
	"github.com/wickedsales/storefront/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	GetProduct(ctx context.Context, productID int64) (*product.Product, error)
}

// GetProduct handles the product detail request.
func GetProduct(w http.ResponseWriter, r *http.Request, service service) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil || productID <= 0 {
		respond.Error(w, errs.NewClientError(
			http.StatusBadRequest,
			"productId must be a positive integer",
		))

		return
	}

	p, err := service.GetProduct(r.Context(), productID)
	if err != nil {
		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, p)
}
