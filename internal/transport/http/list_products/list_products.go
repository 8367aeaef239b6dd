package listproducts

import (
	"context"
	"net/http"

	"github.com/wickedsales/storefront/internal/service/models/product"
	"github.com/wickedsales/storefront/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	ListProducts(ctx context.Context) ([]product.Summary, error)
}

// ListProducts handles the catalog listing request.
func ListProducts(w http.ResponseWriter, r *http.Request, service service) {
	products, err := service.ListProducts(r.Context())
	if err != nil {
		respond.Error(w, err)

		return
	}

	if products == nil {
		products = []product.Summary{}
	}

	respond.JSON(w, http.StatusOK, products)
}
