package healthcheck

import (
	"context"
	"net/http"

	"github.com/wickedsales/storefront/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	HealthCheck(ctx context.Context) error
}

type healthCheckResponse struct {
	Message string `json:"message"`
}

// HealthCheck probes the backing store and reports connectivity.
func HealthCheck(w http.ResponseWriter, r *http.Request, service service) {
	if err := service.HealthCheck(r.Context()); err != nil {
		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, healthCheckResponse{Message: "successfully connected"})
}
