package httptransport

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	"github.com/wickedsales/storefront/internal/errs"
	"github.com/wickedsales/storefront/internal/service/models/cartitem"
	"github.com/wickedsales/storefront/internal/service/models/order"
	"github.com/wickedsales/storefront/internal/service/models/product"
	"github.com/wickedsales/storefront/internal/session"
	addtocart "github.com/wickedsales/storefront/internal/transport/http/add_to_cart"
	createorder "github.com/wickedsales/storefront/internal/transport/http/create_order"
	getcart "github.com/wickedsales/storefront/internal/transport/http/get_cart"
	getproduct "github.com/wickedsales/storefront/internal/transport/http/get_product"
	healthcheck "github.com/wickedsales/storefront/internal/transport/http/health_check"
	listproducts "github.com/wickedsales/storefront/internal/transport/http/list_products"
	"github.com/wickedsales/storefront/internal/transport/http/respond"
	"github.com/wickedsales/storefront/internal/web"
	"github.com/wickedsales/storefront/pkg/http/middleware/trace"
	"github.com/wickedsales/storefront/pkg/logger"
)

type catalogService interface {
	HealthCheck(ctx context.Context) error
	ListProducts(ctx context.Context) ([]product.Summary, error)
	GetProduct(ctx context.Context, productID int64) (*product.Product, error)
}

type cartService interface {
	GetCart(ctx context.Context, cartID int64) ([]cartitem.LineItem, error)
	AddToCart(ctx context.Context, cartID *int64, productID int64) (*cartitem.LineItem, int64, error)
}

type orderService interface {
	CreateOrder(ctx context.Context, o order.Order) (*order.Order, error)
}

type HTTPTransport struct {
	server       *http.Server
	router       *chi.Mux
	catalog      catalogService
	cart         cartService
	order        orderService
	sessionStore session.Store
	web          *web.Handler
}

func NewHTTPTransport(
	catalog catalogService,
	cart cartService,
	order orderService,
	sessionStore session.Store,
) *HTTPTransport {
	router := newRouter(sessionStore)
	server := newServer(router)
	return &HTTPTransport{
		server:       server,
		router:       router,
		catalog:      catalog,
		cart:         cart,
		order:        order,
		sessionStore: sessionStore,
		web:          web.MustNewHandler(catalog, cart),
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Get("/health-check", h.healthCheck)
		r.Get("/products", h.listProducts)
		r.Get("/products/{productId}", h.getProduct)
		r.Get("/cart", h.getCart)
		r.Post("/cart", h.addToCart)
		r.Post("/orders", h.createOrder)

		r.NotFound(apiNotFound)
		r.MethodNotAllowed(apiNotFound)
	})

	h.web.RegisterRoutes(h.router)
}

func (h *HTTPTransport) healthCheck(w http.ResponseWriter, r *http.Request) {
	healthcheck.HealthCheck(w, r, h.catalog)
}

func (h *HTTPTransport) listProducts(w http.ResponseWriter, r *http.Request) {
	listproducts.ListProducts(w, r, h.catalog)
}

func (h *HTTPTransport) getProduct(w http.ResponseWriter, r *http.Request) {
	getproduct.GetProduct(w, r, h.catalog)
}

func (h *HTTPTransport) getCart(w http.ResponseWriter, r *http.Request) {
	getcart.GetCart(w, r, h.cart)
}

func (h *HTTPTransport) addToCart(w http.ResponseWriter, r *http.Request) {
	addtocart.AddToCart(w, r, h.cart, h.sessionStore)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.order, h.sessionStore)
}

// apiNotFound handles every unknown /api route.
func apiNotFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, errs.NewClientError(
		http.StatusNotFound,
		fmt.Sprintf("cannot %s %s", r.Method, r.URL.Path),
	))
}

func newRouter(sessionStore session.Store) *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)
	router.Use(session.NewMiddleware(sessionStore))

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
