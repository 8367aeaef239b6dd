package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/wickedsales/storefront/internal/service/models/cartitem"
	"github.com/wickedsales/storefront/internal/service/models/product"
	"github.com/wickedsales/storefront/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

type catalogService interface {
	ListProducts(ctx context.Context) ([]product.Summary, error)
	GetProduct(ctx context.Context, productID int64) (*product.Product, error)
}

type cartService interface {
	GetCart(ctx context.Context, cartID int64) ([]cartitem.LineItem, error)
}

// Handler renders the storefront views. It is purely derivative of the API's
// data shapes: no business logic beyond computing the cart total.
type Handler struct {
	catalog catalogService
	cart    cartService
	tmpl    *template.Template
}

// MustNewHandler parses the embedded templates and creates the web handler.
func MustNewHandler(catalog catalogService, cart cartService) *Handler {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"money": FormatCents,
	}).ParseFS(templatesFS, "templates/*.html"))

	return &Handler{
		catalog: catalog,
		cart:    cart,
		tmpl:    tmpl,
	}
}

// FormatCents renders a minor-currency-unit amount as dollars with two
// decimals, e.g. 1349 -> "$13.49".
func FormatCents(cents int64) string {
	return "$" + decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// CartView is the data passed to the cart summary template.
type CartView struct {
	Items []cartitem.LineItem
	Total string
}

// CartTotal sums the line-item price snapshots.
func CartTotal(items []cartitem.LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price
	}
	return total
}

// RegisterRoutes registers the storefront views on the router.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.catalogView)
	router.Get("/products/{productId}", h.productView)
	router.Get("/cart", h.cartView)
	router.Get("/checkout", h.checkoutView)
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("Error rendering template", "template", name, "error", err)
	}
}

func (h *Handler) catalogView(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		http.Error(w, "an unexpected error occurred", http.StatusInternalServerError)
		slog.Error("Error listing products for catalog view", "error", err)

		return
	}

	h.render(w, "catalog.html", products)
}

func (h *Handler) productView(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil || productID <= 0 {
		http.NotFound(w, r)

		return
	}

	p, err := h.catalog.GetProduct(r.Context(), productID)
	if err != nil {
		http.NotFound(w, r)

		return
	}

	h.render(w, "product.html", p)
}

func (h *Handler) cartView(w http.ResponseWriter, r *http.Request) {
	items := h.sessionItems(w, r)
	if items == nil {
		return
	}

	h.render(w, "cart.html", CartView{
		Items: items,
		Total: FormatCents(CartTotal(items)),
	})
}

func (h *Handler) checkoutView(w http.ResponseWriter, r *http.Request) {
	items := h.sessionItems(w, r)
	if items == nil {
		return
	}

	h.render(w, "checkout.html", CartView{
		Items: items,
		Total: FormatCents(CartTotal(items)),
	})
}

// sessionItems loads the session's line items, writing the error response
// itself and returning nil when the view should not render.
func (h *Handler) sessionItems(w http.ResponseWriter, r *http.Request) []cartitem.LineItem {
	sess := session.FromContext(r.Context())
	if sess == nil || sess.CartID == nil {
		return []cartitem.LineItem{}
	}

	items, err := h.cart.GetCart(r.Context(), *sess.CartID)
	if err != nil {
		http.Error(w, "an unexpected error occurred", http.StatusInternalServerError)
		slog.Error("Error loading cart for view", "error", err)

		return nil
	}

	return items
}
