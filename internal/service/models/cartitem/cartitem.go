package cartitem

import "time"

// CartItem is one product entry within a cart. Price is a snapshot of the
// product price at add time and does not track later product price changes.
// Quantity is implicitly one per row; repeated adds create repeated rows.
type CartItem struct {
	ID        int64     `json:"cartItemId"`
	CartID    int64     `json:"cartId"`
	ProductID int64     `json:"productId"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// LineItem is a cart item joined with its product's display fields. This is
// the shape the cart endpoints return.
type LineItem struct {
	CartItemID       int64  `json:"cartItemId"`
	Price            int64  `json:"price"`
	ProductID        int64  `json:"productId"`
	Image            string `json:"image"`
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`
}
