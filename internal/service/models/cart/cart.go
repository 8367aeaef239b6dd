package cart

import "time"

// Cart is a server-side collection of selected products, anchored to a
// session. Carts are created lazily on the first item add.
type Cart struct {
	ID        int64     `json:"cartId"`
	CreatedAt time.Time `json:"createdAt"`
}
