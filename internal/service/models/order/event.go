package order

import "time"

// PlacedEvent is the payload published to the order-placed queue after a
// checkout. The card number is deliberately not part of the event.
type PlacedEvent struct {
	OrderID   int64     `json:"orderId"`
	CartID    int64     `json:"cartId"`
	CreatedAt time.Time `json:"createdAt"`
}
