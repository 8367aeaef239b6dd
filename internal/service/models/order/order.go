package order

import "time"

// Order is an immutable record created by converting a cart plus
// customer/payment/shipping details into a finalized purchase.
type Order struct {
	ID              int64     `json:"orderId"`
	CartID          int64     `json:"cartId"`
	Name            string    `json:"name"`
	CreditCard      string    `json:"creditCard"`
	ShippingAddress string    `json:"shippingAddress"`
	CreatedAt       time.Time `json:"createdAt"`
}
