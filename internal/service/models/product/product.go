package product

import "time"

// Product represents a catalog product. Prices are integer minor currency
// units (cents) and are immutable after creation.
type Product struct {
	ID               int64     `json:"productId"`
	Name             string    `json:"name"`
	Price            int64     `json:"price"`
	Image            string    `json:"image"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Summary is the catalog listing shape of a product.
type Summary struct {
	ID               int64  `json:"productId"`
	Name             string `json:"name"`
	Price            int64  `json:"price"`
	Image            string `json:"image"`
	ShortDescription string `json:"shortDescription"`
}

// Summary returns the listing shape of the product.
func (p *Product) Summary() Summary {
	return Summary{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		Image:            p.Image,
		ShortDescription: p.ShortDescription,
	}
}
