package entity

import "time"

// Product is a catalog item. Qty is the quantity on hand and never goes negative.
type Product struct {
	ID        int64
	Label     string
	Qty       int
	Price     int
	Size      int
	Detail    string
	Category  string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time

	Carts               []*Cart
	Ratings             []*Rating
	ProductTransactions []*ProductTransaction
}

// HasStock reports whether qty units can be taken from the product.
func (p *Product) HasStock(qty int) bool {
	return qty >= 0 && qty <= p.Qty
}
