package entity

import "time"

// Cart is one product a user intends to buy.
type Cart struct {
	ID         int64
	UserID     int64
	ProductID  int64
	ProductQty int
	IsChecked  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User    *User
	Product *Product
}

// OwnedBy reports whether the cart row belongs to the given user.
func (c *Cart) OwnedBy(userID int64) bool {
	return c != nil && c.UserID == userID
}

// CartSummary is the priced total of a user's carts.
type CartSummary struct {
	SubtotalProducts int64
	ShippingCost     int64
	TotalPrice       int64
}
