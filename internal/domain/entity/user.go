// Package entity contains the core business objects of the storefront.
package entity

import "time"

// User is a registered customer. PasswordHash never leaves the persistence boundary.
type User struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	PasswordHash  string
	RememberToken string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Addresses    []*Address
	Carts        []*Cart
	Transactions []*Transaction
	Ratings      []*Rating
}

// OwnedBy reports whether the record is the given user.
func (u *User) OwnedBy(userID int64) bool {
	return u != nil && u.ID == userID
}
