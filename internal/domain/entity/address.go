package entity

import "time"

// Address is a shipping destination owned by a user.
type Address struct {
	ID         int64
	UserID     int64
	Street     string
	City       string
	PostalCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *User
}

// OwnedBy reports whether the address belongs to the given user.
func (a *Address) OwnedBy(userID int64) bool {
	return a != nil && a.UserID == userID
}
