package entity

import "time"

// Rating scores a purchased product. Stubs start at zero with IsRating false.
type Rating struct {
	ID            int64
	UserID        int64
	ProductID     int64
	TransactionID int64
	Rating        int
	IsRating      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User        *User
	Product     *Product
	Transaction *Transaction
}

// OwnedBy reports whether the rating belongs to the given user.
func (r *Rating) OwnedBy(userID int64) bool {
	return r != nil && r.UserID == userID
}

// NewRatingStub builds the unrated placeholder created when a transaction completes.
func NewRatingStub(userID, productID, transactionID int64) *Rating {
	return &Rating{
		UserID:        userID,
		ProductID:     productID,
		TransactionID: transactionID,
	}
}
