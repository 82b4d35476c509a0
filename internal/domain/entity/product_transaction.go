package entity

import "time"

// ProductTransaction is an immutable line item of a transaction.
type ProductTransaction struct {
	ID            int64
	TransactionID int64
	ProductID     int64
	ProductQty    int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Transaction *Transaction
	Product     *Product
}
