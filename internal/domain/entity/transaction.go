package entity

import (
	"fmt"
	"time"

	"storefront/internal/domain/constants"
)

// Transaction is a checkout header. Status moves from inprogress to complete only.
type Transaction struct {
	ID               int64
	UserID           int64
	AddressID        int64
	QtyTransaction   int
	SubtotalProducts int
	TotalPrice       int
	ShippingCost     int
	Status           string
	InvoiceNumber    string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	User                *User
	Address             *Address
	ProductTransactions []*ProductTransaction
}

// OwnedBy reports whether the transaction belongs to the given user.
func (t *Transaction) OwnedBy(userID int64) bool {
	return t != nil && t.UserID == userID
}

// IsComplete reports whether the transaction reached its terminal state.
func (t *Transaction) IsComplete() bool {
	return t.Status == constants.TransactionStatusComplete
}

// NewInvoiceNumber formats an invoice number as INV + minutes, seconds and
// six-digit microseconds of now.
func NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV%02d%02d%06d", now.Minute(), now.Second(), now.Nanosecond()/int(time.Microsecond))
}
