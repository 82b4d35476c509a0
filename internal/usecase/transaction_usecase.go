package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// CheckoutLine is one product taken from the caller's cart.
type CheckoutLine struct {
	ProductID int64
	Qty       int
}

// CheckoutInput defines a checkout. Nil aggregates are computed from the lines.
type CheckoutInput struct {
	AddressID        int64
	ShippingCost     int
	Lines            []CheckoutLine
	QtyTransaction   *int
	SubtotalProducts *int
	TotalPrice       *int
}

// TransactionUsecase drives the checkout state machine.
type TransactionUsecase interface {
	List(ctx context.Context, spec *query.Spec) (*ListOutput[*entity.Transaction], error)
	Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Transaction, error)
	// Checkout takes stock, writes the header and line items and clears the
	// matching cart rows, all or nothing.
	Checkout(ctx context.Context, callerID int64, input *CheckoutInput) (*entity.Transaction, error)
	// Complete moves an inprogress transaction to complete and creates one
	// unrated rating per line item.
	Complete(ctx context.Context, callerID, id int64) (*entity.Transaction, error)
	Destroy(ctx context.Context, callerID, id int64) (*entity.Transaction, error)
	// InvoiceQR renders the invoice of the caller's transaction as a PNG.
	InvoiceQR(ctx context.Context, callerID, id int64) ([]byte, error)
}
