package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// CreateProductTransactionInput adds a line to an inprogress transaction of the caller.
type CreateProductTransactionInput struct {
	TransactionID int64
	ProductID     int64
	ProductQty    int
}

// ProductTransactionUsecase defines line item operations. Stored line items
// are immutable, so Update and Destroy always fail for existing rows.
type ProductTransactionUsecase interface {
	List(ctx context.Context, spec *query.Spec) (*ListOutput[*entity.ProductTransaction], error)
	Show(ctx context.Context, id int64, spec *query.Spec) (*entity.ProductTransaction, error)
	Store(ctx context.Context, callerID int64, input *CreateProductTransactionInput) (*entity.ProductTransaction, error)
	Update(ctx context.Context, callerID, id int64) (*entity.ProductTransaction, error)
	Destroy(ctx context.Context, callerID, id int64) (*entity.ProductTransaction, error)
}
