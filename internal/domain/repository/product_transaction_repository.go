package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// ProductTransactionRepository defines the interface for line item persistence.
// Line items are never updated.
type ProductTransactionRepository interface {
	List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.ProductTransaction, int64, error)
	Get(ctx context.Context, id int64, spec *query.Spec) (*entity.ProductTransaction, error)
	FindByID(ctx context.Context, id int64) (*entity.ProductTransaction, error)
	FindByTransaction(ctx context.Context, transactionID int64) ([]*entity.ProductTransaction, error)
	CreateBatch(ctx context.Context, items []*entity.ProductTransaction) error
}
