package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// TransactionRepository defines the interface for checkout header persistence.
type TransactionRepository interface {
	List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Transaction, int64, error)
	Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Transaction, error)
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Transaction, error)

	Create(ctx context.Context, transaction *entity.Transaction) error

	// MarkComplete moves an inprogress transaction to complete and reports
	// whether this call made the change.
	MarkComplete(ctx context.Context, id int64) (bool, error)

	// Delete removes the header; line items are removed by cascade.
	Delete(ctx context.Context, id int64) error
}
