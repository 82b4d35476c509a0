package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Product, int64, error)
	Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error

	// Delete soft-deletes the product.
	Delete(ctx context.Context, id int64) error

	// DecrementStock takes qty units if at least qty are on hand, atomically.
	// It reports false when the product is missing or short.
	DecrementStock(ctx context.Context, id int64, qty int) (bool, error)
}
