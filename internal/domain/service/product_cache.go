package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductCache is a read-through cache for single products.
// A miss returns (nil, false, nil).
type ProductCache interface {
	Get(ctx context.Context, id int64) (*entity.Product, bool, error)
	Set(ctx context.Context, product *entity.Product) error
	Invalidate(ctx context.Context, id int64) error
}
