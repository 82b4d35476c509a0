package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// RatingRepository defines the interface for rating persistence.
type RatingRepository interface {
	List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Rating, int64, error)
	Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Rating, error)
	FindByID(ctx context.Context, id int64) (*entity.Rating, error)
	Create(ctx context.Context, rating *entity.Rating) error
	CreateBatch(ctx context.Context, ratings []*entity.Rating) error
	Update(ctx context.Context, rating *entity.Rating) error
	Delete(ctx context.Context, id int64) error

	// DeleteByProduct soft-deletes every rating of a product.
	DeleteByProduct(ctx context.Context, productID int64) error
}
