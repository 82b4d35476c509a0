package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// CreateProductInput defines a new catalog item.
type CreateProductInput struct {
	Label    string
	Qty      int
	Price    int
	Size     int
	Detail   string
	Category string
	Image    string
}

// UpdateProductInput is a partial update; nil fields are left unchanged.
type UpdateProductInput struct {
	Label    *string
	Qty      *int
	Price    *int
	Size     *int
	Detail   *string
	Category *string
	Image    *string
}

// ProductUsecase defines catalog operations.
type ProductUsecase interface {
	List(ctx context.Context, spec *query.Spec) (*ListOutput[*entity.Product], error)
	Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Product, error)
	Store(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, id int64, input *UpdateProductInput) (*entity.Product, error)
	// Destroy soft-deletes the product together with its carts and ratings.
	Destroy(ctx context.Context, id int64) (*entity.Product, error)
}
