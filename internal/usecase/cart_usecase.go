package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// CreateCartInput adds a product to the caller's cart.
type CreateCartInput struct {
	ProductID  int64
	ProductQty int
	IsChecked  bool
}

// UpdateCartInput is a partial update; nil fields are left unchanged.
type UpdateCartInput struct {
	ProductID  *int64
	ProductQty *int
	IsChecked  *bool
}

// CartUsecase defines cart operations. Every cart is private to its owner.
type CartUsecase interface {
	List(ctx context.Context, callerID int64, spec *query.Spec) (*ListOutput[*entity.Cart], error)
	Show(ctx context.Context, callerID, id int64, spec *query.Spec) (*entity.Cart, error)
	Store(ctx context.Context, callerID int64, input *CreateCartInput) (*entity.Cart, error)
	Update(ctx context.Context, callerID, id int64, input *UpdateCartInput) (*entity.Cart, error)
	Destroy(ctx context.Context, callerID, id int64) (*entity.Cart, error)
	// Details prices the caller's carts with the given shipping cost.
	Details(ctx context.Context, callerID int64, shippingCost int64) (*entity.CartSummary, error)
}
