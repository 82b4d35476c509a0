package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// CartRepository defines the interface for cart persistence.
type CartRepository interface {
	// List requires scope.OwnerID; carts are always owner-scoped.
	List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Cart, int64, error)
	Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Cart, error)
	FindByID(ctx context.Context, id int64) (*entity.Cart, error)
	Create(ctx context.Context, cart *entity.Cart) error
	Update(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, id int64) error

	// DeleteByUserAndProduct removes the user's cart rows for a product and
	// returns how many were removed.
	DeleteByUserAndProduct(ctx context.Context, userID, productID int64) (int64, error)

	// DeleteByProduct soft-deletes every cart row of a product.
	DeleteByProduct(ctx context.Context, productID int64) error

	// Subtotal sums product_qty * price over the user's carts.
	Subtotal(ctx context.Context, userID int64) (int64, error)
}
