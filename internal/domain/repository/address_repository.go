package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// AddressRepository defines the interface for address persistence.
type AddressRepository interface {
	List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Address, int64, error)
	Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Address, error)
	FindByID(ctx context.Context, id int64) (*entity.Address, error)
	Create(ctx context.Context, address *entity.Address) error
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id int64) error
}
