package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// CreateAddressInput defines a new address of the caller.
type CreateAddressInput struct {
	Street     string
	City       string
	PostalCode string
}

// UpdateAddressInput is a partial update; nil fields are left unchanged.
type UpdateAddressInput struct {
	Street     *string
	City       *string
	PostalCode *string
}

// AddressUsecase defines address operations.
type AddressUsecase interface {
	List(ctx context.Context, spec *query.Spec) (*ListOutput[*entity.Address], error)
	Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Address, error)
	Store(ctx context.Context, callerID int64, input *CreateAddressInput) (*entity.Address, error)
	Update(ctx context.Context, callerID, id int64, input *UpdateAddressInput) (*entity.Address, error)
	Destroy(ctx context.Context, callerID, id int64) (*entity.Address, error)
}
