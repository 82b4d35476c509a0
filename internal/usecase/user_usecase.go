package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// CreateUserInput defines the data required to create a user.
type CreateUserInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// UpdateUserInput is a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}

// UserUsecase defines user operations. Users may only change themselves.
type UserUsecase interface {
	List(ctx context.Context, spec *query.Spec) (*ListOutput[*entity.User], error)
	Show(ctx context.Context, id int64, spec *query.Spec) (*entity.User, error)
	Store(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	Update(ctx context.Context, callerID, id int64, input *UpdateUserInput) (*entity.User, error)
	Destroy(ctx context.Context, callerID, id int64) (*entity.User, error)
}
