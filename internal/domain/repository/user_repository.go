// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// List returns one page of users matching spec and the total match count.
	List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.User, int64, error)

	// Get loads a user shaped by spec (fields and includes).
	Get(ctx context.Context, id int64, spec *query.Spec) (*entity.User, error)

	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail is used by login and includes the password hash.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
}
