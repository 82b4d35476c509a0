package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// CreateRatingInput defines a rating by the caller.
type CreateRatingInput struct {
	ProductID     int64
	TransactionID int64
	Rating        int
	IsRating      bool
}

// UpdateRatingInput changes the score. Updating always marks the rating as rated.
type UpdateRatingInput struct {
	Rating *int
}

// RatingUsecase defines rating operations.
type RatingUsecase interface {
	List(ctx context.Context, spec *query.Spec) (*ListOutput[*entity.Rating], error)
	Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Rating, error)
	Store(ctx context.Context, callerID int64, input *CreateRatingInput) (*entity.Rating, error)
	Update(ctx context.Context, callerID, id int64, input *UpdateRatingInput) (*entity.Rating, error)
	Destroy(ctx context.Context, callerID, id int64) (*entity.Rating, error)
}
