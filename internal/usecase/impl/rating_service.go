package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ratingService struct {
	ratingRepo      repository.RatingRepository
	transactionRepo repository.TransactionRepository
	lineRepo        repository.ProductTransactionRepository
	logger          *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	RatingRepo      repository.RatingRepository
	TransactionRepo repository.TransactionRepository
	LineRepo        repository.ProductTransactionRepository
	Logger          *slog.Logger
}

// NewRatingService creates a new rating service
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		ratingRepo:      params.RatingRepo,
		transactionRepo: params.TransactionRepo,
		lineRepo:        params.LineRepo,
		logger:          params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *ratingService) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.Rating], error) {
	ratings, total, err := srv.ratingRepo.List(ctx, spec, query.Scope{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return usecase.NewListOutput(ratings, total, spec), nil
}

func (srv *ratingService) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Rating, error) {
	rating, err := srv.ratingRepo.Get(ctx, id, spec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get rating")
	}

	return rating, nil
}

// Store rates a product bought in one of the caller's transactions.
func (srv *ratingService) Store(ctx context.Context, callerID int64, input *usecase.CreateRatingInput) (*entity.Rating, error) {
	if err := srv.ensurePurchased(ctx, callerID, input.TransactionID, input.ProductID); err != nil {
		return nil, err
	}

	rating := &entity.Rating{
		UserID:        callerID,
		ProductID:     input.ProductID,
		TransactionID: input.TransactionID,
		Rating:        input.Rating,
		IsRating:      input.IsRating,
	}

	if err := srv.ratingRepo.Create(ctx, rating); err != nil {
		return nil, errors.Wrap(err, "failed to create rating")
	}

	srv.log(ctx).Info("Rating created", slog.Int64("ratingID", rating.ID), slog.Int64("productID", rating.ProductID))

	return rating, nil
}

// Update sets the score and always marks the rating as rated.
func (srv *ratingService) Update(ctx context.Context, callerID, id int64, input *usecase.UpdateRatingInput) (*entity.Rating, error) {
	rating, err := srv.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	rated := true
	if !dirty(apply(&rating.Rating, input.Rating), apply(&rating.IsRating, &rated)) {
		return rating, nil
	}

	if err := srv.ratingRepo.Update(ctx, rating); err != nil {
		return nil, errors.Wrap(err, "failed to update rating")
	}

	return rating, nil
}

func (srv *ratingService) Destroy(ctx context.Context, callerID, id int64) (*entity.Rating, error) {
	rating, err := srv.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if err := srv.ratingRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete rating")
	}

	return rating, nil
}

func (srv *ratingService) ensurePurchased(ctx context.Context, callerID, transactionID, productID int64) error {
	transaction, err := srv.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return errors.Wrap(err, "failed to find transaction")
	}
	if err := ensureOwner(transaction, callerID); err != nil {
		return errors.Wrap(err, "transaction belongs to another user")
	}

	lines, err := srv.lineRepo.FindByTransaction(ctx, transactionID)
	if err != nil {
		return errors.Wrap(err, "failed to load transaction lines")
	}
	for _, line := range lines {
		if line.ProductID == productID {
			return nil
		}
	}

	return domainerrors.NewValidationError().
		Add("product_id", "The selected product id is not part of the transaction.")
}

func (srv *ratingService) findOwned(ctx context.Context, callerID, id int64) (*entity.Rating, error) {
	rating, err := srv.ratingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find rating")
	}
	if err := ensureOwner(rating, callerID); err != nil {
		return nil, errors.Wrap(err, "rating belongs to another user")
	}

	return rating, nil
}
