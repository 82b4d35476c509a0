package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ratingFixture struct {
	ratingRepo      *mockRepo.MockRatingRepository
	transactionRepo *mockRepo.MockTransactionRepository
	lineRepo        *mockRepo.MockProductTransactionRepository
}

func createTestRatingService(t *testing.T) (usecase.RatingUsecase, *mockRepo.MockRatingRepository) {
	srv, deps := createTestRatingServiceWithFixture(t)

	return srv, deps.ratingRepo
}

func createTestRatingServiceWithFixture(t *testing.T) (usecase.RatingUsecase, *ratingFixture) {
	deps := &ratingFixture{
		ratingRepo:      mockRepo.NewMockRatingRepository(t),
		transactionRepo: mockRepo.NewMockTransactionRepository(t),
		lineRepo:        mockRepo.NewMockProductTransactionRepository(t),
	}

	srv := NewRatingService(RatingServiceParams{
		RatingRepo:      deps.ratingRepo,
		TransactionRepo: deps.transactionRepo,
		LineRepo:        deps.lineRepo,
		Logger:          newDiscardLogger(),
	})

	return srv, deps
}

func TestRatingService_Store_UsesCaller(t *testing.T) {
	srv, deps := createTestRatingServiceWithFixture(t)
	ctx := context.Background()

	deps.transactionRepo.On("FindByID", ctx, int64(6)).Return(&entity.Transaction{ID: 6, UserID: 8}, nil)
	deps.lineRepo.On("FindByTransaction", ctx, int64(6)).Return([]*entity.ProductTransaction{
		{ID: 1, TransactionID: 6, ProductID: 5},
		{ID: 2, TransactionID: 6, ProductID: 2},
	}, nil)
	deps.ratingRepo.On("Create", ctx, mock.MatchedBy(func(r *entity.Rating) bool {
		return r.UserID == 8 && r.ProductID == 2 && r.TransactionID == 6 && r.Rating == 4 && r.IsRating
	})).Return(nil)

	rating, err := srv.Store(ctx, 8, &usecase.CreateRatingInput{ProductID: 2, TransactionID: 6, Rating: 4, IsRating: true})
	require.NoError(t, err)
	assert.Equal(t, int64(8), rating.UserID)
}

func TestRatingService_Store_RejectsForeignTransaction(t *testing.T) {
	srv, deps := createTestRatingServiceWithFixture(t)
	ctx := context.Background()

	deps.transactionRepo.On("FindByID", ctx, int64(6)).Return(&entity.Transaction{ID: 6, UserID: 9}, nil)

	_, err := srv.Store(ctx, 8, &usecase.CreateRatingInput{ProductID: 2, TransactionID: 6, Rating: 4})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	deps.lineRepo.AssertNotCalled(t, "FindByTransaction", mock.Anything, mock.Anything)
	deps.ratingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRatingService_Store_RejectsProductOutsideTransaction(t *testing.T) {
	srv, deps := createTestRatingServiceWithFixture(t)
	ctx := context.Background()

	deps.transactionRepo.On("FindByID", ctx, int64(6)).Return(&entity.Transaction{ID: 6, UserID: 8}, nil)
	deps.lineRepo.On("FindByTransaction", ctx, int64(6)).Return([]*entity.ProductTransaction{
		{ID: 1, TransactionID: 6, ProductID: 5},
	}, nil)

	_, err := srv.Store(ctx, 8, &usecase.CreateRatingInput{ProductID: 2, TransactionID: 6, Rating: 4})

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"product_id"}, verr.Fields())
	deps.ratingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRatingService_Store_TransactionNotFound(t *testing.T) {
	srv, deps := createTestRatingServiceWithFixture(t)
	ctx := context.Background()

	deps.transactionRepo.On("FindByID", ctx, int64(6)).Return(nil, domainerrors.ErrTransactionNotFound)

	_, err := srv.Store(ctx, 8, &usecase.CreateRatingInput{ProductID: 2, TransactionID: 6, Rating: 4})
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionNotFound))
}

func TestRatingService_Update_MarksRated(t *testing.T) {
	srv, ratingRepo := createTestRatingService(t)
	ctx := context.Background()

	ratingRepo.On("FindByID", ctx, int64(1)).Return(entity.NewRatingStub(8, 2, 6), nil)
	ratingRepo.On("Update", ctx, mock.MatchedBy(func(r *entity.Rating) bool {
		return r.Rating == 5 && r.IsRating
	})).Return(nil)

	rating, err := srv.Update(ctx, 8, 1, &usecase.UpdateRatingInput{Rating: intPtr(5)})
	require.NoError(t, err)
	assert.True(t, rating.IsRating)
}

func TestRatingService_Update_SameScoreOnStubStillWrites(t *testing.T) {
	srv, ratingRepo := createTestRatingService(t)
	ctx := context.Background()

	ratingRepo.On("FindByID", ctx, int64(1)).Return(entity.NewRatingStub(8, 2, 6), nil)
	ratingRepo.On("Update", ctx, mock.MatchedBy(func(r *entity.Rating) bool { return r.IsRating })).Return(nil)

	_, err := srv.Update(ctx, 8, 1, &usecase.UpdateRatingInput{Rating: intPtr(0)})
	require.NoError(t, err)
}

func TestRatingService_Update_NoChange(t *testing.T) {
	srv, ratingRepo := createTestRatingService(t)
	ctx := context.Background()

	ratingRepo.On("FindByID", ctx, int64(1)).Return(&entity.Rating{ID: 1, UserID: 8, Rating: 3, IsRating: true}, nil)

	_, err := srv.Update(ctx, 8, 1, &usecase.UpdateRatingInput{Rating: intPtr(3)})
	require.NoError(t, err)
	ratingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRatingService_OwnerOnly(t *testing.T) {
	srv, ratingRepo := createTestRatingService(t)
	ctx := context.Background()

	ratingRepo.On("FindByID", ctx, int64(1)).Return(&entity.Rating{ID: 1, UserID: 9}, nil)

	_, err := srv.Update(ctx, 8, 1, &usecase.UpdateRatingInput{Rating: intPtr(3)})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = srv.Destroy(ctx, 8, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
