package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transactionServiceFixtures struct {
	service   *transactionService
	repos     *mockRepo.RepositoryFactory
	txManager *mockRepo.TransactionManager
	publisher *mockService.MockEventPublisher
	qrCode    *mockService.MockQRCodeService
	cache     *mockService.MockProductCache
}

func createTestTransactionService(t *testing.T) transactionServiceFixtures {
	repos := mockRepo.NewRepositoryFactory(t)
	txManager := &mockRepo.TransactionManager{Factory: repos}
	publisher := mockService.NewMockEventPublisher(t)
	qrCode := mockService.NewMockQRCodeService(t)
	cache := mockService.NewMockProductCache(t)

	srv := NewTransactionService(TransactionServiceParams{
		TxManager:       txManager,
		TransactionRepo: repos.Transactions,
		Publisher:       publisher,
		QRCodeService:   qrCode,
		Cache:           cache,
		Logger:          newDiscardLogger(),
	}).(*transactionService)
	srv.now = func() time.Time {
		return time.Date(2024, 5, 1, 10, 7, 9, 123456000, time.UTC)
	}

	return transactionServiceFixtures{
		service:   srv,
		repos:     repos,
		txManager: txManager,
		publisher: publisher,
		qrCode:    qrCode,
		cache:     cache,
	}
}

func TestTransactionService_Checkout_Success(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()
	callerID := int64(7)

	fx.repos.Addresses.On("FindByID", ctx, int64(3)).
		Return(&entity.Address{ID: 3, UserID: callerID}, nil)

	fx.repos.Products.On("FindByID", ctx, int64(10)).Return(&entity.Product{ID: 10, Qty: 5, Price: 200}, nil)
	fx.repos.Products.On("DecrementStock", ctx, int64(10), 2).Return(true, nil)
	fx.repos.Products.On("FindByID", ctx, int64(11)).Return(&entity.Product{ID: 11, Qty: 1, Price: 50}, nil)
	fx.repos.Products.On("DecrementStock", ctx, int64(11), 1).Return(true, nil)

	fx.repos.Transactions.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Transaction).ID = 99
		}).
		Return(nil)

	fx.repos.ProductTransactions.On("CreateBatch", ctx, mock.MatchedBy(func(items []*entity.ProductTransaction) bool {
		return len(items) == 2 && items[0].TransactionID == 99 && items[0].ProductQty == 2 && items[1].ProductID == 11
	})).Return(nil)

	fx.repos.Carts.On("DeleteByUserAndProduct", ctx, callerID, int64(10)).Return(int64(1), nil)
	fx.repos.Carts.On("DeleteByUserAndProduct", ctx, callerID, int64(11)).Return(int64(1), nil)

	fx.cache.On("Invalidate", ctx, int64(10)).Return(nil)
	fx.cache.On("Invalidate", ctx, int64(11)).Return(nil)

	fx.publisher.On("PublishTransactionEvent", ctx, mock.MatchedBy(func(e *service.TransactionEvent) bool {
		return e.Type == constants.EventTransactionCreated && e.TransactionID == 99 &&
			assert.ObjectsAreEqual([]int64{10, 11}, e.ProductIDs)
	})).Return(nil)

	transaction, err := fx.service.Checkout(ctx, callerID, &usecase.CheckoutInput{
		AddressID:    3,
		ShippingCost: 15,
		Lines: []usecase.CheckoutLine{
			{ProductID: 10, Qty: 1},
			{ProductID: 11, Qty: 1},
			{ProductID: 10, Qty: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(99), transaction.ID)
	assert.Equal(t, constants.TransactionStatusInProgress, transaction.Status)
	assert.Equal(t, "INV0709123456", transaction.InvoiceNumber)
	assert.Equal(t, 3, transaction.QtyTransaction)
	assert.Equal(t, 450, transaction.SubtotalProducts)
	assert.Equal(t, 465, transaction.TotalPrice)
	assert.Len(t, transaction.ProductTransactions, 2)
	assert.Equal(t, 1, fx.txManager.Calls)
}

func TestTransactionService_Checkout_KeepsClientAggregates(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.repos.Addresses.On("FindByID", ctx, int64(3)).Return(&entity.Address{ID: 3, UserID: 1}, nil)
	fx.repos.Products.On("FindByID", ctx, int64(10)).Return(&entity.Product{ID: 10, Qty: 5, Price: 200}, nil)
	fx.repos.Products.On("DecrementStock", ctx, int64(10), 1).Return(true, nil)
	fx.repos.Transactions.On("Create", ctx, mock.MatchedBy(func(tr *entity.Transaction) bool {
		return tr.QtyTransaction == 4 && tr.SubtotalProducts == 100 && tr.TotalPrice == 120
	})).Return(nil)
	fx.repos.ProductTransactions.On("CreateBatch", ctx, mock.Anything).Return(nil)
	fx.repos.Carts.On("DeleteByUserAndProduct", ctx, int64(1), int64(10)).Return(int64(1), nil)
	fx.cache.On("Invalidate", ctx, int64(10)).Return(nil)
	fx.publisher.On("PublishTransactionEvent", ctx, mock.Anything).Return(nil)

	_, err := fx.service.Checkout(ctx, 1, &usecase.CheckoutInput{
		AddressID:        3,
		Lines:            []usecase.CheckoutLine{{ProductID: 10, Qty: 1}},
		QtyTransaction:   intPtr(4),
		SubtotalProducts: intPtr(100),
		TotalPrice:       intPtr(120),
	})
	require.NoError(t, err)
}

func TestTransactionService_Checkout_OutOfStock(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.repos.Addresses.On("FindByID", ctx, int64(3)).Return(&entity.Address{ID: 3, UserID: 1}, nil)
	fx.repos.Products.On("FindByID", ctx, int64(10)).Return(&entity.Product{ID: 10, Qty: 1, Price: 200}, nil)
	fx.repos.Products.On("DecrementStock", ctx, int64(10), 2).Return(false, nil)

	_, err := fx.service.Checkout(ctx, 1, &usecase.CheckoutInput{
		AddressID: 3,
		Lines:     []usecase.CheckoutLine{{ProductID: 10, Qty: 2}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOutOfStock))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "10, Out of stock", appErr.Message())

	fx.repos.Transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishTransactionEvent", mock.Anything, mock.Anything)
}

func TestTransactionService_Checkout_MissingProduct(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.repos.Addresses.On("FindByID", ctx, int64(3)).Return(&entity.Address{ID: 3, UserID: 1}, nil)
	fx.repos.Products.On("DecrementStock", ctx, int64(10), 1).Return(false, nil)
	fx.repos.Products.On("FindByID", ctx, int64(10)).Return(nil, domainerrors.ErrProductNotFound)

	_, err := fx.service.Checkout(ctx, 1, &usecase.CheckoutInput{
		AddressID: 3,
		Lines:     []usecase.CheckoutLine{{ProductID: 10, Qty: 1}},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestTransactionService_Checkout_TakesStockBeforePriceLookup(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.repos.Addresses.On("FindByID", ctx, int64(3)).Return(&entity.Address{ID: 3, UserID: 1}, nil)
	mock.InOrder(
		fx.repos.Products.On("DecrementStock", ctx, int64(10), 1).Return(true, nil).Once(),
		fx.repos.Products.On("FindByID", ctx, int64(10)).Return(&entity.Product{ID: 10, Qty: 4, Price: 30}, nil).Once(),
	)
	fx.repos.Transactions.On("Create", ctx, mock.Anything).Return(nil)
	fx.repos.ProductTransactions.On("CreateBatch", ctx, mock.Anything).Return(nil)
	fx.repos.Carts.On("DeleteByUserAndProduct", ctx, int64(1), int64(10)).Return(int64(1), nil)
	fx.cache.On("Invalidate", mock.Anything, int64(10)).Return(nil).Maybe()
	fx.publisher.On("PublishTransactionEvent", mock.Anything, mock.Anything).Return(nil).Maybe()

	transaction, err := fx.service.Checkout(ctx, 1, &usecase.CheckoutInput{
		AddressID: 3,
		Lines:     []usecase.CheckoutLine{{ProductID: 10, Qty: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 30, transaction.SubtotalProducts)
}

func TestTransactionService_Checkout_CartItemMissing(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.repos.Addresses.On("FindByID", ctx, int64(3)).Return(&entity.Address{ID: 3, UserID: 1}, nil)
	fx.repos.Products.On("FindByID", ctx, int64(10)).Return(&entity.Product{ID: 10, Qty: 5, Price: 1}, nil)
	fx.repos.Products.On("DecrementStock", ctx, int64(10), 1).Return(true, nil)
	fx.repos.Transactions.On("Create", ctx, mock.Anything).Return(nil)
	fx.repos.ProductTransactions.On("CreateBatch", ctx, mock.Anything).Return(nil)
	fx.repos.Carts.On("DeleteByUserAndProduct", ctx, int64(1), int64(10)).Return(int64(0), nil)

	_, err := fx.service.Checkout(ctx, 1, &usecase.CheckoutInput{
		AddressID: 3,
		Lines:     []usecase.CheckoutLine{{ProductID: 10, Qty: 1}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemMissing))
	fx.publisher.AssertNotCalled(t, "PublishTransactionEvent", mock.Anything, mock.Anything)
}

func TestTransactionService_Checkout_ForeignAddress(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.repos.Addresses.On("FindByID", ctx, int64(3)).Return(&entity.Address{ID: 3, UserID: 2}, nil)

	_, err := fx.service.Checkout(ctx, 1, &usecase.CheckoutInput{
		AddressID: 3,
		Lines:     []usecase.CheckoutLine{{ProductID: 10, Qty: 1}},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestTransactionService_Checkout_NoLines(t *testing.T) {
	fx := createTestTransactionService(t)

	_, err := fx.service.Checkout(context.Background(), 1, &usecase.CheckoutInput{AddressID: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Zero(t, fx.txManager.Calls)
}

func TestTransactionService_Checkout_PublishFailureKeepsResult(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.repos.Addresses.On("FindByID", ctx, int64(3)).Return(&entity.Address{ID: 3, UserID: 1}, nil)
	fx.repos.Products.On("FindByID", ctx, int64(10)).Return(&entity.Product{ID: 10, Qty: 5, Price: 1}, nil)
	fx.repos.Products.On("DecrementStock", ctx, int64(10), 1).Return(true, nil)
	fx.repos.Transactions.On("Create", ctx, mock.Anything).Return(nil)
	fx.repos.ProductTransactions.On("CreateBatch", ctx, mock.Anything).Return(nil)
	fx.repos.Carts.On("DeleteByUserAndProduct", ctx, int64(1), int64(10)).Return(int64(1), nil)
	fx.cache.On("Invalidate", ctx, int64(10)).Return(nil)
	fx.publisher.On("PublishTransactionEvent", ctx, mock.Anything).Return(errors.New("broker down"))

	transaction, err := fx.service.Checkout(ctx, 1, &usecase.CheckoutInput{
		AddressID: 3,
		Lines:     []usecase.CheckoutLine{{ProductID: 10, Qty: 1}},
	})
	require.NoError(t, err)
	assert.NotNil(t, transaction)
}

func TestTransactionService_Complete_Success(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.repos.Transactions.On("FindByIDForUpdate", ctx, int64(5)).Return(&entity.Transaction{
		ID:     5,
		UserID: 1,
		Status: constants.TransactionStatusInProgress,
	}, nil)
	fx.repos.Transactions.On("MarkComplete", ctx, int64(5)).Return(true, nil)
	fx.repos.ProductTransactions.On("FindByTransaction", ctx, int64(5)).Return([]*entity.ProductTransaction{
		{ID: 1, TransactionID: 5, ProductID: 10, ProductQty: 2},
		{ID: 2, TransactionID: 5, ProductID: 11, ProductQty: 1},
	}, nil)
	fx.repos.Ratings.On("CreateBatch", ctx, mock.MatchedBy(func(stubs []*entity.Rating) bool {
		if len(stubs) != 2 {
			return false
		}
		for _, stub := range stubs {
			if stub.UserID != 1 || stub.TransactionID != 5 || stub.Rating != 0 || stub.IsRating {
				return false
			}
		}

		return stubs[0].ProductID == 10 && stubs[1].ProductID == 11
	})).Return(nil)
	fx.publisher.On("PublishTransactionEvent", ctx, mock.MatchedBy(func(e *service.TransactionEvent) bool {
		return e.Type == constants.EventTransactionCompleted && e.Status == constants.TransactionStatusComplete
	})).Return(nil)

	transaction, err := fx.service.Complete(ctx, 1, 5)
	require.NoError(t, err)
	assert.True(t, transaction.IsComplete())
}

func TestTransactionService_Complete_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx transactionServiceFixtures)
		wantErr error
	}{
		{
			name: "not found",
			setup: func(fx transactionServiceFixtures) {
				fx.repos.Transactions.On("FindByIDForUpdate", mock.Anything, int64(5)).
					Return(nil, domainerrors.ErrTransactionNotFound)
			},
			wantErr: domainerrors.ErrTransactionNotFound,
		},
		{
			name: "already complete",
			setup: func(fx transactionServiceFixtures) {
				fx.repos.Transactions.On("FindByIDForUpdate", mock.Anything, int64(5)).
					Return(&entity.Transaction{ID: 5, UserID: 1, Status: constants.TransactionStatusComplete}, nil)
			},
			wantErr: domainerrors.ErrTransactionAlreadyComplete,
		},
		{
			name: "lost the status swap",
			setup: func(fx transactionServiceFixtures) {
				fx.repos.Transactions.On("FindByIDForUpdate", mock.Anything, int64(5)).
					Return(&entity.Transaction{ID: 5, UserID: 1, Status: constants.TransactionStatusInProgress}, nil)
				fx.repos.Transactions.On("MarkComplete", mock.Anything, int64(5)).Return(false, nil)
			},
			wantErr: domainerrors.ErrTransactionAlreadyComplete,
		},
		{
			name: "another user's transaction",
			setup: func(fx transactionServiceFixtures) {
				fx.repos.Transactions.On("FindByIDForUpdate", mock.Anything, int64(5)).
					Return(&entity.Transaction{ID: 5, UserID: 2, Status: constants.TransactionStatusInProgress}, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTransactionService(t)
			tt.setup(fx)

			_, err := fx.service.Complete(context.Background(), 1, 5)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			fx.repos.Ratings.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
			fx.publisher.AssertNotCalled(t, "PublishTransactionEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestTransactionService_InvoiceQR(t *testing.T) {
	fx := createTestTransactionService(t)
	ctx := context.Background()

	fx.repos.Transactions.On("FindByID", ctx, int64(5)).Return(&entity.Transaction{
		ID:            5,
		UserID:        1,
		InvoiceNumber: "INV0102000003",
		TotalPrice:    900,
	}, nil)
	fx.qrCode.On("GenerateInvoiceQR", service.InvoiceQR{
		TransactionID: 5,
		InvoiceNumber: "INV0102000003",
		TotalPrice:    900,
	}).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.InvoiceQR(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)

	_, err = fx.service.InvoiceQR(ctx, 2, 5)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMergeLines(t *testing.T) {
	merged := mergeLines([]usecase.CheckoutLine{
		{ProductID: 2, Qty: 1},
		{ProductID: 1, Qty: 3},
		{ProductID: 2, Qty: 4},
	})

	assert.Equal(t, []usecase.CheckoutLine{{ProductID: 2, Qty: 5}, {ProductID: 1, Qty: 3}}, merged)
}
