package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	return cartServiceFixtures{
		service: NewCartService(CartServiceParams{
			CartRepo:    cartRepo,
			ProductRepo: productRepo,
			Logger:      newDiscardLogger(),
		}),
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_List_ScopesToCaller(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	spec := query.NewSpec(testResources.Carts)

	fx.cartRepo.On("List", ctx, spec, query.Scope{OwnerID: 4}).
		Return([]*entity.Cart{{ID: 1, UserID: 4}}, int64(31), nil)

	out, err := fx.service.List(ctx, 4, spec)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(31), out.Meta.Total)
	assert.Equal(t, 2, out.Meta.LastPage)
	assert.Equal(t, 1, out.Meta.From)
	assert.Equal(t, 1, out.Meta.To)
}

func TestCartService_Store(t *testing.T) {
	tests := []struct {
		name    string
		stock   int
		qty     int
		wantErr error
	}{
		{name: "within stock", stock: 5, qty: 5},
		{name: "zero quantity", stock: 0, qty: 0},
		{name: "over stock", stock: 2, qty: 3, wantErr: domainerrors.ErrOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)
			ctx := context.Background()

			fx.productRepo.On("FindByID", ctx, int64(9)).Return(&entity.Product{ID: 9, Qty: tt.stock}, nil)
			if tt.wantErr == nil {
				fx.cartRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Cart) bool {
					return c.UserID == 4 && c.ProductID == 9 && c.ProductQty == tt.qty && c.IsChecked
				})).Return(nil)
			}

			cart, err := fx.service.Store(ctx, 4, &usecase.CreateCartInput{ProductID: 9, ProductQty: tt.qty, IsChecked: true})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(4), cart.UserID)
		})
	}
}

func TestCartService_Store_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, int64(9)).Return(nil, domainerrors.ErrProductNotFound)

	_, err := fx.service.Store(ctx, 4, &usecase.CreateCartInput{ProductID: 9, ProductQty: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_Update_SkipsUnchangedWrite(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.On("FindByID", ctx, int64(1)).
		Return(&entity.Cart{ID: 1, UserID: 4, ProductID: 9, ProductQty: 2, IsChecked: true}, nil)

	cart, err := fx.service.Update(ctx, 4, 1, &usecase.UpdateCartInput{ProductQty: intPtr(2), IsChecked: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 2, cart.ProductQty)

	fx.cartRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fx.productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCartService_Update_ChecksStockOnQuantityChange(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.On("FindByID", ctx, int64(1)).
		Return(&entity.Cart{ID: 1, UserID: 4, ProductID: 9, ProductQty: 2}, nil)
	fx.productRepo.On("FindByID", ctx, int64(9)).Return(&entity.Product{ID: 9, Qty: 3}, nil)

	_, err := fx.service.Update(ctx, 4, 1, &usecase.UpdateCartInput{ProductQty: intPtr(4)})
	assert.True(t, errors.Is(err, domainerrors.ErrOutOfStock))
	fx.cartRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCartService_Update_FlagOnlySkipsStockCheck(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.On("FindByID", ctx, int64(1)).
		Return(&entity.Cart{ID: 1, UserID: 4, ProductID: 9, ProductQty: 2}, nil)
	fx.cartRepo.On("Update", ctx, mock.MatchedBy(func(c *entity.Cart) bool { return c.IsChecked })).Return(nil)

	cart, err := fx.service.Update(ctx, 4, 1, &usecase.UpdateCartInput{IsChecked: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, cart.IsChecked)
}

func TestCartService_OwnerOnly(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.On("FindByID", ctx, int64(1)).Return(&entity.Cart{ID: 1, UserID: 5}, nil)

	_, err := fx.service.Update(ctx, 4, 1, &usecase.UpdateCartInput{ProductQty: intPtr(1)})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = fx.service.Destroy(ctx, 4, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = fx.service.Show(ctx, 4, 1, query.NewSpec(testResources.Carts))
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	fx.cartRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCartService_Details(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.On("Subtotal", ctx, int64(4)).Return(int64(1250), nil)

	summary, err := fx.service.Details(ctx, 4, 100)
	require.NoError(t, err)
	assert.Equal(t, &entity.CartSummary{SubtotalProducts: 1250, ShippingCost: 100, TotalPrice: 1350}, summary)
}
