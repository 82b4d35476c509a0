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

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService creates a new cart service
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) List(ctx context.Context, callerID int64, spec *query.Spec) (*usecase.ListOutput[*entity.Cart], error) {
	carts, total, err := srv.cartRepo.List(ctx, spec, query.Scope{OwnerID: callerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list carts")
	}

	return usecase.NewListOutput(carts, total, spec), nil
}

func (srv *cartService) Show(ctx context.Context, callerID, id int64, spec *query.Spec) (*entity.Cart, error) {
	if _, err := srv.findOwned(ctx, callerID, id); err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.Get(ctx, id, spec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return cart, nil
}

func (srv *cartService) Store(ctx context.Context, callerID int64, input *usecase.CreateCartInput) (*entity.Cart, error) {
	if err := srv.checkStock(ctx, input.ProductID, input.ProductQty); err != nil {
		return nil, err
	}

	cart := &entity.Cart{
		UserID:     callerID,
		ProductID:  input.ProductID,
		ProductQty: input.ProductQty,
		IsChecked:  input.IsChecked,
	}
	if err := srv.cartRepo.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	srv.log(ctx).Info("Cart created", slog.Int64("cartID", cart.ID), slog.Int64("userID", callerID), slog.Int64("productID", cart.ProductID))

	return cart, nil
}

func (srv *cartService) Update(ctx context.Context, callerID, id int64, input *usecase.UpdateCartInput) (*entity.Cart, error) {
	cart, err := srv.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	productChanged := apply(&cart.ProductID, input.ProductID)
	qtyChanged := apply(&cart.ProductQty, input.ProductQty)
	checkedChanged := apply(&cart.IsChecked, input.IsChecked)
	if !dirty(productChanged, qtyChanged, checkedChanged) {
		return cart, nil
	}

	if productChanged || qtyChanged {
		if err := srv.checkStock(ctx, cart.ProductID, cart.ProductQty); err != nil {
			return nil, err
		}
	}

	if err := srv.cartRepo.Update(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to update cart")
	}

	return cart, nil
}

func (srv *cartService) Destroy(ctx context.Context, callerID, id int64) (*entity.Cart, error) {
	cart, err := srv.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete cart")
	}

	return cart, nil
}

func (srv *cartService) Details(ctx context.Context, callerID int64, shippingCost int64) (*entity.CartSummary, error) {
	subtotal, err := srv.cartRepo.Subtotal(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum cart subtotal")
	}

	return &entity.CartSummary{
		SubtotalProducts: subtotal,
		ShippingCost:     shippingCost,
		TotalPrice:       subtotal + shippingCost,
	}, nil
}

func (srv *cartService) findOwned(ctx context.Context, callerID, id int64) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}
	if err := ensureOwner(cart, callerID); err != nil {
		return nil, errors.Wrap(err, "cart belongs to another user")
	}

	return cart, nil
}

// checkStock enforces product_qty <= product.qty at write time.
func (srv *cartService) checkStock(ctx context.Context, productID int64, qty int) error {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to find cart product")
	}

	if !product.HasStock(qty) {
		srv.log(ctx).Warn("Cart quantity exceeds stock", slog.Int64("productID", productID), slog.Int("qty", qty), slog.Int("stock", product.Qty))

		return domainerrors.NewOutOfStockError(productID)
	}

	return nil
}
