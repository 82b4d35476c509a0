package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	cache       service.ProductCache
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Cache       service.ProductCache
	Logger      *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.Product], error) {
	products, total, err := srv.productRepo.List(ctx, spec, query.Scope{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return usecase.NewListOutput(products, total, spec), nil
}

// Show serves plain reads (no field selection, no includes) from the cache.
func (srv *productService) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Product, error) {
	plain := len(spec.Includes) == 0 && len(spec.Fields) == 0

	if plain {
		cached, ok, err := srv.cache.Get(ctx, id)
		if err != nil {
			srv.log(ctx).Warn("Product cache read failed", slog.Int64("productID", id), slog.Any("error", err))
		}
		if ok {
			return cached, nil
		}
	}

	product, err := srv.productRepo.Get(ctx, id, spec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	if plain {
		if err := srv.cache.Set(ctx, product); err != nil {
			srv.log(ctx).Warn("Product cache write failed", slog.Int64("productID", id), slog.Any("error", err))
		}
	}

	return product, nil
}

func (srv *productService) Store(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Label:    input.Label,
		Qty:      input.Qty,
		Price:    input.Price,
		Size:     input.Size,
		Detail:   input.Detail,
		Category: input.Category,
		Image:    input.Image,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID))

	return product, nil
}

func (srv *productService) Update(ctx context.Context, id int64, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	changed := dirty(
		apply(&product.Label, input.Label),
		apply(&product.Qty, input.Qty),
		apply(&product.Price, input.Price),
		apply(&product.Size, input.Size),
		apply(&product.Detail, input.Detail),
		apply(&product.Category, input.Category),
		apply(&product.Image, input.Image),
	)
	if !changed {
		return product, nil
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}
	srv.invalidate(ctx, id)

	return product, nil
}

func (srv *productService) Destroy(ctx context.Context, id int64) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		product, err = repoFactory.ProductRepo().FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find product")
		}

		if err := repoFactory.CartRepo().DeleteByProduct(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete product carts")
		}
		if err := repoFactory.RatingRepo().DeleteByProduct(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete product ratings")
		}
		if err := repoFactory.ProductRepo().Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute product deletion transaction")
	}

	srv.invalidate(ctx, id)
	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return product, nil
}

func (srv *productService) invalidate(ctx context.Context, id int64) {
	if err := srv.cache.Invalidate(ctx, id); err != nil {
		srv.log(ctx).Warn("Product cache invalidation failed", slog.Int64("productID", id), slog.Any("error", err))
	}
}
