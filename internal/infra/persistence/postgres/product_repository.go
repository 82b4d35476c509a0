package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Product, int64, error) {
	products, total, err := listRecords[model.ProductModel](ctx, repo.db, spec, scope)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return mapSlice(products, toProductDomain), total, nil
}

func (repo *productRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Product, error) {
	productM, err := showRecord[model.ProductModel](ctx, repo.db, id, spec)
	if err != nil {
		return nil, lookupError(err, domainerrors.ErrProductNotFound, "failed to get product")
	}

	return toProductDomain(productM), nil
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Take(&productM, id).Error; err != nil {
		return nil, lookupError(err, domainerrors.ErrProductNotFound, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return writeError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).Model(productM).Select("*").Omit("id", "created_at", "deleted_at").Updates(productM)
	if result.Error != nil {
		return writeError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

// DecrementStock is a single conditional UPDATE, so concurrent checkouts
// cannot take the same units twice.
func (repo *productRepository) DecrementStock(ctx context.Context, id int64, qty int) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND qty >= ?", id, qty).
		Update("qty", gorm.Expr("qty - ?", qty))
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement product stock")
	}

	return result.RowsAffected == 1, nil
}
