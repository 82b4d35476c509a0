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

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Cart, int64, error) {
	carts, total, err := listRecords[model.CartModel](ctx, repo.db, spec, scope)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list carts")
	}

	return mapSlice(carts, toCartDomain), total, nil
}

func (repo *cartRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Cart, error) {
	cartM, err := showRecord[model.CartModel](ctx, repo.db, id, spec)
	if err != nil {
		return nil, lookupError(err, domainerrors.ErrCartNotFound, "failed to get cart")
	}

	return toCartDomain(cartM), nil
}

func (repo *cartRepository) FindByID(ctx context.Context, id int64) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := repo.db.WithContext(ctx).Take(&cartM, id).Error; err != nil {
		return nil, lookupError(err, domainerrors.ErrCartNotFound, "failed to find cart by id")
	}

	return toCartDomain(&cartM), nil
}

func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)
	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		return writeError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

func (repo *cartRepository) Update(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	result := repo.db.WithContext(ctx).Model(cartM).Select("*").Omit("id", "created_at", "deleted_at").Updates(cartM)
	if result.Error != nil {
		return writeError(result.Error, "failed to update cart")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCartNotFound
	}

	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CartModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCartNotFound
	}

	return nil
}

func (repo *cartRepository) DeleteByUserAndProduct(ctx context.Context, userID, productID int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove cart item")
	}

	return result.RowsAffected, nil
}

func (repo *cartRepository) DeleteByProduct(ctx context.Context, productID int64) error {
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.CartModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove product carts")
	}

	return nil
}

// Subtotal prices the user's live cart rows at current product prices.
func (repo *cartRepository) Subtotal(ctx context.Context, userID int64) (int64, error) {
	var subtotal int64
	err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Select("COALESCE(SUM(carts.product_qty * products.price), 0)").
		Joins("JOIN products ON products.id = carts.product_id AND products.deleted_at IS NULL").
		Where("carts.user_id = ?", userID).
		Scan(&subtotal).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to sum cart subtotal")
	}

	return subtotal, nil
}
