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

type productTransactionRepository struct {
	db *gorm.DB
}

// NewProductTransactionRepository creates a new line item repository
func NewProductTransactionRepository(db *gorm.DB) repository.ProductTransactionRepository {
	return &productTransactionRepository{db: db}
}

func (repo *productTransactionRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.ProductTransaction, int64, error) {
	items, total, err := listRecords[model.ProductTransactionModel](ctx, repo.db, spec, scope)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list product transactions")
	}

	return mapSlice(items, toProductTransactionDomain), total, nil
}

func (repo *productTransactionRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.ProductTransaction, error) {
	itemM, err := showRecord[model.ProductTransactionModel](ctx, repo.db, id, spec)
	if err != nil {
		return nil, lookupError(err, domainerrors.ErrProductTransactionNotFound, "failed to get product transaction")
	}

	return toProductTransactionDomain(itemM), nil
}

func (repo *productTransactionRepository) FindByID(ctx context.Context, id int64) (*entity.ProductTransaction, error) {
	var itemM model.ProductTransactionModel
	if err := repo.db.WithContext(ctx).Take(&itemM, id).Error; err != nil {
		return nil, lookupError(err, domainerrors.ErrProductTransactionNotFound, "failed to find product transaction by id")
	}

	return toProductTransactionDomain(&itemM), nil
}

func (repo *productTransactionRepository) FindByTransaction(ctx context.Context, transactionID int64) ([]*entity.ProductTransaction, error) {
	var items []*model.ProductTransactionModel
	err := repo.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find transaction line items")
	}

	return mapSlice(items, toProductTransactionDomain), nil
}

func (repo *productTransactionRepository) CreateBatch(ctx context.Context, items []*entity.ProductTransaction) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]*model.ProductTransactionModel, 0, len(items))
	for _, item := range items {
		models = append(models, fromProductTransactionDomain(item))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return writeError(err, "failed to create product transactions")
	}

	for i, m := range models {
		items[i].ID = m.ID
		items[i].CreatedAt = m.CreatedAt
		items[i].UpdatedAt = m.UpdatedAt
	}

	return nil
}
