package postgres

import (
	"context"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new checkout transaction repository
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (repo *transactionRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Transaction, int64, error) {
	transactions, total, err := listRecords[model.TransactionModel](ctx, repo.db, spec, scope)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list transactions")
	}

	return mapSlice(transactions, toTransactionDomain), total, nil
}

func (repo *transactionRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Transaction, error) {
	transactionM, err := showRecord[model.TransactionModel](ctx, repo.db, id, spec)
	if err != nil {
		return nil, lookupError(err, domainerrors.ErrTransactionNotFound, "failed to get transaction")
	}

	return toTransactionDomain(transactionM), nil
}

func (repo *transactionRepository) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	var transactionM model.TransactionModel
	if err := repo.db.WithContext(ctx).Take(&transactionM, id).Error; err != nil {
		return nil, lookupError(err, domainerrors.ErrTransactionNotFound, "failed to find transaction by id")
	}

	return toTransactionDomain(&transactionM), nil
}

func (repo *transactionRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Transaction, error) {
	var transactionM model.TransactionModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Take(&transactionM, id).Error
	if err != nil {
		return nil, lookupError(err, domainerrors.ErrTransactionNotFound, "failed to lock transaction")
	}

	return toTransactionDomain(&transactionM), nil
}

func (repo *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)
	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		return writeError(err, "failed to create transaction")
	}

	transaction.ID = transactionM.ID
	transaction.CreatedAt = transactionM.CreatedAt
	transaction.UpdatedAt = transactionM.UpdatedAt

	return nil
}

func (repo *transactionRepository) MarkComplete(ctx context.Context, id int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND status = ?", id, constants.TransactionStatusInProgress).
		Update("status", constants.TransactionStatusComplete)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete transaction")
	}

	return result.RowsAffected == 1, nil
}

func (repo *transactionRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.TransactionModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete transaction")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTransactionNotFound
	}

	return nil
}
