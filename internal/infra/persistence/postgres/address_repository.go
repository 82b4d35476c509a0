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

// addressRepository implements the domain.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (repo *addressRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Address, int64, error) {
	addresses, total, err := listRecords[model.AddressModel](ctx, repo.db, spec, scope)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list addresses")
	}

	return mapSlice(addresses, toAddressDomain), total, nil
}

func (repo *addressRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Address, error) {
	addressM, err := showRecord[model.AddressModel](ctx, repo.db, id, spec)
	if err != nil {
		return nil, lookupError(err, domainerrors.ErrAddressNotFound, "failed to get address")
	}

	return toAddressDomain(addressM), nil
}

func (repo *addressRepository) FindByID(ctx context.Context, id int64) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).Take(&addressM, id).Error; err != nil {
		return nil, lookupError(err, domainerrors.ErrAddressNotFound, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return writeError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).Model(addressM).Select("*").Omit("id", "created_at", "deleted_at").Updates(addressM)
	if result.Error != nil {
		return writeError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAddressNotFound
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

func (repo *addressRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.AddressModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAddressNotFound
	}

	return nil
}
