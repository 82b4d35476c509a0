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

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (repo *ratingRepository) List(ctx context.Context, spec *query.Spec, scope query.Scope) ([]*entity.Rating, int64, error) {
	ratings, total, err := listRecords[model.RatingModel](ctx, repo.db, spec, scope)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list ratings")
	}

	return mapSlice(ratings, toRatingDomain), total, nil
}

func (repo *ratingRepository) Get(ctx context.Context, id int64, spec *query.Spec) (*entity.Rating, error) {
	ratingM, err := showRecord[model.RatingModel](ctx, repo.db, id, spec)
	if err != nil {
		return nil, lookupError(err, domainerrors.ErrRatingNotFound, "failed to get rating")
	}

	return toRatingDomain(ratingM), nil
}

func (repo *ratingRepository) FindByID(ctx context.Context, id int64) (*entity.Rating, error) {
	var ratingM model.RatingModel
	if err := repo.db.WithContext(ctx).Take(&ratingM, id).Error; err != nil {
		return nil, lookupError(err, domainerrors.ErrRatingNotFound, "failed to find rating by id")
	}

	return toRatingDomain(&ratingM), nil
}

func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)
	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		return writeError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

func (repo *ratingRepository) CreateBatch(ctx context.Context, ratings []*entity.Rating) error {
	if len(ratings) == 0 {
		return nil
	}

	models := make([]*model.RatingModel, 0, len(ratings))
	for _, r := range ratings {
		models = append(models, fromRatingDomain(r))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return writeError(err, "failed to create ratings")
	}

	for i, m := range models {
		ratings[i].ID = m.ID
		ratings[i].CreatedAt = m.CreatedAt
		ratings[i].UpdatedAt = m.UpdatedAt
	}

	return nil
}

func (repo *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	result := repo.db.WithContext(ctx).Model(ratingM).Select("*").Omit("id", "created_at", "deleted_at").Updates(ratingM)
	if result.Error != nil {
		return writeError(result.Error, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRatingNotFound
	}

	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

func (repo *ratingRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.RatingModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete rating")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRatingNotFound
	}

	return nil
}

func (repo *ratingRepository) DeleteByProduct(ctx context.Context, productID int64) error {
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.RatingModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove product ratings")
	}

	return nil
}
