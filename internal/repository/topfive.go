package repository

import (
	"context"
	"errors"

	"retrospace/internal/models"

	"gorm.io/gorm"
)

// TopFiveRepository defines persistence operations for top-five lists.
type TopFiveRepository interface {
	Create(ctx context.Context, topFive *models.TopFive) error
	GetForProfile(ctx context.Context, id, profileID uint) (*models.TopFive, error)
	ListForProfile(ctx context.Context, profileID uint) ([]models.TopFive, error)
	Update(ctx context.Context, topFive *models.TopFive) error
	Delete(ctx context.Context, id uint) error
}

type topFiveRepository struct {
	db *gorm.DB
}

// NewTopFiveRepository returns a new TopFiveRepository implementation.
func NewTopFiveRepository(db *gorm.DB) TopFiveRepository {
	return &topFiveRepository{db: db}
}

func (r *topFiveRepository) Create(ctx context.Context, topFive *models.TopFive) error {
	if err := r.db.WithContext(ctx).Create(topFive).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetForProfile fetches a list scoped to its owning profile; a list owned by
// another profile comes back as not found.
func (r *topFiveRepository) GetForProfile(ctx context.Context, id, profileID uint) (*models.TopFive, error) {
	var topFive models.TopFive
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&topFive).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("TopFive", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &topFive, nil
}

func (r *topFiveRepository) ListForProfile(ctx context.Context, profileID uint) ([]models.TopFive, error) {
	var topFives []models.TopFive
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at ASC").
		Find(&topFives).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return topFives, nil
}

func (r *topFiveRepository) Update(ctx context.Context, topFive *models.TopFive) error {
	if err := r.db.WithContext(ctx).Save(topFive).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *topFiveRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.TopFive{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
