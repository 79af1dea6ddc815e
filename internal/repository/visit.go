package repository

import (
	"context"

	"retrospace/internal/models"

	"gorm.io/gorm"
)

// VisitRepository defines persistence operations for profile visits.
type VisitRepository interface {
	Record(ctx context.Context, visit *models.ProfileVisit) error
	RecentForProfile(ctx context.Context, profileID uint, limit int) ([]models.ProfileVisit, error)
}

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository returns a new VisitRepository implementation.
func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Record(ctx context.Context, visit *models.ProfileVisit) error {
	if err := r.db.WithContext(ctx).Create(visit).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RecentForProfile returns visits newest first. The log is append-only, so
// repeat visitors appear once per visit.
func (r *visitRepository) RecentForProfile(ctx context.Context, profileID uint, limit int) ([]models.ProfileVisit, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	var visits []models.ProfileVisit
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Preload("Visitor").
		Order("visited_at DESC, id DESC").
		Limit(limit).
		Find(&visits).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return visits, nil
}
