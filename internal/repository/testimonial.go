package repository

import (
	"context"
	"errors"

	"retrospace/internal/models"

	"gorm.io/gorm"
)

// TestimonialRepository defines persistence operations for testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, id uint) (*models.Testimonial, error)
	ListForProfile(ctx context.Context, profileID uint, includeHidden bool) ([]models.Testimonial, error)
	SetHidden(ctx context.Context, id uint, hidden bool) error
	Delete(ctx context.Context, id uint) error
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository returns a new TestimonialRepository implementation.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	if err := r.db.WithContext(ctx).Create(testimonial).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *testimonialRepository) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := r.db.WithContext(ctx).Preload("Author").First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Testimonial", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &testimonial, nil
}

func (r *testimonialRepository) ListForProfile(ctx context.Context, profileID uint, includeHidden bool) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial

	q := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Preload("Author").
		Order("created_at DESC")
	if !includeHidden {
		q = q.Where("is_hidden = ?", false)
	}
	if err := q.Find(&testimonials).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return testimonials, nil
}

func (r *testimonialRepository) SetHidden(ctx context.Context, id uint, hidden bool) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Testimonial{}).
		Where("id = ?", id).
		Update("is_hidden", hidden).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Testimonial{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
