package service

import (
	"context"
	"strings"

	"retrospace/internal/models"
	"retrospace/internal/repository"
)

const maxTestimonialLen = 2000

// TestimonialService provides testimonial writing and moderation logic.
// Moderation (hide, unhide, delete) belongs to the profile owner alone.
type TestimonialService struct {
	testimonialRepo repository.TestimonialRepository
	profileRepo     repository.ProfileRepository
}

// NewTestimonialService returns a new TestimonialService.
func NewTestimonialService(testimonialRepo repository.TestimonialRepository, profileRepo repository.ProfileRepository) *TestimonialService {
	return &TestimonialService{
		testimonialRepo: testimonialRepo,
		profileRepo:     profileRepo,
	}
}

// Write posts a testimonial by authorID on username's profile.
func (s *TestimonialService) Write(ctx context.Context, authorID uint, username, content string) (*models.Testimonial, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Testimonial content is required")
	}
	if len(content) > maxTestimonialLen {
		return nil, models.NewValidationError("Testimonial too long")
	}

	profile, err := s.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if profile.UserID == authorID {
		return nil, models.NewValidationError("Cannot write a testimonial on your own profile")
	}

	testimonial := &models.Testimonial{
		ProfileID: profile.ID,
		AuthorID:  authorID,
		Content:   content,
	}
	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// ListForUser returns the testimonials on userID's own profile, hidden ones
// included.
func (s *TestimonialService) ListForUser(ctx context.Context, userID uint) ([]models.Testimonial, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.testimonialRepo.ListForProfile(ctx, profile.ID, true)
}

// Hide marks a testimonial on the caller's profile as hidden.
func (s *TestimonialService) Hide(ctx context.Context, userID, testimonialID uint) (*models.Testimonial, error) {
	return s.setHidden(ctx, userID, testimonialID, true)
}

// Unhide restores a hidden testimonial on the caller's profile.
func (s *TestimonialService) Unhide(ctx context.Context, userID, testimonialID uint) (*models.Testimonial, error) {
	return s.setHidden(ctx, userID, testimonialID, false)
}

// Delete removes a testimonial from the caller's profile.
func (s *TestimonialService) Delete(ctx context.Context, userID, testimonialID uint) error {
	testimonial, err := s.ownedTestimonial(ctx, userID, testimonialID)
	if err != nil {
		return err
	}
	return s.testimonialRepo.Delete(ctx, testimonial.ID)
}

func (s *TestimonialService) setHidden(ctx context.Context, userID, testimonialID uint, hidden bool) (*models.Testimonial, error) {
	testimonial, err := s.ownedTestimonial(ctx, userID, testimonialID)
	if err != nil {
		return nil, err
	}

	if testimonial.IsHidden != hidden {
		if err := s.testimonialRepo.SetHidden(ctx, testimonial.ID, hidden); err != nil {
			return nil, err
		}
		testimonial.IsHidden = hidden
	}
	return testimonial, nil
}

// ownedTestimonial loads a testimonial and verifies it sits on the caller's
// profile. Anyone else gets a forbidden error.
func (s *TestimonialService) ownedTestimonial(ctx context.Context, userID, testimonialID uint) (*models.Testimonial, error) {
	testimonial, err := s.testimonialRepo.GetByID(ctx, testimonialID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if testimonial.ProfileID != profile.ID {
		return nil, models.NewForbiddenError("Only the profile owner can manage testimonials")
	}
	return testimonial, nil
}
