package service

import (
	"context"
	"strings"

	"retrospace/internal/models"
	"retrospace/internal/repository"
)

const maxTopFiveTitleLen = 100

// TopFiveService provides top-five list management.
type TopFiveService struct {
	topFiveRepo repository.TopFiveRepository
	profileRepo repository.ProfileRepository
}

// NewTopFiveService returns a new TopFiveService.
func NewTopFiveService(topFiveRepo repository.TopFiveRepository, profileRepo repository.ProfileRepository) *TopFiveService {
	return &TopFiveService{
		topFiveRepo: topFiveRepo,
		profileRepo: profileRepo,
	}
}

// TopFiveInput carries the writable fields of a list.
type TopFiveInput struct {
	Category models.TopFiveCategory `json:"category"`
	Title    string                 `json:"title"`
	Items    string                 `json:"items"`
}

func (in *TopFiveInput) validate() error {
	if in.Category != "" && !in.Category.Valid() {
		return models.NewValidationError("Unknown top five category")
	}
	if len(in.Title) > maxTopFiveTitleLen {
		return models.NewValidationError("Title too long")
	}
	return nil
}

// Create adds a list to the caller's profile. Only the first five non-blank
// lines of items are ever rendered; the raw text is stored as given.
func (s *TopFiveService) Create(ctx context.Context, userID uint, in TopFiveInput) (*models.TopFive, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	topFive := &models.TopFive{
		ProfileID: profile.ID,
		Items:     in.Items,
	}
	if in.Category != "" {
		topFive.Category = in.Category
	}
	if title := strings.TrimSpace(in.Title); title != "" {
		topFive.Title = title
	}

	if err := s.topFiveRepo.Create(ctx, topFive); err != nil {
		return nil, err
	}
	return topFive, nil
}

// ListForUser returns the caller's lists.
func (s *TopFiveService) ListForUser(ctx context.Context, userID uint) ([]models.TopFive, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.topFiveRepo.ListForProfile(ctx, profile.ID)
}

// Update modifies one of the caller's lists. Lists owned by other profiles
// surface as not found.
func (s *TopFiveService) Update(ctx context.Context, userID, topFiveID uint, in TopFiveInput) (*models.TopFive, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	topFive, err := s.topFiveRepo.GetForProfile(ctx, topFiveID, profile.ID)
	if err != nil {
		return nil, err
	}

	if in.Category != "" {
		topFive.Category = in.Category
	}
	if title := strings.TrimSpace(in.Title); title != "" {
		topFive.Title = title
	}
	topFive.Items = in.Items

	if err := s.topFiveRepo.Update(ctx, topFive); err != nil {
		return nil, err
	}
	return topFive, nil
}

// Delete removes one of the caller's lists.
func (s *TopFiveService) Delete(ctx context.Context, userID, topFiveID uint) error {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	topFive, err := s.topFiveRepo.GetForProfile(ctx, topFiveID, profile.ID)
	if err != nil {
		return err
	}
	return s.topFiveRepo.Delete(ctx, topFive.ID)
}
