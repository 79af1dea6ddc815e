package service

import (
	"context"
	"strings"

	"retrospace/internal/cache"
	"retrospace/internal/models"
	"retrospace/internal/repository"
)

const maxSearchQueryLen = 100

// SearchService finds users by username or profile interests.
type SearchService struct {
	userRepo repository.UserRepository
}

// NewSearchService returns a new SearchService.
func NewSearchService(userRepo repository.UserRepository) *SearchService {
	return &SearchService{userRepo: userRepo}
}

// SearchResult is one row of a user search.
type SearchResult struct {
	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
	ProfilePic string `json:"profile_pic,omitempty"`
	Location   string `json:"location,omitempty"`
	Interests  string `json:"interests,omitempty"`
}

// Search returns users whose username or interests contain the query
// substring. Results are cached briefly since browse pages hammer this.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if len(query) > maxSearchQueryLen {
		return nil, models.NewValidationError("Search query too long")
	}

	key := cache.SearchKey(strings.ToLower(query))
	return cache.CacheAside(ctx, key, cache.SearchTTL, func() ([]SearchResult, error) {
		users, err := s.userRepo.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}

		results := make([]SearchResult, 0, len(users))
		for _, u := range users {
			row := SearchResult{UserID: u.ID, Username: u.Username}
			if u.Profile != nil {
				row.ProfilePic = u.Profile.ProfilePic
				row.Location = u.Profile.Location
				row.Interests = u.Profile.Interests
			}
			results = append(results, row)
		}
		return results, nil
	})
}
