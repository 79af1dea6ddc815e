package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"retrospace/internal/cache"
	"retrospace/internal/models"
	"retrospace/internal/observability"
	"retrospace/internal/repository"
	"retrospace/internal/validation"
)

// ProfileService provides profile viewing, editing and dashboard logic.
type ProfileService struct {
	profileRepo     repository.ProfileRepository
	userRepo        repository.UserRepository
	friendRepo      repository.FriendRepository
	visitRepo       repository.VisitRepository
	testimonialRepo repository.TestimonialRepository
	topFiveRepo     repository.TopFiveRepository
	galleryRepo     repository.GalleryRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	friendRepo repository.FriendRepository,
	visitRepo repository.VisitRepository,
	testimonialRepo repository.TestimonialRepository,
	topFiveRepo repository.TopFiveRepository,
	galleryRepo repository.GalleryRepository,
) *ProfileService {
	return &ProfileService{
		profileRepo:     profileRepo,
		userRepo:        userRepo,
		friendRepo:      friendRepo,
		visitRepo:       visitRepo,
		testimonialRepo: testimonialRepo,
		topFiveRepo:     topFiveRepo,
		galleryRepo:     galleryRepo,
	}
}

// ProfileView is the assembled profile page for one viewer.
type ProfileView struct {
	Profile         *models.Profile      `json:"profile"`
	Username        string               `json:"username"`
	IsOwner         bool                 `json:"is_owner"`
	IsFriend        bool                 `json:"is_friend"`
	Testimonials    []models.Testimonial `json:"testimonials"`
	TopFives        []models.TopFive     `json:"top_fives"`
	Gallery         []models.GalleryImage `json:"gallery,omitempty"`
	MutualFriends   []models.User        `json:"mutual_friends,omitempty"`
	MutualInterests []string             `json:"mutual_interests,omitempty"`
}

// UpdateProfileInput carries the editable profile fields. Nil pointers leave
// the current value untouched.
type UpdateProfileInput struct {
	Bio           *string `json:"bio"`
	Location      *string `json:"location"`
	Interests     *string `json:"interests"`
	StatusMessage *string `json:"status_message"`

	ThemeChoice *string `json:"theme_choice"`
	ThemeColor  *string `json:"theme_color"`
	FontChoice  *string `json:"font_choice"`

	MusicAutoplay *bool `json:"music_autoplay"`

	ProfilePrivacy     *models.Privacy `json:"profile_privacy"`
	GalleryPrivacy     *models.Privacy `json:"gallery_privacy"`
	TestimonialPrivacy *models.Privacy `json:"testimonial_privacy"`
}

// Dashboard is the owner's landing page payload.
type Dashboard struct {
	Profile            *models.Profile        `json:"profile"`
	PendingRequests    []models.FriendRequest `json:"pending_requests"`
	RecentVisitors     []models.ProfileVisit  `json:"recent_visitors"`
	RecentTestimonials []models.Testimonial   `json:"recent_testimonials"`
	Suggestions        []models.User          `json:"suggestions"`
	FriendCount        int                    `json:"friend_count"`
}

const (
	dashboardTestimonialLimit = 5
	dashboardSuggestionLimit  = 5
)

// Me returns the caller's own profile.
func (s *ProfileService) Me(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// View assembles the profile page for username as seen by viewerID. Any
// authenticated non-owner view records a visit and bumps the view counter,
// whether or not the page is ultimately shown. viewerID 0 means anonymous.
func (s *ProfileService) View(ctx context.Context, viewerID uint, username string) (*ProfileView, error) {
	// Profile records are served cache-aside; writes invalidate the key so
	// only the view counter reads stale for up to the TTL.
	profile, err := cache.CacheAside(ctx, cache.ProfileKey(username), cache.ProfileTTL, func() (*models.Profile, error) {
		return s.profileRepo.GetByUsername(ctx, username)
	})
	if err != nil {
		return nil, err
	}

	isOwner := viewerID != 0 && viewerID == profile.UserID

	// Authenticated non-owner views count even when the page itself is not
	// shown; the owner still learns who came knocking.
	if !isOwner && viewerID != 0 {
		if err := s.profileRepo.IncrementViews(ctx, profile.ID); err != nil {
			return nil, err
		}
		profile.ProfileViews++
		observability.ProfileViewsRecorded.Inc()

		if err := s.visitRepo.Record(ctx, &models.ProfileVisit{
			ProfileID: profile.ID,
			VisitorID: viewerID,
		}); err != nil {
			return nil, err
		}
		observability.VisitsLogged.Inc()
	}

	if !isOwner && profile.ProfilePrivacy != models.PrivacyPublic {
		// friends-only is stored but not granted; treat like private
		return nil, models.NewForbiddenError("This profile is private")
	}

	isFriend := false
	if !isOwner && viewerID != 0 {
		isFriend, err = s.friendRepo.AreFriends(ctx, viewerID, profile.UserID)
		if err != nil {
			return nil, err
		}
	}

	view := &ProfileView{
		Profile:  profile,
		Username: username,
		IsOwner:  isOwner,
		IsFriend: isFriend,
	}

	showTestimonials := isOwner || profile.TestimonialPrivacy == models.PrivacyPublic
	if showTestimonials {
		view.Testimonials, err = s.testimonialRepo.ListForProfile(ctx, profile.ID, isOwner)
		if err != nil {
			return nil, err
		}
	} else {
		view.Testimonials = []models.Testimonial{}
	}

	view.TopFives, err = s.topFiveRepo.ListForProfile(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	if isOwner || profile.GalleryPrivacy == models.PrivacyPublic {
		view.Gallery, err = s.galleryRepo.ListImages(ctx, profile.ID, nil)
		if err != nil {
			return nil, err
		}
	}

	if !isOwner && viewerID != 0 {
		view.MutualFriends, err = s.mutualFriends(ctx, viewerID, profile.UserID)
		if err != nil {
			return nil, err
		}
		view.MutualInterests, err = s.mutualInterests(ctx, viewerID, profile)
		if err != nil {
			return nil, err
		}
	}

	return view, nil
}

// UpdateProfile applies the given changes to the caller's profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Bio != nil {
		if len(*in.Bio) > validation.MaxBioLen {
			return nil, models.NewValidationError("Bio too long")
		}
		profile.Bio = *in.Bio
	}
	if in.Location != nil {
		if len(*in.Location) > validation.MaxLocationLen {
			return nil, models.NewValidationError("Location too long")
		}
		profile.Location = *in.Location
	}
	if in.Interests != nil {
		if len(*in.Interests) > validation.MaxInterestsLen {
			return nil, models.NewValidationError("Interests too long")
		}
		profile.Interests = *in.Interests
	}
	if in.StatusMessage != nil {
		if len(*in.StatusMessage) > validation.MaxStatusMessageLen {
			return nil, models.NewValidationError("Status message too long")
		}
		profile.StatusMessage = *in.StatusMessage
	}
	if in.ThemeChoice != nil {
		profile.ThemeChoice = *in.ThemeChoice
	}
	if in.ThemeColor != nil {
		if err := validation.ValidateThemeColor(*in.ThemeColor); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		profile.ThemeColor = *in.ThemeColor
	}
	if in.FontChoice != nil {
		profile.FontChoice = *in.FontChoice
	}
	if in.MusicAutoplay != nil {
		profile.MusicAutoplay = *in.MusicAutoplay
	}
	if in.ProfilePrivacy != nil {
		if err := validation.ValidatePrivacy("profile_privacy", *in.ProfilePrivacy); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		profile.ProfilePrivacy = *in.ProfilePrivacy
	}
	if in.GalleryPrivacy != nil {
		if err := validation.ValidatePrivacy("gallery_privacy", *in.GalleryPrivacy); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		profile.GalleryPrivacy = *in.GalleryPrivacy
	}
	if in.TestimonialPrivacy != nil {
		if err := validation.ValidatePrivacy("testimonial_privacy", *in.TestimonialPrivacy); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		profile.TestimonialPrivacy = *in.TestimonialPrivacy
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	cache.InvalidateProfile(ctx, profile.User.Username)

	return profile, nil
}

// SetMediaPath stores an uploaded media path on the matching profile field.
func (s *ProfileService) SetMediaPath(ctx context.Context, userID uint, field, path string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch field {
	case "profile":
		profile.ProfilePic = path
	case "cover":
		profile.CoverPhoto = path
	case "background":
		profile.BackgroundImage = path
	case "music":
		profile.Music = path
	default:
		return nil, models.NewValidationError("Unknown media field")
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	cache.InvalidateProfile(ctx, profile.User.Username)

	return profile, nil
}

// GetDashboard assembles the owner's dashboard.
func (s *ProfileService) GetDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending, err := s.friendRepo.GetPendingRequests(ctx, userID)
	if err != nil {
		return nil, err
	}
	visitors, err := s.visitRepo.RecentForProfile(ctx, profile.ID, 10)
	if err != nil {
		return nil, err
	}
	friends, err := s.friendRepo.GetFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	testimonials, err := s.testimonialRepo.ListForProfile(ctx, profile.ID, true)
	if err != nil {
		return nil, err
	}
	if len(testimonials) > dashboardTestimonialLimit {
		testimonials = testimonials[:dashboardTestimonialLimit]
	}
	suggestions, err := s.friendSuggestions(ctx, userID, friends)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Profile:            profile,
		PendingRequests:    pending,
		RecentVisitors:     visitors,
		RecentTestimonials: testimonials,
		Suggestions:        suggestions,
		FriendCount:        len(friends),
	}, nil
}

// friendSuggestions picks friends-of-friends the user is not yet
// connected to, capped at five.
func (s *ProfileService) friendSuggestions(ctx context.Context, userID uint, friends []models.User) ([]models.User, error) {
	known := map[uint]bool{userID: true}
	for _, f := range friends {
		known[f.ID] = true
	}

	var suggestions []models.User
	for _, friend := range friends {
		theirs, err := s.friendRepo.GetFriends(ctx, friend.ID)
		if err != nil {
			return nil, err
		}
		for _, candidate := range theirs {
			if known[candidate.ID] {
				continue
			}
			known[candidate.ID] = true
			suggestions = append(suggestions, candidate)
			if len(suggestions) == dashboardSuggestionLimit {
				return suggestions, nil
			}
		}
	}
	return suggestions, nil
}

// RecentVisitors returns the caller's visit log, newest first.
func (s *ProfileService) RecentVisitors(ctx context.Context, userID uint, limit int) ([]models.ProfileVisit, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.visitRepo.RecentForProfile(ctx, profile.ID, limit)
}

func (s *ProfileService) mutualFriends(ctx context.Context, viewerID, ownerID uint) ([]models.User, error) {
	mine, err := s.friendRepo.GetFriends(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	theirs, err := s.friendRepo.GetFriends(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	theirIDs := make(map[uint]struct{}, len(theirs))
	for _, u := range theirs {
		theirIDs[u.ID] = struct{}{}
	}
	mutual := make([]models.User, 0)
	for _, u := range mine {
		if _, ok := theirIDs[u.ID]; ok {
			mutual = append(mutual, u)
		}
	}
	return mutual, nil
}

// mutualInterests intersects the comma-separated interests of the viewer and
// the viewed profile. Interests compare case-insensitively and the result is
// lowercased and sorted, so swapping viewer and owner yields the same list.
func (s *ProfileService) mutualInterests(ctx context.Context, viewerID uint, owner *models.Profile) ([]string, error) {
	viewer, err := s.profileRepo.GetByUserID(ctx, viewerID)
	if err != nil {
		// a viewer without a profile has no interests to share
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return []string{}, nil
		}
		return nil, err
	}

	ownerSet := make(map[string]struct{})
	for _, interest := range splitInterests(owner.Interests) {
		ownerSet[strings.ToLower(interest)] = struct{}{}
	}

	mutual := make([]string, 0)
	seen := make(map[string]struct{})
	for _, interest := range splitInterests(viewer.Interests) {
		key := strings.ToLower(interest)
		if _, dup := seen[key]; dup {
			continue
		}
		if _, ok := ownerSet[key]; ok {
			mutual = append(mutual, key)
			seen[key] = struct{}{}
		}
	}
	sort.Strings(mutual)
	return mutual, nil
}

func splitInterests(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
