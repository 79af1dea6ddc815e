// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"retrospace/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var interestPool = []string{
	"mixtapes", "retro gaming", "zines", "photography", "synthwave",
	"skateboarding", "thrifting", "anime", "garage bands", "pixel art",
	"road trips", "horror movies", "crate digging", "html tinkering",
}

var themes = []string{"default", "dark", "vaporwave", "grunge", "bubblegum"}

// CreateUser constructs and persists a sample user with an attached
// profile. Optional override functions may modify the generated user
// before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(10, 99)),
		Email:    gofakeit.Email(),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "Password123!"
	} else {
		hashed, _ := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
		user.Password = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:        user.ID,
		Bio:           gofakeit.Paragraph(1, 2, 8, "\n"),
		Location:      gofakeit.City(),
		Interests:     f.pickInterests(),
		StatusMessage: gofakeit.Sentence(5),
		ThemeChoice:   themes[f.rng.Intn(len(themes))],
		ThemeColor:    gofakeit.HexColor(),
		ProfilePic:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	user.Profile = profile
	return user, nil
}

func (f *Factory) pickInterests() string {
	n := 2 + f.rng.Intn(3)
	picked := make([]string, 0, n)
	for _, i := range f.rng.Perm(len(interestPool))[:n] {
		picked = append(picked, interestPool[i])
	}
	return strings.Join(picked, ", ")
}

// CreateFriendship persists an accepted friend request between two users.
func (f *Factory) CreateFriendship(from, to *models.User) (*models.FriendRequest, error) {
	request := &models.FriendRequest{
		FromUserID: from.ID,
		ToUserID:   to.ID,
		Accepted:   true,
	}
	if err := f.db.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// CreatePendingRequest persists an unanswered friend request.
func (f *Factory) CreatePendingRequest(from, to *models.User) (*models.FriendRequest, error) {
	request := &models.FriendRequest{
		FromUserID: from.ID,
		ToUserID:   to.ID,
	}
	if err := f.db.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// CreateTestimonial persists a testimonial written by author on the
// target user's profile.
func (f *Factory) CreateTestimonial(target, author *models.User, overrides ...func(*models.Testimonial)) (*models.Testimonial, error) {
	testimonial := &models.Testimonial{
		ProfileID: target.Profile.ID,
		AuthorID:  author.ID,
		Content:   gofakeit.Sentence(12),
		CreatedAt: f.pastTime(),
	}
	for _, override := range overrides {
		override(testimonial)
	}
	if err := f.db.Create(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

// CreateTopFive persists a top-five list on the user's profile.
func (f *Factory) CreateTopFive(user *models.User, overrides ...func(*models.TopFive)) (*models.TopFive, error) {
	categories := []models.TopFiveCategory{
		models.TopFiveMovies, models.TopFiveMusic, models.TopFiveGames, models.TopFiveCustom,
	}
	items := make([]string, 5)
	for i := range items {
		items[i] = gofakeit.HipsterWord() + " " + gofakeit.Word()
	}
	topFive := &models.TopFive{
		ProfileID: user.Profile.ID,
		Category:  categories[f.rng.Intn(len(categories))],
		Title:     "Top Five " + gofakeit.HipsterWord(),
		Items:     strings.Join(items, "\n"),
	}
	for _, override := range overrides {
		override(topFive)
	}
	if err := f.db.Create(topFive).Error; err != nil {
		return nil, err
	}
	return topFive, nil
}

// CreateVisit persists a profile visit by visitor on the target's profile.
func (f *Factory) CreateVisit(target, visitor *models.User) (*models.ProfileVisit, error) {
	visit := &models.ProfileVisit{
		ProfileID: target.Profile.ID,
		VisitorID: visitor.ID,
		VisitedAt: f.pastTime(),
	}
	if err := f.db.Create(visit).Error; err != nil {
		return nil, err
	}
	return visit, nil
}

// CreateAlbumWithImages persists an album holding count gallery images.
func (f *Factory) CreateAlbumWithImages(user *models.User, count int) (*models.Album, error) {
	album := &models.Album{
		ProfileID: user.Profile.ID,
		Name:      gofakeit.HipsterWord() + " " + fmt.Sprintf("%d", gofakeit.Number(2001, 2009)),
	}
	if err := f.db.Create(album).Error; err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		image := &models.GalleryImage{
			ProfileID: user.Profile.ID,
			AlbumID:   &album.ID,
			Image:     fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
			Caption:   gofakeit.Sentence(4),
		}
		if err := f.db.Create(image).Error; err != nil {
			return nil, err
		}
	}
	return album, nil
}

// pastTime returns a timestamp spread over the recent past so seeded
// content does not all share one creation instant.
func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
}
