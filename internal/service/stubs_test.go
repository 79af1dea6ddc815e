package service

import (
	"context"

	"retrospace/internal/models"
)

type userRepoStub struct {
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getByEmailFn        func(context.Context, string) (*models.User, error)
	getByUsernameFn     func(context.Context, string) (*models.User, error)
	createWithProfileFn func(context.Context, *models.User) error
	updateFn            func(context.Context, *models.User) error
	deleteFn            func(context.Context, uint) error
	searchFn            func(context.Context, string, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) CreateWithProfile(ctx context.Context, user *models.User) error {
	return s.createWithProfileFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) Search(ctx context.Context, query string, limit int) ([]models.User, error) {
	return s.searchFn(ctx, query, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:           func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:        func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:     func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createWithProfileFn: func(context.Context, *models.User) error { return nil },
		updateFn:            func(context.Context, *models.User) error { return nil },
		deleteFn:            func(context.Context, uint) error { return nil },
		searchFn:            func(context.Context, string, int) ([]models.User, error) { return nil, nil },
	}
}

type profileRepoStub struct {
	getByUserIDFn    func(context.Context, uint) (*models.Profile, error)
	getByUsernameFn  func(context.Context, string) (*models.Profile, error)
	updateFn         func(context.Context, *models.Profile) error
	incrementViewsFn func(context.Context, uint) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) IncrementViews(ctx context.Context, profileID uint) error {
	return s.incrementViewsFn(ctx, profileID)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn:    func(context.Context, uint) (*models.Profile, error) { return &models.Profile{}, nil },
		getByUsernameFn:  func(context.Context, string) (*models.Profile, error) { return &models.Profile{}, nil },
		updateFn:         func(context.Context, *models.Profile) error { return nil },
		incrementViewsFn: func(context.Context, uint) error { return nil },
	}
}

type friendRepoStub struct {
	createFn              func(context.Context, *models.FriendRequest) error
	getPairFn             func(context.Context, uint, uint) (*models.FriendRequest, error)
	getByIDForRecipientFn func(context.Context, uint, uint) (*models.FriendRequest, error)
	acceptFn              func(context.Context, uint) error
	deleteFn              func(context.Context, uint) error
	getPendingRequestsFn  func(context.Context, uint) ([]models.FriendRequest, error)
	getSentRequestsFn     func(context.Context, uint) ([]models.FriendRequest, error)
	getFriendsFn          func(context.Context, uint) ([]models.User, error)
	areFriendsFn          func(context.Context, uint, uint) (bool, error)
}

func (s *friendRepoStub) Create(ctx context.Context, request *models.FriendRequest) error {
	return s.createFn(ctx, request)
}
func (s *friendRepoStub) GetPair(ctx context.Context, fromUserID, toUserID uint) (*models.FriendRequest, error) {
	return s.getPairFn(ctx, fromUserID, toUserID)
}
func (s *friendRepoStub) GetByIDForRecipient(ctx context.Context, id, toUserID uint) (*models.FriendRequest, error) {
	return s.getByIDForRecipientFn(ctx, id, toUserID)
}
func (s *friendRepoStub) Accept(ctx context.Context, id uint) error {
	return s.acceptFn(ctx, id)
}
func (s *friendRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *friendRepoStub) GetPendingRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.getPendingRequestsFn(ctx, userID)
}
func (s *friendRepoStub) GetSentRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.getSentRequestsFn(ctx, userID)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) AreFriends(ctx context.Context, userID1, userID2 uint) (bool, error) {
	return s.areFriendsFn(ctx, userID1, userID2)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn:              func(context.Context, *models.FriendRequest) error { return nil },
		getPairFn:             func(context.Context, uint, uint) (*models.FriendRequest, error) { return nil, nil },
		getByIDForRecipientFn: func(context.Context, uint, uint) (*models.FriendRequest, error) { return &models.FriendRequest{}, nil },
		acceptFn:              func(context.Context, uint) error { return nil },
		deleteFn:              func(context.Context, uint) error { return nil },
		getPendingRequestsFn:  func(context.Context, uint) ([]models.FriendRequest, error) { return nil, nil },
		getSentRequestsFn:     func(context.Context, uint) ([]models.FriendRequest, error) { return nil, nil },
		getFriendsFn:          func(context.Context, uint) ([]models.User, error) { return nil, nil },
		areFriendsFn:          func(context.Context, uint, uint) (bool, error) { return false, nil },
	}
}

type testimonialRepoStub struct {
	createFn         func(context.Context, *models.Testimonial) error
	getByIDFn        func(context.Context, uint) (*models.Testimonial, error)
	listForProfileFn func(context.Context, uint, bool) ([]models.Testimonial, error)
	setHiddenFn      func(context.Context, uint, bool) error
	deleteFn         func(context.Context, uint) error
}

func (s *testimonialRepoStub) Create(ctx context.Context, testimonial *models.Testimonial) error {
	return s.createFn(ctx, testimonial)
}
func (s *testimonialRepoStub) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	return s.getByIDFn(ctx, id)
}
func (s *testimonialRepoStub) ListForProfile(ctx context.Context, profileID uint, includeHidden bool) ([]models.Testimonial, error) {
	return s.listForProfileFn(ctx, profileID, includeHidden)
}
func (s *testimonialRepoStub) SetHidden(ctx context.Context, id uint, hidden bool) error {
	return s.setHiddenFn(ctx, id, hidden)
}
func (s *testimonialRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopTestimonialRepo() *testimonialRepoStub {
	return &testimonialRepoStub{
		createFn:         func(context.Context, *models.Testimonial) error { return nil },
		getByIDFn:        func(context.Context, uint) (*models.Testimonial, error) { return &models.Testimonial{}, nil },
		listForProfileFn: func(context.Context, uint, bool) ([]models.Testimonial, error) { return nil, nil },
		setHiddenFn:      func(context.Context, uint, bool) error { return nil },
		deleteFn:         func(context.Context, uint) error { return nil },
	}
}

type visitRepoStub struct {
	recordFn           func(context.Context, *models.ProfileVisit) error
	recentForProfileFn func(context.Context, uint, int) ([]models.ProfileVisit, error)
}

func (s *visitRepoStub) Record(ctx context.Context, visit *models.ProfileVisit) error {
	return s.recordFn(ctx, visit)
}
func (s *visitRepoStub) RecentForProfile(ctx context.Context, profileID uint, limit int) ([]models.ProfileVisit, error) {
	return s.recentForProfileFn(ctx, profileID, limit)
}

func noopVisitRepo() *visitRepoStub {
	return &visitRepoStub{
		recordFn:           func(context.Context, *models.ProfileVisit) error { return nil },
		recentForProfileFn: func(context.Context, uint, int) ([]models.ProfileVisit, error) { return nil, nil },
	}
}

type topFiveRepoStub struct {
	createFn         func(context.Context, *models.TopFive) error
	getForProfileFn  func(context.Context, uint, uint) (*models.TopFive, error)
	listForProfileFn func(context.Context, uint) ([]models.TopFive, error)
	updateFn         func(context.Context, *models.TopFive) error
	deleteFn         func(context.Context, uint) error
}

func (s *topFiveRepoStub) Create(ctx context.Context, topFive *models.TopFive) error {
	return s.createFn(ctx, topFive)
}
func (s *topFiveRepoStub) GetForProfile(ctx context.Context, id, profileID uint) (*models.TopFive, error) {
	return s.getForProfileFn(ctx, id, profileID)
}
func (s *topFiveRepoStub) ListForProfile(ctx context.Context, profileID uint) ([]models.TopFive, error) {
	return s.listForProfileFn(ctx, profileID)
}
func (s *topFiveRepoStub) Update(ctx context.Context, topFive *models.TopFive) error {
	return s.updateFn(ctx, topFive)
}
func (s *topFiveRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopTopFiveRepo() *topFiveRepoStub {
	return &topFiveRepoStub{
		createFn:         func(context.Context, *models.TopFive) error { return nil },
		getForProfileFn:  func(context.Context, uint, uint) (*models.TopFive, error) { return &models.TopFive{}, nil },
		listForProfileFn: func(context.Context, uint) ([]models.TopFive, error) { return nil, nil },
		updateFn:         func(context.Context, *models.TopFive) error { return nil },
		deleteFn:         func(context.Context, uint) error { return nil },
	}
}

type galleryRepoStub struct {
	createAlbumFn        func(context.Context, *models.Album) error
	getAlbumForProfileFn func(context.Context, uint, uint) (*models.Album, error)
	listAlbumsFn         func(context.Context, uint) ([]models.Album, error)
	deleteAlbumFn        func(context.Context, uint) error
	createImageFn        func(context.Context, *models.GalleryImage) error
	getImageForProfileFn func(context.Context, uint, uint) (*models.GalleryImage, error)
	listImagesFn         func(context.Context, uint, *uint) ([]models.GalleryImage, error)
	updateImageFn        func(context.Context, *models.GalleryImage) error
	deleteImageFn        func(context.Context, uint) error
}

func (s *galleryRepoStub) CreateAlbum(ctx context.Context, album *models.Album) error {
	return s.createAlbumFn(ctx, album)
}
func (s *galleryRepoStub) GetAlbumForProfile(ctx context.Context, id, profileID uint) (*models.Album, error) {
	return s.getAlbumForProfileFn(ctx, id, profileID)
}
func (s *galleryRepoStub) ListAlbums(ctx context.Context, profileID uint) ([]models.Album, error) {
	return s.listAlbumsFn(ctx, profileID)
}
func (s *galleryRepoStub) DeleteAlbum(ctx context.Context, id uint) error {
	return s.deleteAlbumFn(ctx, id)
}
func (s *galleryRepoStub) CreateImage(ctx context.Context, image *models.GalleryImage) error {
	return s.createImageFn(ctx, image)
}
func (s *galleryRepoStub) GetImageForProfile(ctx context.Context, id, profileID uint) (*models.GalleryImage, error) {
	return s.getImageForProfileFn(ctx, id, profileID)
}
func (s *galleryRepoStub) ListImages(ctx context.Context, profileID uint, albumID *uint) ([]models.GalleryImage, error) {
	return s.listImagesFn(ctx, profileID, albumID)
}
func (s *galleryRepoStub) UpdateImage(ctx context.Context, image *models.GalleryImage) error {
	return s.updateImageFn(ctx, image)
}
func (s *galleryRepoStub) DeleteImage(ctx context.Context, id uint) error {
	return s.deleteImageFn(ctx, id)
}

func noopGalleryRepo() *galleryRepoStub {
	return &galleryRepoStub{
		createAlbumFn:        func(context.Context, *models.Album) error { return nil },
		getAlbumForProfileFn: func(context.Context, uint, uint) (*models.Album, error) { return &models.Album{}, nil },
		listAlbumsFn:         func(context.Context, uint) ([]models.Album, error) { return nil, nil },
		deleteAlbumFn:        func(context.Context, uint) error { return nil },
		createImageFn:        func(context.Context, *models.GalleryImage) error { return nil },
		getImageForProfileFn: func(context.Context, uint, uint) (*models.GalleryImage, error) { return &models.GalleryImage{}, nil },
		listImagesFn:         func(context.Context, uint, *uint) ([]models.GalleryImage, error) { return nil, nil },
		updateImageFn:        func(context.Context, *models.GalleryImage) error { return nil },
		deleteImageFn:        func(context.Context, uint) error { return nil },
	}
}
