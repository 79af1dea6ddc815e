package service

import (
	"context"
	"strings"

	"retrospace/internal/models"
	"retrospace/internal/repository"
)

const (
	maxAlbumNameLen = 100
	maxCaptionLen   = 255
)

// GalleryService provides album and gallery image management.
type GalleryService struct {
	galleryRepo repository.GalleryRepository
	profileRepo repository.ProfileRepository
}

// NewGalleryService returns a new GalleryService.
func NewGalleryService(galleryRepo repository.GalleryRepository, profileRepo repository.ProfileRepository) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		profileRepo: profileRepo,
	}
}

// CreateAlbum adds an album to the caller's profile.
func (s *GalleryService) CreateAlbum(ctx context.Context, userID uint, name string) (*models.Album, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Album name is required")
	}
	if len(name) > maxAlbumNameLen {
		return nil, models.NewValidationError("Album name too long")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	album := &models.Album{ProfileID: profile.ID, Name: name}
	if err := s.galleryRepo.CreateAlbum(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

// ListAlbums returns the caller's albums with their images.
func (s *GalleryService) ListAlbums(ctx context.Context, userID uint) ([]models.Album, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.galleryRepo.ListAlbums(ctx, profile.ID)
}

// DeleteAlbum removes one of the caller's albums. Its images survive without
// an album.
func (s *GalleryService) DeleteAlbum(ctx context.Context, userID, albumID uint) error {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	album, err := s.galleryRepo.GetAlbumForProfile(ctx, albumID, profile.ID)
	if err != nil {
		return err
	}
	return s.galleryRepo.DeleteAlbum(ctx, album.ID)
}

// AddImage files a stored image path into the caller's gallery, optionally
// inside one of their albums.
func (s *GalleryService) AddImage(ctx context.Context, userID uint, path, caption string, albumID *uint) (*models.GalleryImage, error) {
	if path == "" {
		return nil, models.NewValidationError("Image path is required")
	}
	if len(caption) > maxCaptionLen {
		return nil, models.NewValidationError("Caption too long")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if albumID != nil {
		if _, err := s.galleryRepo.GetAlbumForProfile(ctx, *albumID, profile.ID); err != nil {
			return nil, err
		}
	}

	image := &models.GalleryImage{
		ProfileID: profile.ID,
		AlbumID:   albumID,
		Image:     path,
		Caption:   caption,
	}
	if err := s.galleryRepo.CreateImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// ListImages returns the caller's gallery, optionally filtered by album.
func (s *GalleryService) ListImages(ctx context.Context, userID uint, albumID *uint) ([]models.GalleryImage, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.galleryRepo.ListImages(ctx, profile.ID, albumID)
}

// UpdateImage changes an image's caption or album.
func (s *GalleryService) UpdateImage(ctx context.Context, userID, imageID uint, caption *string, albumID *uint) (*models.GalleryImage, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	image, err := s.galleryRepo.GetImageForProfile(ctx, imageID, profile.ID)
	if err != nil {
		return nil, err
	}

	if caption != nil {
		if len(*caption) > maxCaptionLen {
			return nil, models.NewValidationError("Caption too long")
		}
		image.Caption = *caption
	}
	if albumID != nil {
		if *albumID == 0 {
			image.AlbumID = nil
		} else {
			if _, err := s.galleryRepo.GetAlbumForProfile(ctx, *albumID, profile.ID); err != nil {
				return nil, err
			}
			image.AlbumID = albumID
		}
	}

	if err := s.galleryRepo.UpdateImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// DeleteImage removes an image from the caller's gallery and returns its
// stored path so the handler can clean up the file.
func (s *GalleryService) DeleteImage(ctx context.Context, userID, imageID uint) (string, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	image, err := s.galleryRepo.GetImageForProfile(ctx, imageID, profile.ID)
	if err != nil {
		return "", err
	}
	if err := s.galleryRepo.DeleteImage(ctx, image.ID); err != nil {
		return "", err
	}
	return image.Image, nil
}
