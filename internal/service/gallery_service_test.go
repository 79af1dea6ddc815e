package service

import (
	"context"
	"errors"
	"testing"

	"retrospace/internal/models"
)

func TestGalleryServiceCreateAlbumValidation(t *testing.T) {
	svc := NewGalleryService(noopGalleryRepo(), noopProfileRepo())
	_, err := svc.CreateAlbum(context.Background(), 1, "  ")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestGalleryServiceAddImageToForeignAlbum(t *testing.T) {
	galleryRepo := noopGalleryRepo()
	galleryRepo.getAlbumForProfileFn = func(_ context.Context, id, _ uint) (*models.Album, error) {
		return nil, models.NewNotFoundError("Album", id)
	}

	svc := NewGalleryService(galleryRepo, noopProfileRepo())
	albumID := uint(77)
	_, err := svc.AddImage(context.Background(), 1, "gallery/u/x.jpg", "", &albumID)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestGalleryServiceAddImage(t *testing.T) {
	galleryRepo := noopGalleryRepo()
	var created *models.GalleryImage
	galleryRepo.createImageFn = func(_ context.Context, img *models.GalleryImage) error {
		created = img
		return nil
	}
	profileRepo := noopProfileRepo()
	profileRepo.getByUserIDFn = func(context.Context, uint) (*models.Profile, error) {
		return &models.Profile{ID: 30}, nil
	}

	svc := NewGalleryService(galleryRepo, profileRepo)
	if _, err := svc.AddImage(context.Background(), 1, "gallery/u/x.jpg", "caption", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ProfileID != 30 || created.Image != "gallery/u/x.jpg" || created.AlbumID != nil {
		t.Fatalf("unexpected image: %#v", created)
	}
}

func TestGalleryServiceUpdateImageMoveOutOfAlbum(t *testing.T) {
	galleryRepo := noopGalleryRepo()
	album := uint(5)
	galleryRepo.getImageForProfileFn = func(_ context.Context, id, profileID uint) (*models.GalleryImage, error) {
		return &models.GalleryImage{ID: id, ProfileID: profileID, AlbumID: &album}, nil
	}
	var saved *models.GalleryImage
	galleryRepo.updateImageFn = func(_ context.Context, img *models.GalleryImage) error {
		saved = img
		return nil
	}

	svc := NewGalleryService(galleryRepo, noopProfileRepo())
	zero := uint(0)
	_, err := svc.UpdateImage(context.Background(), 1, 8, nil, &zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.AlbumID != nil {
		t.Fatal("album id 0 should detach the image")
	}
}

func TestGalleryServiceDeleteImageReturnsPath(t *testing.T) {
	galleryRepo := noopGalleryRepo()
	galleryRepo.getImageForProfileFn = func(_ context.Context, id, profileID uint) (*models.GalleryImage, error) {
		return &models.GalleryImage{ID: id, ProfileID: profileID, Image: "gallery/u/gone.jpg"}, nil
	}

	svc := NewGalleryService(galleryRepo, noopProfileRepo())
	path, err := svc.DeleteImage(context.Background(), 1, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "gallery/u/gone.jpg" {
		t.Fatalf("expected stored path, got %q", path)
	}
}
