package repository

import (
	"context"
	"errors"

	"retrospace/internal/models"

	"gorm.io/gorm"
)

// GalleryRepository defines persistence operations for albums and images.
type GalleryRepository interface {
	CreateAlbum(ctx context.Context, album *models.Album) error
	GetAlbumForProfile(ctx context.Context, id, profileID uint) (*models.Album, error)
	ListAlbums(ctx context.Context, profileID uint) ([]models.Album, error)
	DeleteAlbum(ctx context.Context, id uint) error

	CreateImage(ctx context.Context, image *models.GalleryImage) error
	GetImageForProfile(ctx context.Context, id, profileID uint) (*models.GalleryImage, error)
	ListImages(ctx context.Context, profileID uint, albumID *uint) ([]models.GalleryImage, error)
	UpdateImage(ctx context.Context, image *models.GalleryImage) error
	DeleteImage(ctx context.Context, id uint) error
}

type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository returns a new GalleryRepository implementation.
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) CreateAlbum(ctx context.Context, album *models.Album) error {
	if err := r.db.WithContext(ctx).Create(album).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *galleryRepository) GetAlbumForProfile(ctx context.Context, id, profileID uint) (*models.Album, error) {
	var album models.Album
	if err := r.db.WithContext(ctx).
		Preload("Images").
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&album).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Album", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &album, nil
}

func (r *galleryRepository) ListAlbums(ctx context.Context, profileID uint) ([]models.Album, error) {
	var albums []models.Album
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Preload("Images").
		Order("created_at ASC").
		Find(&albums).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return albums, nil
}

// DeleteAlbum removes the album and detaches its images. The detach runs
// explicitly inside the transaction rather than relying on the FK action,
// which sqlite does not always enforce in tests.
func (r *galleryRepository) DeleteAlbum(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.GalleryImage{}).
			Where("album_id = ?", id).
			Update("album_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Album{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *galleryRepository) CreateImage(ctx context.Context, image *models.GalleryImage) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *galleryRepository) GetImageForProfile(ctx context.Context, id, profileID uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("GalleryImage", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &image, nil
}

func (r *galleryRepository) ListImages(ctx context.Context, profileID uint, albumID *uint) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	q := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("uploaded_at DESC, id DESC")
	if albumID != nil {
		q = q.Where("album_id = ?", *albumID)
	}
	if err := q.Find(&images).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return images, nil
}

func (r *galleryRepository) UpdateImage(ctx context.Context, image *models.GalleryImage) error {
	if err := r.db.WithContext(ctx).Save(image).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *galleryRepository) DeleteImage(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.GalleryImage{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
