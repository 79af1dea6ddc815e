package server

import (
	"log"
	"strings"

	"retrospace/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createAlbumRequest struct {
	Name string `json:"name"`
}

type updateImageRequest struct {
	Caption *string `json:"caption"`
	AlbumID *uint   `json:"album_id"`
}

type addImageRequest struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
	AlbumID *uint  `json:"album_id"`
}

// GetMyAlbums lists the caller's photo albums with their images
func (s *Server) GetMyAlbums(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	albums, err := s.galleryService.ListAlbums(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"albums": albums, "count": len(albums)})
}

// CreateAlbum adds a new photo album
func (s *Server) CreateAlbum(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req createAlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	album, err := s.galleryService.CreateAlbum(c.UserContext(), userID, req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(album)
}

// DeleteAlbum removes an album. Its images survive unassigned.
func (s *Server) DeleteAlbum(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	albumID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.galleryService.DeleteAlbum(c.UserContext(), userID, albumID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Album deleted"})
}

// GetMyGallery lists the caller's gallery images, optionally filtered by
// album via ?album=<id>
func (s *Server) GetMyGallery(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var albumID *uint
	if raw := c.QueryInt("album", 0); raw > 0 {
		id := uint(raw)
		albumID = &id
	}

	images, err := s.galleryService.ListImages(c.UserContext(), userID, albumID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"images": images, "count": len(images)})
}

// AddGalleryImage records a gallery image from an already-stored
// reference, e.g. an external URL. Binary uploads go through
// POST /api/media/gallery instead.
func (s *Server) AddGalleryImage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req addImageRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(req.Image) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image reference is required"))
	}

	image, err := s.galleryService.AddImage(
		c.UserContext(), userID, req.Image, req.Caption, req.AlbumID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

// UpdateGalleryImage edits a gallery image's caption or album. An
// album_id of 0 detaches the image from its album.
func (s *Server) UpdateGalleryImage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	imageID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req updateImageRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	image, err := s.galleryService.UpdateImage(
		c.UserContext(), userID, imageID, req.Caption, req.AlbumID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(image)
}

// DeleteGalleryImage removes an image record and its stored file
func (s *Server) DeleteGalleryImage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	imageID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	path, err := s.galleryService.DeleteImage(c.UserContext(), userID, imageID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if path != "" {
		if err := s.mediaStore.Remove(path); err != nil {
			// The DB row is already gone; an orphaned file is not
			// worth failing the request over.
			log.Printf("failed to remove media file %s: %v", path, err)
		}
	}
	return c.JSON(fiber.Map{"message": "Image deleted"})
}
