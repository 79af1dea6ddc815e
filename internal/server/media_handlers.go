package server

import (
	"io"
	"strconv"

	"retrospace/internal/media"
	"retrospace/internal/models"
	"retrospace/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// UploadMedia accepts a multipart upload under the "file" field. The
// :kind route parameter selects the pipeline: profile, cover and
// background replace the matching profile asset, gallery adds an image
// to the caller's gallery (optional "caption" and "album_id" form
// fields), music replaces the profile song.
func (s *Server) UploadMedia(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	kind, ok := media.ParseUploadKind(c.Params("kind"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown upload kind"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not read uploaded file"))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	stored, err := s.mediaStore.Save(media.UploadInput{
		Username:    user.Username,
		Kind:        kind,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	observability.MediaUploadsTotal.WithLabelValues(string(kind)).Inc()

	if kind == media.KindGallery {
		var albumID *uint
		if raw := c.FormValue("album_id"); raw != "" {
			parsed, perr := strconv.ParseUint(raw, 10, 32)
			if perr != nil || parsed == 0 {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError("Invalid album id"))
			}
			id := uint(parsed)
			albumID = &id
		}

		image, err := s.galleryService.AddImage(
			c.UserContext(), userID, stored.Path, c.FormValue("caption"), albumID)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"image": image,
			"file":  stored,
		})
	}

	profile, err := s.profileService.SetMediaPath(
		c.UserContext(), userID, string(kind), stored.Path)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"profile": profile,
		"file":    stored,
	})
}
